// Package textblock ties the rectangle organizer and the text layout
// engine together: given text and options, it measures, claims a slot
// on some atlas page, renders through a caller-supplied backend, and
// releases that slot when the block is closed.
package textblock

import "github.com/textatlas/textatlas/textopts"

// Glyph is what a FontProvider reports for one (style, char) pair: its
// advance geometry plus an optional bitmap a Renderer can blit.
type Glyph struct {
	AdvanceWidth int
	Height       int
	Kerning      int
	Bitmap       []byte
	BitmapLeft   int
	BitmapTop    int
}

// FontProvider is the external platform font/glyph collaborator named
// in the design's external interfaces: for each (style, char) it
// supplies advance/height/kerning and a rasterized glyph. It must be
// deterministic across a process lifetime for any given (font, size,
// char). A zero-sized glyph (AdvanceWidth == 0 && Height == 0) is
// legal and contributes nothing to layout.
type FontProvider interface {
	// OnStyleChange is called whenever the active style changes
	// between characters, before the next Glyph call.
	OnStyleChange(style textopts.Style)
	// Glyph returns the glyph data for ch under the most recently
	// announced style.
	Glyph(ch rune) Glyph
}
