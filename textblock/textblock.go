package textblock

import (
	"fmt"

	"github.com/textatlas/textatlas/atlas"
	"github.com/textatlas/textatlas/geom"
	"github.com/textatlas/textatlas/layout"
	"github.com/textatlas/textatlas/textopts"
)

// TextBlock owns one live slot on some AtlasManager page: the
// rendered pixels of its text live at Rect() until Close releases
// them. TextBlock is move-only - copying the struct value would let
// two owners release the same slot, so it is always referenced
// through *TextBlock, and Move transfers ownership by marking the
// source closed so it can no longer release.
type TextBlock struct {
	manager *atlas.AtlasManager
	page    *atlas.Page
	slot    atlas.Slot
	found   bool
	closed  bool
}

// New measures text under options against maxWidth, claims a slot on
// manager, and renders it through provider/writer. It returns an error
// if options.StyleRanges are neither nested nor disjoint, or if no page
// can fit the measured size; once a slot is claimed,
// the block is fully committed (the core never partially commits).
func New(
	manager *atlas.AtlasManager,
	text []rune,
	maxWidth int,
	options textopts.TextOptions,
	provider FontProvider,
) (*TextBlock, error) {
	sortedRanges, err := textopts.SortAndValidateRanges(options.StyleRanges)
	if err != nil {
		return nil, err
	}
	options.StyleRanges = sortedRanges

	metrics := measure(text, maxWidth, options, provider)

	placement := manager.FindPlacement(metrics.Size)
	if !placement.Found {
		return nil, fmt.Errorf("textblock: no page has room for a %dx%d block", metrics.Size.Width, metrics.Size.Height)
	}

	render(text, options, provider, metrics, placement.Slot.Rect, placement.Page.Writer)
	placement.Page.Writer.Commit()

	return &TextBlock{
		manager: manager,
		page:    placement.Page,
		slot:    placement.Slot,
		found:   true,
	}, nil
}

// Rect returns the rectangle this block occupies on its page.
func (b *TextBlock) Rect() geom.Rect {
	return b.slot.Rect
}

// Page returns the page this block was placed on.
func (b *TextBlock) Page() *atlas.Page {
	return b.page
}

// Close releases the block's slot. It is idempotent: calling it more
// than once, or on a block that never found placement, is a no-op.
func (b *TextBlock) Close() {
	if b.closed || !b.found {
		return
	}
	b.manager.ReleaseRect(b.page, b.slot)
	b.closed = true
}

// Move transfers ownership of the live slot to a new *TextBlock and
// invalidates the receiver, so a moved-from block can never release a
// slot its new owner still holds.
func (b *TextBlock) Move() *TextBlock {
	moved := &TextBlock{
		manager: b.manager,
		page:    b.page,
		slot:    b.slot,
		found:   b.found,
		closed:  b.closed,
	}
	b.found = false
	b.closed = true
	return moved
}

func measure(text []rune, maxWidth int, options textopts.TextOptions, provider FontProvider) layout.TextBlockMetrics {
	tl := layout.NewTextLayout(geom.Size{Width: maxWidth, Height: 0})
	walker := textopts.NewRangeWalker(options.BaseStyle, options.StyleRanges, len(text))

	if len(text) > 0 {
		style, _ := walker.Advance(0)
		provider.OnStyleChange(style)
	}

	for i, ch := range text {
		if i > 0 {
			_, changed := walker.Advance(i)
			if changed {
				provider.OnStyleChange(walker.Current())
			}
		}

		g := provider.Glyph(ch)
		tl.NextChar(ch, geom.Size{Width: g.AdvanceWidth, Height: g.Height}, g.Kerning)

		if walker.Retire(i) {
			provider.OnStyleChange(walker.Current())
		}
	}

	return tl.Metrics()
}

func render(
	text []rune,
	options textopts.TextOptions,
	provider FontProvider,
	metrics layout.TextBlockMetrics,
	rect geom.Rect,
	writer atlas.PixelWriter,
) {
	walker := textopts.NewRangeWalker(options.BaseStyle, options.StyleRanges, len(text))

	lineStartY := make([]int, len(metrics.Lines))
	y := rect.Y
	for i, lm := range metrics.Lines {
		lineStartY[i] = y
		y += lm.Height
	}

	if len(text) > 0 {
		style, _ := walker.Advance(0)
		provider.OnStyleChange(style)
	}

	penX := rect.X
	line := 0
	for i, ch := range text {
		if i > 0 {
			_, changed := walker.Advance(i)
			if changed {
				provider.OnStyleChange(walker.Current())
			}
		}

		g := provider.Glyph(ch)
		if line < len(metrics.Lines) && i > 0 && lineAdvanced(metrics, i, line) {
			line++
			penX = rect.X
		}

		baseline := lineStartY[line] + metrics.Lines[line].Baseline
		drawGlyph(writer, g, penX, baseline)
		penX += g.AdvanceWidth

		if walker.Retire(i) {
			provider.OnStyleChange(walker.Current())
		}
	}
}

// lineAdvanced reports whether character i starts a new line, derived
// from the per-line char counts the metrics pass already computed.
func lineAdvanced(metrics layout.TextBlockMetrics, i int, line int) bool {
	consumed := 0
	for l := 0; l <= line; l++ {
		consumed += metrics.Lines[l].CharCount
	}
	return i >= consumed
}

func drawGlyph(writer atlas.PixelWriter, g Glyph, penX, baseline int) {
	if writer == nil || len(g.Bitmap) == 0 {
		return
	}
	writer.Write(g.Bitmap, geom.Rect{
		X:      penX + g.BitmapLeft,
		Y:      baseline - g.BitmapTop,
		Width:  g.AdvanceWidth,
		Height: g.Height,
	})
}
