// Package textopts holds the style and range types that describe how
// a text block's characters should be rendered, plus the stack-based
// walk that resolves the active style at each character position.
package textopts

import "fmt"

// RGBA8 is a straight 8-bit-per-channel color.
type RGBA8 struct {
	R, G, B, A uint8
}

// AntialiasMode selects how glyph edges are rendered.
type AntialiasMode int

const (
	AntialiasNone AntialiasMode = iota
	AntialiasGrayscale
	AntialiasSubPixel
)

func (m AntialiasMode) String() string {
	switch m {
	case AntialiasNone:
		return "none"
	case AntialiasGrayscale:
		return "grayscale"
	case AntialiasSubPixel:
		return "subpixel"
	default:
		return "unknown"
	}
}

// Style is an immutable (font, size, color) triple.
type Style struct {
	FontHandle string
	Size       float64
	Foreground RGBA8
}

// Range is a half-open [Start, Start+Length) span over a text's
// character indices.
type Range struct {
	Start  int
	Length int
}

// Last returns the last index the range covers, inclusive.
func (r Range) Last() int {
	return r.Start + r.Length - 1
}

// StyleRange overrides the base style over a Range. Ranges are stored
// start-ascending and may nest (a range either fully contains another
// or is disjoint from it).
type StyleRange struct {
	Style Style
	Range Range
}

// TextOptions bundles the base style, antialiasing mode, ordered style
// overrides, and background color for one text block.
type TextOptions struct {
	BaseStyle     Style
	AntialiasMode AntialiasMode
	StyleRanges   []StyleRange
	Background    RGBA8
}

// SortAndValidateRanges sorts ranges by start ascending (stable, so
// equal-start ranges keep their caller-given relative order) and
// checks well-nestedness: any two ranges must be either disjoint or
// one must fully contain the other. The reference implementation
// assumes this and never checks it; this is a small hardening the
// distillation's non-goals do not forbid.
func SortAndValidateRanges(ranges []StyleRange) ([]StyleRange, error) {
	sorted := make([]StyleRange, len(ranges))
	copy(sorted, ranges)
	stableSortByStart(sorted)

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i].Range, sorted[j].Range
			if rangesCross(a, b) {
				return nil, fmt.Errorf("textopts: style ranges [%d,%d) and [%d,%d) are neither nested nor disjoint",
					a.Start, a.Start+a.Length, b.Start, b.Start+b.Length)
			}
		}
	}

	return sorted, nil
}

func rangesCross(a, b Range) bool {
	aContainsB := a.Start <= b.Start && b.Last() <= a.Last()
	bContainsA := b.Start <= a.Start && a.Last() <= b.Last()
	disjoint := a.Last() < b.Start || b.Last() < a.Start
	return !aContainsB && !bContainsA && !disjoint
}

func stableSortByStart(ranges []StyleRange) {
	// insertion sort: style-range lists in practice are short, and a
	// stable sort keeps caller-supplied order for equal starts.
	for i := 1; i < len(ranges); i++ {
		j := i
		for j > 0 && ranges[j-1].Range.Start > ranges[j].Range.Start {
			ranges[j-1], ranges[j] = ranges[j], ranges[j-1]
			j--
		}
	}
}
