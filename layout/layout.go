// Package layout implements the streaming line-breaker: given a
// bounded width and a stream of (char, advance-size, kerning) triples
// in reading order, it produces per-line metrics with word wrap, pen
// kerning, and a mid-word fallback when no divider is found.
package layout

import "github.com/textatlas/textatlas/geom"

// CharLayout is one character's placement as computed by TextLayout:
// its advance size, the kerning applied before it, and which line it
// ended up on.
type CharLayout struct {
	Ch      rune
	Size    geom.Size
	Kerning int
	Line    int
}

// LineMetrics summarizes one output line.
type LineMetrics struct {
	Height    int
	Baseline  int
	CharCount int
}

// TextBlockMetrics is the final result of a layout pass.
type TextBlockMetrics struct {
	Size  geom.Size
	Lines []LineMetrics
}

// TextLayout is a pure streaming line-breaker. Feed it characters in
// order with NextChar, then call Metrics once the stream ends.
type TextLayout struct {
	maxSize     geom.Size
	penX        int
	currentLine int
	chars       []CharLayout
}

// NewTextLayout starts a layout pass bounded by maxSize.Width.
func NewTextLayout(maxSize geom.Size) *TextLayout {
	return &TextLayout{maxSize: maxSize}
}

// NextChar appends one character to the pen stream, advancing the pen
// and triggering a wrap if the line has grown past maxSize.Width.
func (t *TextLayout) NextChar(ch rune, size geom.Size, kerning int) {
	t.chars = append(t.chars, CharLayout{Ch: ch, Size: size, Kerning: kerning, Line: t.currentLine})
	t.penX += size.Width + t.kerningOffset(kerning)
	t.checkWrap()
}

// Metrics computes the per-line metrics for everything fed so far.
//
// totalWidth intentionally sums every character's width rather than
// taking a per-line maximum, and line starts are not corrected for
// their (suppressed) leading kerning: this mirrors the reference
// implementation exactly, which several downstream size expectations
// depend on.
func (t *TextLayout) Metrics() TextBlockMetrics {
	lines := make([]LineMetrics, t.currentLine+1)

	totalWidth := 0
	for _, c := range t.chars {
		totalWidth += c.Size.Width
		lm := &lines[c.Line]
		if c.Size.Height > lm.Height {
			lm.Height = c.Size.Height
		}
		lm.CharCount++
	}

	height := 0
	for i := range lines {
		lines[i].Baseline = lines[i].Height
		height += lines[i].Height
	}

	width := totalWidth
	if width > t.maxSize.Width {
		width = t.maxSize.Width
	}

	return TextBlockMetrics{
		Size:  geom.Size{Width: width, Height: height},
		Lines: lines,
	}
}

func (t *TextLayout) kerningOffset(kerning int) int {
	if t.penX == 0 {
		return 0
	}
	return kerning
}

func (t *TextLayout) checkWrap() {
	index := len(t.chars) - 1
	if !t.isFirstCharOnLine(index) && t.penX > t.maxSize.Width {
		t.wrap()
	}
}

func (t *TextLayout) wrap() {
	wordSize := t.wrapCharCount()
	if wordSize == 0 {
		return
	}

	firstCharIndex := len(t.chars) - wordSize
	if t.isFirstCharOnLine(firstCharIndex) {
		t.wrapFrom(len(t.chars) - 1)
	} else {
		t.wrapFrom(len(t.chars) - wordSize)
	}
}

func (t *TextLayout) wrapFrom(index int) {
	t.currentLine++
	t.penX = 0
	for i := index; i < len(t.chars); i++ {
		t.chars[i].Line = t.currentLine
		t.penX += t.chars[i].Size.Width + t.kerningOffset(t.chars[i].Kerning)
	}
}

// wrapCharCount decides how many trailing characters move to the next
// line. A single trailing divider hangs off the end of the current
// line (no wrap); a run of more than one divider wraps only the last
// character, so whitespace runs can stretch across the right edge.
// Otherwise it walks backward to the nearest divider boundary, or to
// the start of the line if none exists (mid-word break fallback).
func (t *TextLayout) wrapCharCount() int {
	trailing := t.endOfLineWhitespaceCount()
	if trailing == 1 {
		return 0
	}
	if trailing > 1 {
		return 1
	}

	count := 0
	for i := len(t.chars); i > 0; i-- {
		index := i - 1
		if index > 0 && t.chars[index].Line > t.chars[index-1].Line {
			count++
			break
		}
		if isWordDivider(t.chars[index].Ch) {
			break
		}
		count++
	}
	return count
}

// endOfLineWhitespaceCount counts consecutive trailing dividers.
//
// The terminating condition mirrors the reference implementation's
// `while (--index > 0)`, which never examines character index 0: a
// trailing divider run that reaches all the way back to the very
// first character of the buffer stops being counted one character
// early. Preserved verbatim; some layouts depend on this exact count.
func (t *TextLayout) endOfLineWhitespaceCount() int {
	count := 0
	index := len(t.chars) - 1
	for {
		if !isWordDivider(t.chars[index].Ch) {
			break
		}
		count++
		index--
		if index <= 0 {
			break
		}
	}
	return count
}

func (t *TextLayout) isFirstCharOnLine(index int) bool {
	if index == 0 {
		return true
	}
	return t.chars[index].Line > t.chars[index-1].Line
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

func isWordDivider(ch rune) bool {
	return isWhitespace(ch) || ch == '-'
}
