package layout

import (
	"testing"

	"github.com/textatlas/textatlas/geom"
)

const glyphW, glyphH = 8, 8

func feed(tl *TextLayout, text string) {
	for _, ch := range text {
		tl.NextChar(ch, geom.Size{Width: glyphW, Height: glyphH}, 0)
	}
}

// TestWasSpaceDWraps is scenario E4: "was d" in a 30-wide box keeps the
// trailing space attached to the first line and wraps only the "d".
func TestWasSpaceDWraps(t *testing.T) {
	tl := NewTextLayout(geom.Size{Width: 30, Height: 1000})
	feed(tl, "was d")
	m := tl.Metrics()

	if len(m.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(m.Lines))
	}
	if m.Lines[0].CharCount != 4 {
		t.Errorf("line 0: expected 4 chars, got %d", m.Lines[0].CharCount)
	}
	if m.Lines[1].CharCount != 1 {
		t.Errorf("line 1: expected 1 char, got %d", m.Lines[1].CharCount)
	}
	if m.Lines[0].Height != glyphH || m.Lines[1].Height != glyphH {
		t.Errorf("expected both line heights %d, got %d and %d", glyphH, m.Lines[0].Height, m.Lines[1].Height)
	}
	if m.Size.Width != 30 {
		t.Errorf("expected clipped width 30, got %d", m.Size.Width)
	}
	if m.Size.Height != 2*glyphH {
		t.Errorf("expected total height %d, got %d", 2*glyphH, m.Size.Height)
	}
}

// TestWasdMidWordBreak is scenario E5: "wasd" with no divider at all
// falls back to a mid-word break, wrapping only the last character.
func TestWasdMidWordBreak(t *testing.T) {
	tl := NewTextLayout(geom.Size{Width: 30, Height: 1000})
	feed(tl, "wasd")
	m := tl.Metrics()

	if len(m.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(m.Lines))
	}
	if m.Lines[0].CharCount != 3 {
		t.Errorf("line 0: expected 3 chars, got %d", m.Lines[0].CharCount)
	}
	if m.Lines[1].CharCount != 1 {
		t.Errorf("line 1: expected 1 char, got %d", m.Lines[1].CharCount)
	}
}

// TestHeightIsSumOfLineHeights is P6.
func TestHeightIsSumOfLineHeights(t *testing.T) {
	tl := NewTextLayout(geom.Size{Width: 20, Height: 1000})
	feed(tl, "a lot of short words")
	m := tl.Metrics()

	sum := 0
	for _, lm := range m.Lines {
		sum += lm.Height
	}
	if sum != m.Size.Height {
		t.Errorf("sum of line heights %d != reported size height %d", sum, m.Size.Height)
	}
}

// TestCharCountPreserved is P7: every fed character lands on exactly
// one line.
func TestCharCountPreserved(t *testing.T) {
	input := "the quick brown fox jumps"
	tl := NewTextLayout(geom.Size{Width: 24, Height: 1000})
	feed(tl, input)
	m := tl.Metrics()

	total := 0
	for _, lm := range m.Lines {
		total += lm.CharCount
	}
	if total != len([]rune(input)) {
		t.Errorf("expected %d total chars across lines, got %d", len([]rune(input)), total)
	}
}

func TestSingleCharNeverWraps(t *testing.T) {
	tl := NewTextLayout(geom.Size{Width: 5, Height: 1000})
	tl.NextChar('x', geom.Size{Width: 100, Height: 8}, 0)
	m := tl.Metrics()
	if len(m.Lines) != 1 {
		t.Errorf("expected a single line for the first character regardless of width, got %d", len(m.Lines))
	}
}

func TestEmptyLayoutHasOneEmptyLine(t *testing.T) {
	tl := NewTextLayout(geom.Size{Width: 100, Height: 100})
	m := tl.Metrics()
	if len(m.Lines) != 1 {
		t.Fatalf("expected 1 line for an empty layout, got %d", len(m.Lines))
	}
	if m.Lines[0].CharCount != 0 || m.Size.Width != 0 || m.Size.Height != 0 {
		t.Errorf("expected an all-zero empty layout, got %+v", m)
	}
}
