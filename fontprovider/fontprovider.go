// Package fontprovider is a reference, non-core implementation of
// textblock.FontProvider: it parses a real TTF/OTF with
// golang.org/x/image/font/sfnt and reads glyph advances, heights, and
// kerning from it, memoizing per-(style, char) lookups in an LRU cache
// so repeated layout passes over the same text don't re-walk the font's
// glyph tables. It does not rasterize glyphs: every Glyph it returns
// has an empty Bitmap.
package fontprovider

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/textatlas/textatlas/textblock"
	"github.com/textatlas/textatlas/textopts"
)

// DefaultCacheSize bounds the glyph-metrics LRU. Text atlases tend to
// reuse a small alphabet across many blocks, so a modest cache covers
// most workloads without unbounded growth.
const DefaultCacheSize = 4096

// Provider drives an sfnt.Font as a textblock.FontProvider.
type Provider struct {
	font      *sfnt.Font
	buf       sfnt.Buffer
	cache     *lru.Cache
	style     textopts.Style
	ppem      fixed.Int26_6
	prevGlyph sfnt.GlyphIndex
	havePrev  bool
}

type cacheKey struct {
	fontHandle string
	size       float64
	ch         rune
}

// New parses fontBytes (a TTF/OTF) and returns a Provider backed by an
// LRU of DefaultCacheSize entries.
func New(fontHandle string, fontBytes []byte) (*Provider, error) {
	f, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("fontprovider: parse %s: %w", fontHandle, err)
	}
	cache, err := lru.New(DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("fontprovider: new cache: %w", err)
	}
	return &Provider{font: f, cache: cache}, nil
}

// OnStyleChange implements textblock.FontProvider.
func (p *Provider) OnStyleChange(style textopts.Style) {
	p.style = style
	p.ppem = fixed.Int26_6(style.Size * 64)
	p.havePrev = false
}

// Glyph implements textblock.FontProvider, rounding all font-internal
// fractional units to whole pixels as the design's external interface
// requires.
func (p *Provider) Glyph(ch rune) textblock.Glyph {
	key := cacheKey{fontHandle: p.style.FontHandle, size: p.style.Size, ch: ch}
	if cached, ok := p.cache.Get(key); ok {
		g := cached.(textblock.Glyph)
		g.Kerning = p.kerningFromPrevious(ch)
		p.advancePrev(ch)
		return g
	}

	gi, err := p.font.GlyphIndex(&p.buf, ch)
	if err != nil || gi == 0 {
		p.advancePrev(ch)
		return textblock.Glyph{}
	}

	advance, err := p.font.GlyphAdvance(&p.buf, gi, p.ppem, font.HintingNone)
	if err != nil {
		p.advancePrev(ch)
		return textblock.Glyph{}
	}

	metrics, err := p.font.Metrics(&p.buf, p.ppem, font.HintingNone)
	if err != nil {
		p.advancePrev(ch)
		return textblock.Glyph{}
	}

	g := textblock.Glyph{
		AdvanceWidth: advance.Round(),
		Height:       metrics.Height.Round(),
	}
	p.cache.Add(key, g)

	g.Kerning = p.kerningFromPrevious(ch)
	p.advancePrev(ch)
	return g
}

func (p *Provider) kerningFromPrevious(ch rune) int {
	if !p.havePrev {
		return 0
	}
	gi, err := p.font.GlyphIndex(&p.buf, ch)
	if err != nil || gi == 0 {
		return 0
	}
	k, err := p.font.Kern(&p.buf, p.prevGlyph, gi, p.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return k.Round()
}

func (p *Provider) advancePrev(ch rune) {
	gi, err := p.font.GlyphIndex(&p.buf, ch)
	if err != nil {
		p.havePrev = false
		return
	}
	p.prevGlyph = gi
	p.havePrev = true
}
