package atlas

import "github.com/textatlas/textatlas/geom"

// PixelWriter is the external rendering backend a Page delegates pixel
// operations to. The core never interprets alpha convention or pixel
// format; it only issues setPixel/write/commit calls at the right
// times.
type PixelWriter interface {
	SetPixel(x, y int, r, g, b, a uint8)
	Write(pixels []byte, rect geom.Rect)
	Commit()
	Size() geom.Size
}

// Page pairs one texture's pixel backend with the organizer that packs
// rectangles into it.
type Page struct {
	Writer    PixelWriter
	Organizer *RectangleOrganizer
}

// NewPage creates a page backed by writer, sized to writer.Size().
func NewPage(writer PixelWriter) *Page {
	return &Page{
		Writer:    writer,
		Organizer: NewRectangleOrganizer(writer.Size()),
	}
}

// Placement is the discriminated result of AtlasManager.FindPlacement:
// either a slot on a specific page, or not-found.
type Placement struct {
	Found bool
	Slot  Slot
	Page  *Page
}

// Metrics is an optional instrumentation hook. All fields are
// incremented by AtlasManager when non-nil; it replaces the reference
// implementation's ad hoc stdout timing with something a caller can
// opt into without the core ever logging on its own.
type Metrics struct {
	Claims      uint64
	ClaimMisses uint64
	Releases    uint64
}

// AtlasManager owns a fixed set of pages and routes claims to whichever
// page last satisfied one, falling back to the rest in order.
type AtlasManager struct {
	pages    []*Page
	lastUsed int
	Metrics  *Metrics
}

// NewAtlasManager builds a manager over the given pages. Pages are
// owned for the manager's lifetime; there is no dynamic page creation
// or teardown after construction.
func NewAtlasManager(pages []*Page) *AtlasManager {
	return &AtlasManager{pages: pages}
}

// Pages returns the manager's pages in index order.
func (m *AtlasManager) Pages() []*Page {
	return m.pages
}

// FindPlacement tries the last-successful page first, then the rest of
// the pages in index order, returning the first page that can fit
// size.
func (m *AtlasManager) FindPlacement(size geom.Size) Placement {
	if len(m.pages) == 0 {
		m.miss()
		return Placement{}
	}

	if result := m.pages[m.lastUsed].Organizer.TryClaim(size); result.Found {
		m.hit()
		return Placement{Found: true, Slot: result.Slot, Page: m.pages[m.lastUsed]}
	}

	for i, page := range m.pages {
		if i == m.lastUsed {
			continue
		}
		if result := page.Organizer.TryClaim(size); result.Found {
			m.lastUsed = i
			m.hit()
			return Placement{Found: true, Slot: result.Slot, Page: page}
		}
	}

	m.miss()
	return Placement{}
}

// ReleaseRect releases a slot previously returned by FindPlacement,
// clearing its pixels on the page's backend first (the reference
// implementation's TextManager::releaseRect does the same: clear then
// release) so a page never retains stale glyph pixels under a
// since-released rect.
func (m *AtlasManager) ReleaseRect(page *Page, slot Slot) bool {
	if page == nil {
		return false
	}
	if page.Writer != nil {
		page.Writer.Write(make([]byte, slot.Rect.Width*slot.Rect.Height*4), slot.Rect)
	}
	ok := page.Organizer.Release(slot.Index)
	if ok && m.Metrics != nil {
		m.Metrics.Releases++
	}
	return ok
}

func (m *AtlasManager) hit() {
	if m.Metrics != nil {
		m.Metrics.Claims++
	}
}

func (m *AtlasManager) miss() {
	if m.Metrics != nil {
		m.Metrics.ClaimMisses++
	}
}
