// Package atlas implements the rectangle organizer and texture-page
// manager: the online 2D bin-packer that underlies the text atlas.
package atlas

import "github.com/textatlas/textatlas/geom"

// Slot is a live reservation inside one RectangleOrganizer: a rect plus
// the monotonically increasing index used to release it later.
type Slot struct {
	Rect  geom.Rect
	Index uint64
}

// SearchResult is the discriminated result of a placement attempt,
// mirroring the "found/notFound" factory pattern the atlas is ported
// from rather than an (value, ok) tuple or an error.
type SearchResult struct {
	Found bool
	Slot  Slot
}

// NotFound reports a failed placement attempt.
func NotFound() SearchResult {
	return SearchResult{}
}

// FoundSlot reports a successful placement attempt.
func FoundSlot(slot Slot) SearchResult {
	return SearchResult{Found: true, Slot: slot}
}
