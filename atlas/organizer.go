package atlas

import "github.com/textatlas/textatlas/geom"

// RectangleOrganizer packs rectangles of varying size onto a single
// page of fixed size S, keeping the I1-I5 invariants from the design:
// no overlap, in-bounds, monotonic slot indices, and a spatial index /
// y-priority cache kept exactly in sync with the live slot set.
type RectangleOrganizer struct {
	size      geom.Size
	nextIndex uint64
	slots     map[uint64]Slot
	spatial   *SpatialIndex
	yCache    *YPriorityCache
}

// NewRectangleOrganizer creates an empty organizer for a page of the
// given size.
func NewRectangleOrganizer(size geom.Size) *RectangleOrganizer {
	return &RectangleOrganizer{
		size:    size,
		slots:   make(map[uint64]Slot),
		spatial: NewSpatialIndex(size),
		yCache:  NewYPriorityCache(size.Height),
	}
}

// TryClaim attempts to place a rectangle of the given size on the
// page. It either returns a newly registered slot or reports
// not-found without mutating any state.
func (o *RectangleOrganizer) TryClaim(size geom.Size) SearchResult {
	if size.Width <= 0 || size.Height <= 0 {
		return NotFound()
	}
	if size.Width > o.size.Width || size.Height > o.size.Height {
		return NotFound()
	}

	if len(o.slots) == 0 {
		slot := Slot{Rect: geom.NewRect(0, 0, size), Index: o.nextIndex}
		o.nextIndex++
		o.addSlot(slot)
		return FoundSlot(slot)
	}

	result := NotFound()
	o.yCache.ForYInPriorityOrder(func(y int) bool {
		sr := o.search(y, size)
		if sr.Found {
			o.addSlot(sr.Slot)
			result = sr
			return true
		}
		return false
	})
	return result
}

// Release removes a live slot by index, returning false if the index
// is not (or no longer) live.
func (o *RectangleOrganizer) Release(index uint64) bool {
	slot, ok := o.slots[index]
	if !ok {
		return false
	}
	o.yCache.Decrement(slot.Rect.EndY() + 1)
	o.yCache.Decrement(slot.Rect.Y)
	o.spatial.Remove(slot)
	delete(o.slots, index)
	return true
}

// Slot looks up a live slot by index.
func (o *RectangleOrganizer) Slot(index uint64) (Slot, bool) {
	s, ok := o.slots[index]
	return s, ok
}

// Size returns the page dimensions this organizer packs into.
func (o *RectangleOrganizer) Size() geom.Size {
	return o.size
}

func (o *RectangleOrganizer) addSlot(slot Slot) {
	o.slots[slot.Index] = slot
	o.spatial.Add(slot)
	o.yCache.Increment(slot.Rect.EndY() + 1)
	o.yCache.Increment(slot.Rect.Y)
}

// search tries every candidate x for a fixed y, returning the first
// non-overlapping in-bounds placement.
func (o *RectangleOrganizer) search(y int, size geom.Size) SearchResult {
	result := NotFound()
	o.withXOptions(y, func(x int) bool {
		rect := geom.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
		if o.isOpen(rect) {
			slot := Slot{Rect: rect, Index: o.nextIndex}
			o.nextIndex++
			result = FoundSlot(slot)
			return true
		}
		return false
	})
	return result
}

// withXOptions enumerates candidate x-values for a fixed y: the left
// edge of the page, then the left and one-past-right edges of every
// slot crossing y, in the spatial index's visitation order.
func (o *RectangleOrganizer) withXOptions(y int, callback func(x int) bool) {
	if callback(0) {
		return
	}
	o.spatial.ForSlotsOnYLine(y, func(slotID uint64) bool {
		slot := o.slots[slotID]
		if slot.Rect.X > 0 && callback(slot.Rect.X) {
			return true
		}
		return callback(slot.Rect.EndX() + 1)
	})
}

func (o *RectangleOrganizer) isOpen(rect geom.Rect) bool {
	if rect.X < 0 || rect.Y < 0 {
		return false
	}
	if rect.EndX() >= o.size.Width || rect.EndY() >= o.size.Height {
		return false
	}

	foundOverlap := false
	o.spatial.ForNearSlots(rect, func(slotID uint64) bool {
		if rect.Overlaps(o.slots[slotID].Rect) {
			foundOverlap = true
			return true
		}
		return false
	})
	return !foundOverlap
}
