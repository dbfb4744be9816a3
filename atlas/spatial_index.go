package atlas

import "github.com/textatlas/textatlas/geom"

// BlockWidth and BlockHeight size the fixed grid SpatialIndex divides a
// page into. These match the reference implementation's block size.
const (
	BlockWidth  = 128
	BlockHeight = 16
)

// SpatialIndex partitions a page into a grid of fixed-size blocks and
// maps each block to the ids of the slots whose rect touches it. It
// never rejects an add; callers re-check actual overlap themselves.
type SpatialIndex struct {
	size    geom.Size
	xBlocks int
	yBlocks int
	blocks  [][]uint64
}

// NewSpatialIndex builds an index over a page of the given size.
func NewSpatialIndex(size geom.Size) *SpatialIndex {
	xBlocks := calcBlockCount(size.Width, BlockWidth)
	yBlocks := calcBlockCount(size.Height, BlockHeight)
	return &SpatialIndex{
		size:    size,
		xBlocks: xBlocks,
		yBlocks: yBlocks,
		blocks:  make([][]uint64, xBlocks*yBlocks),
	}
}

func calcBlockCount(totalSize, blockSize int) int {
	wholeBlocks := totalSize / blockSize
	if totalSize-wholeBlocks*blockSize > 0 {
		wholeBlocks++
	}
	return wholeBlocks
}

func (s *SpatialIndex) blockRange(rect geom.Rect) (leftCol, rightCol, topRow, bottomRow int) {
	leftCol = rect.X / BlockWidth
	rightCol = rect.EndX() / BlockWidth
	topRow = rect.Y / BlockHeight
	bottomRow = rect.EndY() / BlockHeight
	return
}

// Add registers a slot's rect in every block it touches.
func (s *SpatialIndex) Add(slot Slot) {
	leftCol, rightCol, topRow, bottomRow := s.blockRange(slot.Rect)
	for col := leftCol; col <= rightCol; col++ {
		for row := topRow; row <= bottomRow; row++ {
			idx := row*s.xBlocks + col
			s.blocks[idx] = append(s.blocks[idx], slot.Index)
		}
	}
}

// Remove undoes a prior Add for the same slot.
func (s *SpatialIndex) Remove(slot Slot) {
	leftCol, rightCol, topRow, bottomRow := s.blockRange(slot.Rect)
	for col := leftCol; col <= rightCol; col++ {
		for row := topRow; row <= bottomRow; row++ {
			idx := row*s.xBlocks + col
			s.blocks[idx] = removeID(s.blocks[idx], slot.Index)
		}
	}
}

func removeID(ids []uint64, target uint64) []uint64 {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// ForNearSlots visits every distinct slot-id touching any block the
// query rect touches, stopping as soon as visitor returns true. It
// returns whether visitor ever returned true.
func (s *SpatialIndex) ForNearSlots(rect geom.Rect, visitor func(slotID uint64) bool) bool {
	leftCol, rightCol, topRow, bottomRow := s.blockRange(rect)
	seen := make(map[uint64]bool)
	for col := leftCol; col <= rightCol; col++ {
		for row := topRow; row <= bottomRow; row++ {
			idx := row*s.xBlocks + col
			for _, slotID := range s.blocks[idx] {
				if seen[slotID] {
					continue
				}
				seen[slotID] = true
				if visitor(slotID) {
					return true
				}
			}
		}
	}
	return false
}

// ForSlotsOnYLine visits every distinct slot-id whose rect crosses the
// horizontal line y, equivalent to ForNearSlots on a one-pixel-tall
// rect spanning the whole page width.
func (s *SpatialIndex) ForSlotsOnYLine(y int, visitor func(slotID uint64) bool) bool {
	return s.ForNearSlots(geom.Rect{X: 0, Y: y, Width: s.size.Width, Height: 1}, visitor)
}
