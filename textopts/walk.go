package textopts

// RangeWalker replays the stack discipline from the design over a
// sorted, validated list of StyleRanges: at every character position
// it reports the active style and whether that style just changed.
//
// Ranges must already be sorted by Range.Start ascending (see
// SortAndValidateRanges); RangeWalker does not sort or validate.
type RangeWalker struct {
	base       Style
	ranges     []StyleRange
	nextRange  int
	stack      []StyleRange
	textLength int
}

// NewRangeWalker starts a walk over text of the given length with
// base as the style active outside any range.
func NewRangeWalker(base Style, ranges []StyleRange, textLength int) *RangeWalker {
	w := &RangeWalker{
		base:       base,
		ranges:     ranges,
		textLength: textLength,
	}
	w.stack = []StyleRange{{Style: base, Range: Range{Start: 0, Length: textLength}}}
	return w
}

// Advance pushes every range starting at i and reports the active
// style at character index i, with changed set when at least one range
// was pushed. Pops for ranges that ended before i are done by the
// preceding Retire call, which reports those changes itself.
func (w *RangeWalker) Advance(i int) (style Style, changed bool) {
	changed = false

	for w.nextRange < len(w.ranges) && w.ranges[w.nextRange].Range.Start == i {
		w.stack = append(w.stack, w.ranges[w.nextRange])
		w.nextRange++
		changed = true
	}

	style = w.top().Style
	return style, changed
}

// Retire pops any ranges whose Range.Last() <= i, called after
// emitting character i. It reports whether the active style changed
// as a result, for the character that follows.
func (w *RangeWalker) Retire(i int) (changed bool) {
	for len(w.stack) > 1 && w.stack[len(w.stack)-1].Range.Last() <= i {
		w.stack = w.stack[:len(w.stack)-1]
		changed = true
	}
	return changed
}

func (w *RangeWalker) top() StyleRange {
	return w.stack[len(w.stack)-1]
}

// Current returns the style on top of the stack right now, without
// advancing or retiring anything.
func (w *RangeWalker) Current() Style {
	return w.top().Style
}
