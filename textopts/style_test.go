package textopts

import "testing"

func TestSortAndValidateRangesSortsByStart(t *testing.T) {
	ranges := []StyleRange{
		{Range: Range{Start: 5, Length: 2}},
		{Range: Range{Start: 0, Length: 3}},
		{Range: Range{Start: 3, Length: 2}},
	}
	sorted, err := SortAndValidateRanges(ranges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStarts := []int{0, 3, 5}
	for i, want := range wantStarts {
		if sorted[i].Range.Start != want {
			t.Errorf("sorted[%d].Start = %d, want %d", i, sorted[i].Range.Start, want)
		}
	}
}

func TestSortAndValidateRangesAllowsNesting(t *testing.T) {
	ranges := []StyleRange{
		{Range: Range{Start: 0, Length: 10}},
		{Range: Range{Start: 2, Length: 3}},
	}
	if _, err := SortAndValidateRanges(ranges); err != nil {
		t.Errorf("nested ranges should be valid, got error: %v", err)
	}
}

func TestSortAndValidateRangesAllowsDisjoint(t *testing.T) {
	ranges := []StyleRange{
		{Range: Range{Start: 0, Length: 3}},
		{Range: Range{Start: 3, Length: 3}},
	}
	if _, err := SortAndValidateRanges(ranges); err != nil {
		t.Errorf("disjoint ranges should be valid, got error: %v", err)
	}
}

func TestSortAndValidateRangesRejectsCrossing(t *testing.T) {
	ranges := []StyleRange{
		{Range: Range{Start: 0, Length: 5}},
		{Range: Range{Start: 3, Length: 5}},
	}
	if _, err := SortAndValidateRanges(ranges); err == nil {
		t.Error("expected an error for partially-overlapping ranges, got nil")
	}
}

func TestSortAndValidateRangesKeepsStableOrderForEqualStart(t *testing.T) {
	first := StyleRange{Style: Style{FontHandle: "first"}, Range: Range{Start: 0, Length: 1}}
	second := StyleRange{Style: Style{FontHandle: "second"}, Range: Range{Start: 0, Length: 1}}
	sorted, err := SortAndValidateRanges([]StyleRange{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sorted[0].Style.FontHandle != "first" || sorted[1].Style.FontHandle != "second" {
		t.Errorf("expected stable order [first, second], got [%s, %s]", sorted[0].Style.FontHandle, sorted[1].Style.FontHandle)
	}
}
