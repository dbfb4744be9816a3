package atlas

import "testing"

func visitOrder(c *YPriorityCache) []int {
	var order []int
	c.ForYInPriorityOrder(func(y int) bool {
		order = append(order, y)
		return false
	})
	return order
}

func TestNewYPriorityCacheSeedsZero(t *testing.T) {
	c := NewYPriorityCache(100)
	if got := visitOrder(c); len(got) != 1 || got[0] != 0 {
		t.Errorf("expected only y=0 seeded, got %v", got)
	}
}

func TestIncrementAddsNewYAtFront(t *testing.T) {
	c := NewYPriorityCache(100)
	c.Increment(10)
	c.Increment(20)

	if got := visitOrder(c); len(got) != 3 || got[0] != 20 || got[1] != 10 || got[2] != 0 {
		t.Errorf("expected most-recently-incremented y first, got %v", got)
	}
}

func TestIncrementPromotesExistingY(t *testing.T) {
	c := NewYPriorityCache(100)
	c.Increment(10)
	c.Increment(20)
	c.Increment(10) // re-touch 10, should jump back to the front

	if got := visitOrder(c); len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 0 {
		t.Errorf("expected 10 promoted to the front, got %v", got)
	}
}

func TestDecrementToZeroRemovesFromOrder(t *testing.T) {
	c := NewYPriorityCache(100)
	c.Increment(10)
	c.Decrement(10)

	if got := visitOrder(c); len(got) != 1 || got[0] != 0 {
		t.Errorf("expected y=10 removed once its refcount hits zero, got %v", got)
	}
}

func TestDecrementAboveZeroKeepsEntryButPromotesIt(t *testing.T) {
	c := NewYPriorityCache(100)
	c.Increment(10)
	c.Increment(10) // refcount 2
	c.Increment(20)
	c.Decrement(10) // refcount back to 1, should still be present

	got := visitOrder(c)
	found := false
	for _, y := range got {
		if y == 10 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected y=10 to remain present with refcount 1, got %v", got)
	}
	if len(got) == 0 || got[0] != 10 {
		t.Errorf("expected y=10 promoted to the front by the decrement, got %v", got)
	}
}

func TestOutOfRangeYIsIgnored(t *testing.T) {
	c := NewYPriorityCache(10)
	c.Increment(-1)
	c.Increment(100)
	c.Decrement(-1)
	c.Decrement(100)

	if got := visitOrder(c); len(got) != 1 || got[0] != 0 {
		t.Errorf("expected out-of-range y values to be ignored, got %v", got)
	}
}

func TestForYInPriorityOrderStopsOnTrue(t *testing.T) {
	c := NewYPriorityCache(100)
	c.Increment(10)
	c.Increment(20)

	var visited []int
	c.ForYInPriorityOrder(func(y int) bool {
		visited = append(visited, y)
		return true
	})
	if len(visited) != 1 || visited[0] != 20 {
		t.Errorf("expected to stop after the first (most recent) entry, got %v", visited)
	}
}
