package minpq

import "fmt"

// UnsortedMinPQ keeps its entries in an unordered slice and finds the
// minimum by linear scan. It trades speed for obviousness.
type UnsortedMinPQ[T comparable] struct {
	items []PriorityNode[T] // insertion order; no ordering invariant
}

var _ ExtrinsicMinPQ[string] = (*UnsortedMinPQ[string])(nil)

// NewUnsorted returns an empty UnsortedMinPQ.
func NewUnsorted[T comparable]() *UnsortedMinPQ[T] {
	return &UnsortedMinPQ[T]{}
}

// UnsortedFactory returns a Factory producing UnsortedMinPQ queues.
func UnsortedFactory[T comparable]() Factory[T] {
	return func() ExtrinsicMinPQ[T] { return NewUnsorted[T]() }
}

// Add appends item after checking it is not already present.
func (pq *UnsortedMinPQ[T]) Add(item T, priority float64) error {
	if pq.Contains(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	pq.items = append(pq.items, PriorityNode[T]{Item: item, Priority: priority})

	return nil
}

// Contains scans the entries for item.
func (pq *UnsortedMinPQ[T]) Contains(item T) bool {
	return pq.indexOf(item) >= 0
}

// PeekMin returns the first entry, in insertion order, holding the
// smallest priority.
func (pq *UnsortedMinPQ[T]) PeekMin() (T, error) {
	i, err := pq.minIndex()
	if err != nil {
		var zero T
		return zero, err
	}

	return pq.items[i].Item, nil
}

// RemoveMin removes the entry PeekMin would return. The relative order of
// the remaining entries is preserved, which keeps tie-breaking stable.
func (pq *UnsortedMinPQ[T]) RemoveMin() (T, error) {
	i, err := pq.minIndex()
	if err != nil {
		var zero T
		return zero, err
	}
	item := pq.items[i].Item
	copy(pq.items[i:], pq.items[i+1:])
	pq.items[len(pq.items)-1] = PriorityNode[T]{}
	pq.items = pq.items[:len(pq.items)-1]

	return item, nil
}

// ChangePriority overwrites the priority of the first entry holding item.
func (pq *UnsortedMinPQ[T]) ChangePriority(item T, priority float64) error {
	i := pq.indexOf(item)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	pq.items[i].Priority = priority

	return nil
}

// Size returns the number of entries.
func (pq *UnsortedMinPQ[T]) Size() int { return len(pq.items) }

// IsEmpty reports whether the queue holds no entries.
func (pq *UnsortedMinPQ[T]) IsEmpty() bool { return len(pq.items) == 0 }

// indexOf returns the position of the first entry equal to item, or -1.
func (pq *UnsortedMinPQ[T]) indexOf(item T) int {
	probe := PriorityNode[T]{Item: item}
	for i := range pq.items {
		if pq.items[i].Equal(probe) {
			return i
		}
	}

	return -1
}

// minIndex returns the index of the first strict minimum.
// Only a strictly smaller priority replaces the current candidate.
func (pq *UnsortedMinPQ[T]) minIndex() (int, error) {
	if len(pq.items) == 0 {
		return -1, ErrEmptyQueue
	}
	best := 0
	for i := 1; i < len(pq.items); i++ {
		if pq.items[i].Priority < pq.items[best].Priority {
			best = i
		}
	}

	return best, nil
}
