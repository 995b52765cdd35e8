package minpq

import "errors"

// Sentinel errors returned by every ExtrinsicMinPQ implementation.
// They are wrapped with the offending item; match them with errors.Is.
var (
	// ErrDuplicateItem indicates Add was called with an item already present.
	ErrDuplicateItem = errors.New("minpq: duplicate item")

	// ErrEmptyQueue indicates PeekMin or RemoveMin was called on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrItemNotFound indicates ChangePriority was called with an absent item.
	ErrItemNotFound = errors.New("minpq: item not found")
)

// ExtrinsicMinPQ is a priority queue of distinct items, each with a
// caller-supplied float64 priority. Smaller priorities come out first.
type ExtrinsicMinPQ[T comparable] interface {
	// Add inserts item with the given priority.
	// Returns ErrDuplicateItem if the item is already present.
	Add(item T, priority float64) error

	// Contains reports whether item is present.
	Contains(item T) bool

	// PeekMin returns the item with the smallest priority without removing it.
	// Returns ErrEmptyQueue if the queue is empty.
	PeekMin() (T, error)

	// RemoveMin removes and returns the item with the smallest priority.
	// Returns ErrEmptyQueue if the queue is empty.
	RemoveMin() (T, error)

	// ChangePriority replaces the priority of item.
	// Returns ErrItemNotFound if the item is absent.
	ChangePriority(item T, priority float64) error

	// Size returns the number of items.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
}

// Factory builds an empty queue. Solvers accept one to let callers pick
// the implementation.
type Factory[T comparable] func() ExtrinsicMinPQ[T]

// PriorityNode pairs an item with its priority.
// Two nodes are equal when their items are equal; priority is ignored.
type PriorityNode[T comparable] struct {
	Item     T
	Priority float64
}

// Equal reports whether n and other hold the same item.
func (n PriorityNode[T]) Equal(other PriorityNode[T]) bool {
	return n.Item == other.Item
}
