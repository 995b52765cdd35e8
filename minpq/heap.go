package minpq

import (
	"container/heap"
	"fmt"
)

// heapNode is a PriorityNode plus the bookkeeping the heap needs.
type heapNode[T comparable] struct {
	PriorityNode[T]
	seq   uint64 // insertion rank; breaks priority ties
	index int    // current position in nodeHeap
}

// nodeHeap is a min-heap of *heapNode ordered by (Priority, seq).
// Swap keeps every node's index and the owner's lookup map in sync.
type nodeHeap[T comparable] []*heapNode[T]

// Len returns the number of nodes in the heap.
func (h nodeHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion rank.
func (h nodeHeap[T]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

// Swap exchanges two nodes and records their new positions.
func (h nodeHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x, which must be a *heapNode[T]. Called by heap.Push.
func (h *nodeHeap[T]) Push(x any) {
	n := x.(*heapNode[T])
	n.index = len(*h)
	*h = append(*h, n)
}

// Pop removes the last node. Called by heap.Pop.
func (h *nodeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]

	return node
}

// HeapMinPQ is an indexed binary min-heap. An item→node map gives O(1)
// membership and lets ChangePriority fix a node in place.
type HeapMinPQ[T comparable] struct {
	heap  nodeHeap[T]
	nodes map[T]*heapNode[T]
	seq   uint64
}

var _ ExtrinsicMinPQ[string] = (*HeapMinPQ[string])(nil)

// NewHeap returns an empty HeapMinPQ.
func NewHeap[T comparable]() *HeapMinPQ[T] {
	return &HeapMinPQ[T]{nodes: make(map[T]*heapNode[T])}
}

// HeapFactory returns a Factory producing HeapMinPQ queues.
func HeapFactory[T comparable]() Factory[T] {
	return func() ExtrinsicMinPQ[T] { return NewHeap[T]() }
}

// Add pushes item onto the heap.
func (pq *HeapMinPQ[T]) Add(item T, priority float64) error {
	if _, ok := pq.nodes[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	n := &heapNode[T]{
		PriorityNode: PriorityNode[T]{Item: item, Priority: priority},
		seq:          pq.seq,
	}
	pq.seq++
	pq.nodes[item] = n
	heap.Push(&pq.heap, n)

	return nil
}

// Contains reports whether item is in the heap.
func (pq *HeapMinPQ[T]) Contains(item T) bool {
	_, ok := pq.nodes[item]
	return ok
}

// PeekMin returns the root of the heap.
func (pq *HeapMinPQ[T]) PeekMin() (T, error) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return pq.heap[0].Item, nil
}

// RemoveMin pops the root of the heap.
func (pq *HeapMinPQ[T]) RemoveMin() (T, error) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	n := heap.Pop(&pq.heap).(*heapNode[T])
	delete(pq.nodes, n.Item)

	return n.Item, nil
}

// ChangePriority updates item's priority and restores heap order.
// The item keeps its original insertion rank.
func (pq *HeapMinPQ[T]) ChangePriority(item T, priority float64) error {
	n, ok := pq.nodes[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	n.Priority = priority
	heap.Fix(&pq.heap, n.index)

	return nil
}

// Size returns the number of items.
func (pq *HeapMinPQ[T]) Size() int { return len(pq.heap) }

// IsEmpty reports whether the heap holds no items.
func (pq *HeapMinPQ[T]) IsEmpty() bool { return len(pq.heap) == 0 }
