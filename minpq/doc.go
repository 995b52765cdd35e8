// Package minpq implements extrinsic minimum-priority queues: queues where
// each item's priority is supplied by the caller alongside the item rather
// than derived from the item itself.
//
// What:
//
//   - ExtrinsicMinPQ: the common contract (Add, Contains, PeekMin, RemoveMin,
//     ChangePriority, Size, IsEmpty).
//   - UnsortedMinPQ: the naive reference implementation. Entries live in an
//     unordered slice; every query is a linear scan. It is the correctness
//     oracle for the faster variant.
//   - HeapMinPQ: an indexed binary min-heap (container/heap) with an
//     item→position map for O(1) Contains and O(log n) ChangePriority.
//
// Tie-breaking:
//
//	Both implementations return, among entries with the smallest priority,
//	the one that was added first. Changing an item's priority does not
//	change its insertion rank.
//
// Complexity:
//
//	                UnsortedMinPQ   HeapMinPQ
//	Add             O(n)*           O(log n)
//	Contains        O(n)            O(1)
//	PeekMin         O(n)            O(1)
//	RemoveMin       O(n)            O(log n)
//	ChangePriority  O(n)            O(log n)
//	Size            O(1)            O(1)
//
//	* the append itself is O(1); the duplicate check is the linear part.
//
// Errors:
//
//   - ErrDuplicateItem  Add of an item already in the queue.
//   - ErrEmptyQueue     PeekMin/RemoveMin on an empty queue.
//   - ErrItemNotFound   ChangePriority of an absent item.
//
// A failed call never mutates the queue. Queues are not safe for concurrent
// use; callers sharing one across goroutines must serialize access.
package minpq
