// Package core defines the graph contract consumed by the shortest-path
// solvers and a thread-safe, in-memory directed weighted adjacency list
// that satisfies it.
//
// The contract is deliberately small:
//
//	type Graph[V comparable] interface {
//	    Neighbors(v V) []Edge[V]
//	}
//
// Any type that can enumerate the outgoing edges of a vertex is a Graph.
// Implicit graphs can be expressed with GraphFunc; explicit graphs are built
// with AdjacencyList.
//
// AdjacencyList features:
//
//   - Generic vertex type: any comparable V (strings, ints, small structs).
//   - Directed, float64-weighted edges; weights may be negative.
//   - Self-loops only with WithLoops(), parallel edges only with WithMultiEdges().
//   - Deterministic iteration: Vertices() and Neighbors() follow insertion order,
//     so traversals built on top of them are reproducible.
//   - A single sync.RWMutex guards all state; queries take the read lock and
//     return copies, so callers may hold results across later mutations.
//
// Errors:
//
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrBadWeight           - NaN edge weight.
//	ErrEdgeNotFound        - RemoveEdge on a missing edge.
//
// Complexity:
//
//	AddVertex, HasVertex, HasEdge      O(1)
//	AddEdge                            O(1) amortized
//	RemoveEdge                         O(deg(from))
//	Neighbors                          O(deg(v))
//	Vertices, Edges                    O(V), O(V+E)
package core
