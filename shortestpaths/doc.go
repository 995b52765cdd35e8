// Package shortestpaths computes single-source shortest paths over a
// core.Graph and reconstructs paths to arbitrary goals.
//
// Solvers:
//
//   - ToposortDAGSolver: for directed acyclic graphs. It takes a DFS
//     post-order from the start, reverses it into a topological order, and
//     relaxes every outgoing edge once in that order. Since a vertex's
//     distance is final before any of its edges is relaxed, one pass
//     suffices and negative weights are handled. Acyclicity is a
//     precondition; WithCycleCheck turns a violation into ErrCycleDetected.
//   - DijkstraSolver: for graphs with non-negative weights (cycles allowed).
//     It drives a minpq.ExtrinsicMinPQ; WithQueue selects the implementation.
//
// Both solvers do all their work in the constructor. The result is
// immutable afterwards and safe for concurrent readers.
//
// Path reconstruction:
//
//	Solution(goal) walks predecessor edges back from goal until a vertex
//	without one, then reverses. The start yields [start]; a goal that was
//	never reached also yields [goal].
//
// Complexity:
//
//	ToposortDAGSolver: O(V + E) time, O(V) memory.
//	DijkstraSolver:    O((V + E) log V) with minpq.HeapMinPQ,
//	                   O(V·(V + E)) with minpq.UnsortedMinPQ.
//
// Errors:
//
//   - ErrGraphNil          graph is nil.
//   - ErrNegativeWeight    DijkstraSolver met a negative edge.
//   - dfs.ErrCycleDetected ToposortDAGSolver with WithCycleCheck on cyclic input.
package shortestpaths
