// Package lvlathpaths collects two small, dependable building blocks for
// path-finding code: extrinsic min-priority queues and single-source
// shortest paths on directed graphs.
//
// Everything is organised in flat subpackages:
//
//	core/          — Graph[V] contract, Edge[V], thread-safe AdjacencyList[V]
//	minpq/         — ExtrinsicMinPQ contract, UnsortedMinPQ (reference), HeapMinPQ
//	dfs/           — post-order DFS, reverse post-order, cycle-checked topological sort
//	shortestpaths/ — ToposortDAGSolver (DAGs, any weights), DijkstraSolver (non-negative weights)
//	examples/      — runnable build-pipeline demo
//
// Quick ASCII example:
//
//	A ──1──▶ B
//	│        │
//	4        1
//	▼        ▼
//	C ◀──────┘
//
// Solving from A gives distTo[C] = 2 along A → B → C.
//
// All vertex types are generic: any comparable V works, from strings to
// small structs. The algorithms are synchronous and allocate only what the
// reachable part of the graph needs.
//
//	go get github.com/katalvlaran/lvlath-paths
package lvlathpaths
