// Package dfs implements depth-first post-order traversal and topological
// ordering over any core.Graph, with generic vertex types.
//
// What:
//
//   - PostOrder: recursive DFS from a start vertex. A vertex is emitted only
//     after every vertex reachable through its unvisited neighbors has been
//     emitted. Neighbors are explored in the order Graph.Neighbors returns them.
//   - ReversePostOrder: PostOrder reversed. On a DAG this is a topological
//     order of the subgraph reachable from start. Acyclicity is not checked.
//   - TopologicalSort: the same ordering computed with White/Gray/Black
//     colouring; a back edge aborts with ErrCycleDetected. Several starts may
//     be given to cover disconnected parts of a graph.
//
// Why:
//   - Single-pass shortest paths on DAGs (relax edges in topological order).
//   - Dependency ordering for build steps, task schedulers, package managers.
//
// Options:
//
//   - WithOnVisit(fn)  pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)   post-order hook, called just before the vertex is emitted.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V); recursion depth equals the longest simple path from start.
//
// Errors:
//
//   - ErrGraphNil       graph is nil.
//   - ErrCycleDetected  back edge found by TopologicalSort.
//   - hook errors       wrapped with the vertex that triggered them.
package dfs
