package shortestpaths

import (
	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dfs"
)

// ToposortDAGSolver holds single-source shortest paths on a directed
// acyclic graph, computed by relaxing edges in topological order.
type ToposortDAGSolver[V comparable] struct {
	tree[V]
	order []V // topological processing order
}

var _ ShortestPathSolver[string] = (*ToposortDAGSolver[string])(nil)

// NewToposortDAGSolver runs the algorithm on g from start:
//
//  1. distTo[start] = 0, start has no predecessor.
//  2. Post-order DFS over the vertices reachable from start.
//  3. Reverse it into a topological order.
//  4. For each vertex in that order, relax its outgoing edges once.
//
// g must be acyclic. Without WithCycleCheck this is not verified and a
// cyclic g yields a result that depends on neighbor order; with it, the
// constructor fails with dfs.ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func NewToposortDAGSolver[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*ToposortDAGSolver[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := applyOptions(opts)

	var (
		order []V
		err   error
	)
	if cfg.CycleCheck {
		order, err = dfs.TopologicalSort(g, []V{start})
	} else {
		order, err = dfs.ReversePostOrder(g, start)
	}
	if err != nil {
		return nil, err
	}

	s := &ToposortDAGSolver[V]{tree: newTree(start), order: order}
	for _, v := range order {
		for _, e := range g.Neighbors(v) {
			if s.relax(e) && cfg.OnRelax != nil {
				cfg.OnRelax(e, s.distTo[e.To])
			}
		}
	}

	return s, nil
}

// Order returns a copy of the topological order in which vertices were
// processed. Only vertices reachable from the start appear.
func (s *ToposortDAGSolver[V]) Order() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)

	return out
}
