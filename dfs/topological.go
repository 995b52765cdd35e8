package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
)

// topoSorter encapsulates state for a cycle-checked topological sort.
type topoSorter[V comparable] struct {
	graph core.Graph[V]
	opts  Options[V]
	state map[V]int // White (absent), Gray, Black
	order []V       // post-order
}

// TopologicalSort orders every vertex reachable from starts so that for
// each edge u→v, u comes before v. Starts are explored in the order given;
// a start already reached from an earlier one is skipped.
//
// Returns ErrCycleDetected, wrapped with the vertex that closed the cycle,
// if a back edge is found.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[V comparable](g core.Graph[V], starts []V, opts ...Option[V]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &topoSorter[V]{
		graph: g,
		opts:  applyOptions(opts),
		state: make(map[V]int),
	}
	for _, s := range starts {
		if t.state[s] == White {
			if err := t.visit(s); err != nil {
				return nil, err
			}
		}
	}

	return Reverse(t.order), nil
}

// visit performs a coloured DFS from v.
func (t *topoSorter[V]) visit(v V) error {
	t.state[v] = Gray

	if t.opts.OnVisit != nil {
		if err := t.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	for _, e := range t.graph.Neighbors(v) {
		switch t.state[e.To] {
		case Gray:
			return fmt.Errorf("%w: back edge %v→%v", ErrCycleDetected, v, e.To)
		case White:
			if err := t.visit(e.To); err != nil {
				return err
			}
		}
	}

	if t.opts.OnExit != nil {
		if err := t.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
