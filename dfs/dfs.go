package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
)

// walker encapsulates state during a post-order traversal.
type walker[V comparable] struct {
	graph   core.Graph[V]
	opts    Options[V]
	visited map[V]bool
	order   []V
}

// PostOrder returns the vertices reachable from start in DFS post-order:
// each vertex appears after every vertex first reached through it.
// The start vertex is always last. A start unknown to the graph yields [start].
//
// Cyclic input terminates (the visited set stops re-entry) but the result
// is then not a valid post-order of any DAG.
func PostOrder[V comparable](g core.Graph[V], start V, opts ...Option[V]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &walker[V]{
		graph:   g,
		opts:    applyOptions(opts),
		visited: make(map[V]bool),
	}
	if err := w.visit(start); err != nil {
		return nil, err
	}

	return w.order, nil
}

// ReversePostOrder returns PostOrder(g, start) reversed. For a DAG this is a
// topological order of the subgraph reachable from start.
func ReversePostOrder[V comparable](g core.Graph[V], start V, opts ...Option[V]) ([]V, error) {
	order, err := PostOrder(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return Reverse(order), nil
}

// visit marks v, recurses into unvisited neighbors, then records v.
func (w *walker[V]) visit(v V) error {
	w.visited[v] = true

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	for _, e := range w.graph.Neighbors(v) {
		if !w.visited[e.To] {
			if err := w.visit(e.To); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.order = append(w.order, v)

	return nil
}

// applyOptions folds opts over DefaultOptions.
func applyOptions[V comparable](opts []Option[V]) Options[V] {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
