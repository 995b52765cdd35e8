package shortestpaths

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/minpq"
)

// DijkstraSolver holds single-source shortest paths on a graph with
// non-negative edge weights, computed with an extrinsic priority queue.
type DijkstraSolver[V comparable] struct {
	tree[V]
}

var _ ShortestPathSolver[string] = (*DijkstraSolver[string])(nil)

// NewDijkstraSolver runs Dijkstra's algorithm on g from start.
//
// The queue holds every discovered but unsettled vertex keyed by its
// tentative distance; an improved distance updates the entry in place via
// ChangePriority. Returns ErrNegativeWeight, wrapped with the edge, as soon
// as a negative edge leaves a settled vertex.
//
// Complexity: O((V + E) log V) with the default heap queue.
func NewDijkstraSolver[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*DijkstraSolver[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := applyOptions(opts)

	s := &DijkstraSolver[V]{tree: newTree(start)}
	pq := cfg.Queue()
	if err := pq.Add(start, 0); err != nil {
		return nil, err
	}
	settled := make(map[V]bool)

	for !pq.IsEmpty() {
		u, err := pq.RemoveMin()
		if err != nil {
			return nil, err
		}
		settled[u] = true

		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
			if settled[e.To] || !s.relax(e) {
				continue
			}
			if cfg.OnRelax != nil {
				cfg.OnRelax(e, s.distTo[e.To])
			}
			if err = enqueue(pq, e.To, s.distTo[e.To]); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// enqueue adds v or lowers its priority if it is already queued.
func enqueue[V comparable](pq minpq.ExtrinsicMinPQ[V], v V, dist float64) error {
	if pq.Contains(v) {
		return pq.ChangePriority(v, dist)
	}

	return pq.Add(v, dist)
}
