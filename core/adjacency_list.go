package core

import "math"

// AddVertex inserts v if absent. Adding an existing vertex is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *AdjacencyList[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked registers v; caller must hold mu for writing.
func (g *AdjacencyList[V]) addVertexLocked(v V) {
	if _, exists := g.out[v]; exists {
		return
	}
	g.out[v] = nil
	g.order = append(g.order, v)
}

// HasVertex reports whether v is in the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *AdjacencyList[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[v]

	return ok
}

// AddEdge creates a directed edge from→to with the given weight.
// Missing endpoints are added automatically.
//
// Errors:
//   - ErrBadWeight if weight is NaN.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if from→to already exists and multi-edges are disabled.
//
// Thread-safe: acquires a write lock.
// Complexity: O(1) amortized.
func (g *AdjacencyList[V]) AddEdge(from, to V, weight float64) error {
	if math.IsNaN(weight) {
		return ErrBadWeight
	}
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]V{from, to}
	if !g.cfg.allowMulti && g.pairs[key] > 0 {
		return ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from] = append(g.out[from], Edge[V]{From: from, To: to, Weight: weight})
	g.pairs[key]++
	g.edges++

	return nil
}

// RemoveEdge deletes every edge from→to.
// Returns ErrEdgeNotFound if there is none. Vertices are kept.
// Thread-safe: acquires a write lock.
//
// Complexity: O(deg(from))
func (g *AdjacencyList[V]) RemoveEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]V{from, to}
	n := g.pairs[key]
	if n == 0 {
		return ErrEdgeNotFound
	}

	kept := g.out[from][:0]
	for _, e := range g.out[from] {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	g.out[from] = kept
	delete(g.pairs, key)
	g.edges -= n

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *AdjacencyList[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[[2]V{from, to}] > 0
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
// If v does not exist, returns nil.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the out-degree of v.
func (g *AdjacencyList[V]) Neighbors(v V) []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.out[v]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge[V], len(src))
	copy(out, src)

	return out
}

// Vertices returns all vertices in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *AdjacencyList[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge, grouped by source vertex in vertex insertion
// order and, within a source, in edge insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (g *AdjacencyList[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], 0, g.edges)
	for _, v := range g.order {
		out = append(out, g.out[v]...)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *AdjacencyList[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *AdjacencyList[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
