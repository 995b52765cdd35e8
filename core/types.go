package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that cannot take part in distance sums (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an immutable directed, weighted connection From→To.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the edge. Any real value is accepted.
	Weight float64
}

// Graph is the minimal read contract the traversal and shortest-path
// packages depend on.
//
// Neighbors returns the outgoing edges of v; every returned edge must have
// From == v. A vertex unknown to the graph has no neighbors.
type Graph[V comparable] interface {
	Neighbors(v V) []Edge[V]
}

// GraphFunc adapts a plain function to the Graph interface.
type GraphFunc[V comparable] func(v V) []Edge[V]

// Neighbors calls f(v).
func (f GraphFunc[V]) Neighbors(v V) []Edge[V] { return f(v) }

// GraphOption configures an AdjacencyList before creation.
type GraphOption func(*graphConfig)

// graphConfig holds the construction-time flags of an AdjacencyList.
type graphConfig struct {
	allowLoops bool // allow from == to
	allowMulti bool // allow parallel from→to edges
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// AdjacencyList is an in-memory directed weighted graph.
//
// mu guards every field below it. order keeps vertices in insertion order;
// out keeps each vertex's outgoing edges in insertion order.
type AdjacencyList[V comparable] struct {
	mu sync.RWMutex

	cfg   graphConfig
	order []V             // vertices in insertion order
	out   map[V][]Edge[V] // from → outgoing edges
	pairs map[[2]V]int    // (from,to) → number of parallel edges
	edges int             // total edge count
}

// NewAdjacencyList creates an empty graph.
// By default self-loops and parallel edges are rejected.
// Complexity: O(1)
func NewAdjacencyList[V comparable](opts ...GraphOption) *AdjacencyList[V] {
	g := &AdjacencyList[V]{
		out:   make(map[V][]Edge[V]),
		pairs: make(map[[2]V]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *AdjacencyList[V]) Looped() bool { return g.cfg.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *AdjacencyList[V]) Multigraph() bool { return g.cfg.allowMulti }
