package shortestpaths

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/minpq"
)

// Sentinel errors returned by the solvers.
var (
	// ErrGraphNil indicates that a nil graph was passed to a solver.
	ErrGraphNil = errors.New("shortestpaths: graph is nil")

	// ErrNegativeWeight indicates DijkstraSolver found a negative edge weight.
	ErrNegativeWeight = errors.New("shortestpaths: negative edge weight encountered")
)

// ShortestPathSolver is the read side shared by every solver.
type ShortestPathSolver[V comparable] interface {
	// Solution returns the vertices of the shortest path from the start to
	// goal, start first. An unreached goal yields [goal].
	Solution(goal V) []V

	// DistTo returns the shortest distance from the start to v, or
	// (+Inf, false) if v was not reached.
	DistTo(v V) (float64, bool)

	// EdgeTo returns the last edge on the shortest path to v. It reports
	// false for the start and for unreached vertices.
	EdgeTo(v V) (core.Edge[V], bool)
}

// Options configures a solver.
type Options[V comparable] struct {
	// CycleCheck makes ToposortDAGSolver reject cyclic input with
	// dfs.ErrCycleDetected instead of returning order-dependent results.
	CycleCheck bool

	// Queue builds the priority queue used by DijkstraSolver.
	Queue minpq.Factory[V]

	// OnRelax, if non-nil, is called after every successful relaxation
	// with the edge used and the new distance of its target.
	OnRelax func(e core.Edge[V], dist float64)
}

// Option represents a functional option for configuring a solver.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns the defaults: no cycle check, heap-backed queue,
// no relax hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		CycleCheck: false,
		Queue:      minpq.HeapFactory[V](),
		OnRelax:    nil,
	}
}

// WithCycleCheck enables cycle detection in ToposortDAGSolver.
func WithCycleCheck[V comparable]() Option[V] {
	return func(o *Options[V]) {
		o.CycleCheck = true
	}
}

// WithQueue selects the priority queue DijkstraSolver uses.
// A nil factory keeps the default.
func WithQueue[V comparable](f minpq.Factory[V]) Option[V] {
	return func(o *Options[V]) {
		if f != nil {
			o.Queue = f
		}
	}
}

// WithOnRelax installs a hook called on every successful relaxation.
func WithOnRelax[V comparable](fn func(e core.Edge[V], dist float64)) Option[V] {
	return func(o *Options[V]) {
		o.OnRelax = fn
	}
}

// applyOptions folds opts over DefaultOptions.
func applyOptions[V comparable](opts []Option[V]) Options[V] {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// tree is the result state shared by the solvers: a shortest-path tree
// rooted at start, stored as predecessor edges and distances.
type tree[V comparable] struct {
	start  V
	edgeTo map[V]core.Edge[V]
	distTo map[V]float64
}

// newTree returns a tree holding only the start at distance 0.
func newTree[V comparable](start V) tree[V] {
	return tree[V]{
		start:  start,
		edgeTo: make(map[V]core.Edge[V]),
		distTo: map[V]float64{start: 0},
	}
}

// relax records e if it shortens the path to e.To. A missing distance
// counts as +Inf. Reports whether the tree changed.
func (t *tree[V]) relax(e core.Edge[V]) bool {
	from, ok := t.distTo[e.From]
	if !ok {
		return false
	}
	old, ok := t.distTo[e.To]
	if !ok {
		old = math.Inf(1)
	}
	d := from + e.Weight
	if d < old {
		t.distTo[e.To] = d
		t.edgeTo[e.To] = e
		return true
	}

	return false
}

// Start returns the source vertex.
func (t *tree[V]) Start() V { return t.start }

// DistTo implements ShortestPathSolver.
func (t *tree[V]) DistTo(v V) (float64, bool) {
	d, ok := t.distTo[v]
	if !ok {
		return math.Inf(1), false
	}

	return d, true
}

// EdgeTo implements ShortestPathSolver.
func (t *tree[V]) EdgeTo(v V) (core.Edge[V], bool) {
	e, ok := t.edgeTo[v]
	return e, ok
}

// Solution implements ShortestPathSolver.
func (t *tree[V]) Solution(goal V) []V {
	path := []V{goal}
	curr := goal
	// a well-formed tree has at most len(edgeTo) hops; the bound only
	// matters for trees built from cyclic input
	for hops := 0; curr != t.start && hops <= len(t.edgeTo); hops++ {
		e, ok := t.edgeTo[curr]
		if !ok {
			break
		}
		curr = e.From
		path = append(path, curr)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
