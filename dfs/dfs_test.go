package dfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.AdjacencyList[int] {
	g := core.NewAdjacencyList[int]()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	return g
}

// buildDiamond creates A→B, A→C, B→D, C→D, D→E, D→F.
func buildDiamond(t *testing.T) *core.AdjacencyList[string] {
	t.Helper()
	g := core.NewAdjacencyList[string]()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestPostOrder_NilGraph(t *testing.T) {
	order, err := dfs.PostOrder[string](nil, "A")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestPostOrder_SingleVertex(t *testing.T) {
	g := core.NewAdjacencyList[string]()
	g.AddVertex("X")

	order, err := dfs.PostOrder[string](g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, order)
}

func TestPostOrder_UnknownStart(t *testing.T) {
	g := buildDiamond(t)
	order, err := dfs.PostOrder[string](g, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, order, "an unknown start is its own post-order")
}

func TestPostOrder_Diamond(t *testing.T) {
	g := buildDiamond(t)
	order, err := dfs.PostOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "F", "D", "B", "C", "A"}, order)
}

func TestPostOrder_OnlyReachable(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddEdge("X", "A", 1)) // X is not reachable from B

	order, err := dfs.PostOrder[string](g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "F", "D", "B"}, order)
}

// TestPostOrder_DescendantsFirst checks the defining property on a chain.
func TestPostOrder_DescendantsFirst(t *testing.T) {
	g := buildChain(50)
	order, err := dfs.PostOrder[int](g, 0)
	require.NoError(t, err)
	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, 49-i, v)
	}
}

func TestReversePostOrder_Diamond(t *testing.T) {
	g := buildDiamond(t)
	order, err := dfs.ReversePostOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D", "F", "E"}, order)

	// every edge goes forward
	for _, e := range g.Edges() {
		assert.Less(t, dfs.IndexOf(order, e.From), dfs.IndexOf(order, e.To), "%s→%s", e.From, e.To)
	}
}

// TestPostOrder_CycleTerminates documents that cyclic input does not recurse forever.
func TestPostOrder_CycleTerminates(t *testing.T) {
	g := core.NewAdjacencyList[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))

	order, err := dfs.PostOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

func TestPostOrder_Hooks(t *testing.T) {
	g := buildDiamond(t)
	var pre, post []string

	order, err := dfs.PostOrder[string](g, "A",
		dfs.WithOnVisit(func(v string) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v string) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, pre)
	assert.Equal(t, order, post, "OnExit fires in post-order")
}

func TestPostOrder_HookErrorAborts(t *testing.T) {
	g := buildDiamond(t)
	stop := errors.New("stop")

	order, err := dfs.PostOrder[string](g, "A",
		dfs.WithOnVisit(func(v string) error {
			if v == "D" {
				return stop
			}
			return nil
		}),
	)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnVisit hook for D")

	_, err = dfs.PostOrder[string](g, "A",
		dfs.WithOnExit(func(v string) error {
			return fmt.Errorf("exit %s", v)
		}),
	)
	assert.EqualError(t, err, "dfs: OnExit hook for E: exit E")
}

func TestPostOrder_GraphFunc(t *testing.T) {
	// binary tree on ints: n → 2n, 2n+1 while < 8
	g := core.GraphFunc[int](func(n int) []core.Edge[int] {
		var out []core.Edge[int]
		for _, c := range []int{2 * n, 2*n + 1} {
			if c < 8 {
				out = append(out, core.Edge[int]{From: n, To: c, Weight: 1})
			}
		}
		return out
	})

	order, err := dfs.PostOrder[int](g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 2, 6, 7, 3, 1}, order)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, dfs.Reverse([]int{1, 2, 3}))
	assert.Empty(t, dfs.Reverse([]int{}))
	assert.Equal(t, -1, dfs.IndexOf([]string{"a"}, "b"))
}
