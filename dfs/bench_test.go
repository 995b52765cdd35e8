package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-paths/dfs"
)

// BenchmarkPostOrder_Chain10000 measures post-order on a 10,000-vertex chain.
// Recursion depth equals the chain length.
func BenchmarkPostOrder_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.PostOrder[int](g, 0)
	}
}

// BenchmarkTopologicalSort_Chain10000 measures the cycle-checked variant on the same chain.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := buildChain(10000)
	starts := []int{0}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort[int](g, starts)
	}
}
