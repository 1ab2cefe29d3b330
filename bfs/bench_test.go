package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/bfs"
)

// BenchmarkDistances_Chain measures a full BFS over a chain of N vertices.
func BenchmarkDistances_Chain(b *testing.B) {
	const N = 10000
	chain := func(x int) []int {
		if x < N {
			return []int{x + 1}
		}
		return nil
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Distances(0, chain)
	}
}

// BenchmarkShortestPath_BinaryTree searches the deepest leaf of an implicit
// complete binary tree with 2^14−1 vertices.
func BenchmarkShortestPath_BinaryTree(b *testing.B) {
	const last = 1<<14 - 1
	tree := func(x int) []int {
		if 2*x+1 > last {
			return nil
		}
		return []int{2 * x, 2*x + 1}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(1, last, tree)
	}
}
