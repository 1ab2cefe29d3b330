package dfs_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/dfs"
)

// BenchmarkCountPaths_Lattice compares the exhaustive and cached walk
// counters on a 10×10 monotone lattice (184756 walks).
func BenchmarkCountPaths_Lattice(b *testing.B) {
	type p struct{ x, y int }
	const n = 10
	next := func(v p) []p {
		out := make([]p, 0, 2)
		if v.x < n {
			out = append(out, p{v.x + 1, v.y})
		}
		if v.y < n {
			out = append(out, p{v.x, v.y + 1})
		}
		return out
	}
	corner := func(v p) bool { return v == p{n, n} }

	b.Run("exhaustive", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = dfs.CountPaths(p{}, corner, next)
		}
	})
	b.Run("memo", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = dfs.CountPathsMemo(p{}, corner, next)
		}
	})
}
