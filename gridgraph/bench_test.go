package gridgraph_test

import (
	"math/rand"
	"testing"
	"unicode"

	"github.com/katalvlaran/pathkit/gridgraph"
)

// randomRows builds an n×n grid of runes drawn from alphabet.
func randomRows(n int, alphabet string) []string {
	rng := rand.New(rand.NewSource(42))
	rows := make([]string, n)
	buf := make([]byte, n)
	for y := range rows {
		for x := range buf {
			buf[x] = alphabet[rng.Intn(len(alphabet))]
		}
		rows[y] = string(buf)
	}
	return rows
}

// BenchmarkRegions measures Regions on a 300×300 grid of four letters.
// Complexity: O(W×H×d×α)
func BenchmarkRegions(b *testing.B) {
	g, err := gridgraph.New(randomRows(300, "ABCD"))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}

// BenchmarkConnectedComponents measures island detection on a 300×300 grid
// where roughly half the cells are land.
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := gridgraph.New(randomRows(300, "1."))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(unicode.IsDigit)
	}
}
