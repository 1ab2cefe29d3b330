package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/dfs"
)

// ExampleCountPaths counts the monotone routes across a 2×2 block of
// streets, which is C(4, 2).
func ExampleCountPaths() {
	type corner struct{ x, y int }
	next := func(c corner) []corner {
		var out []corner
		if c.x < 2 {
			out = append(out, corner{c.x + 1, c.y})
		}
		if c.y < 2 {
			out = append(out, corner{c.x, c.y + 1})
		}
		return out
	}
	home := func(c corner) bool { return c == corner{2, 2} }
	fmt.Println(dfs.CountPaths(corner{}, home, next))
	// Output: 6
}

// ExampleTopologicalOrder orders build steps.
func ExampleTopologicalOrder() {
	deps := map[string][]string{
		"fetch":   {"compile"},
		"compile": {"test", "package"},
		"test":    {"package"},
	}
	order, err := dfs.TopologicalOrder("fetch", func(s string) []string { return deps[s] })
	fmt.Println(order, err)
	// Output: [fetch compile test package] <nil>
}
