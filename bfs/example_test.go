package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/bfs"
)

// ExampleShortestPath finds the fewest "+1 or ×2" moves from 1 to 10.
func ExampleShortestPath() {
	next := func(x int) []int { return []int{x + 1, x * 2} }
	path, ok := bfs.ShortestPath(1, 10, next)
	fmt.Println(path, ok)
	// Output: [1 2 4 5 10] true
}

// ExampleCountReachable counts multiples of 3 reachable on a bounded line.
func ExampleCountReachable() {
	next := func(x int) []int {
		var out []int
		if x > 0 {
			out = append(out, x-1)
		}
		if x < 20 {
			out = append(out, x+1)
		}
		return out
	}
	fmt.Println(bfs.CountReachable(10, func(x int) bool { return x%3 == 0 }, next))
	// Output: 7
}
