// Package bfs provides breadth-first search over implicit graphs,
// returning reachability, unweighted shortest paths and hop distances.
//
// What
//
//   - An implicit graph is described by a NeighborFunc: given a vertex it
//     returns the vertex's successors. Nothing is stored between calls.
//   - CountReachable: number of distinct reachable target vertices.
//   - PathExists / PathExistsTo: early-exit reachability.
//   - ShortestPath / ShortestPathFunc: a minimum edge-count path.
//   - ShortestPathLength / ShortestPathLengthFunc: only its length.
//   - Distances: hop count to every reachable vertex.
//   - Traverse: full search with hooks, depth limit and neighbor filter,
//     returning a Result with Order, Depth, Parent and PathTo.
//
// Determinism
//
//	Vertices are discovered in the order the NeighborFunc returns them, so a
//	deterministic NeighborFunc yields a reproducible visit order and path.
//
// Complexity (V = reachable vertices, E = edges among them)
//
//   - Time:   O(V + E) calls into the NeighborFunc's output
//   - Memory: O(V) for queue, visited set and parent map
//
// Usage
//
//	next := func(x int) []int { return []int{x + 1, x * 2} }
//	path, ok := bfs.ShortestPath(1, 10, next) // [1 2 4 5 10]
//
//	res := bfs.Traverse(1, next, bfs.WithMaxDepth[int](3))
//
// Errors
//
//   - ErrOptionViolation (as a panic value) for WithMaxDepth(d < 0).
//
// Unreachable targets are never errors: the ok result is false.
package bfs
