// Package pathkit is a toolkit for searching graphs that are never stored:
// a graph is whatever a successor function says it is.
//
// What is in the box?
//
//	idmap/      bidirectional value ↔ dense-id interning
//	memo/       cache for pure functions, typically successor functions
//	unionfind/  disjoint-set forest with per-node weights and lazy path compression
//	bfs/        reachability counts, early-exit existence, unweighted shortest paths
//	dfs/        walk counting in trees and DAGs, post-order, cycles, topological order
//	dijkstra/   cheapest paths with integer costs, and the vertices on any cheapest path
//	gridgraph/  text grids as implicit graphs: neighbors, regions, islands
//
// and a small command, cmd/gridpath, that runs these over grid files.
//
// Every search takes a start vertex of any comparable type plus a closure:
//
//	next := func(x int) []int { return []int{x + 1, x * 2} }
//	path, ok := bfs.ShortestPath(1, 10, next)
//
// Searches are synchronous, keep their state for the duration of one call
// and report "not found" as a false ok rather than an error.
package pathkit
