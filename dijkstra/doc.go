// Package dijkstra provides Dijkstra's cheapest-path algorithm on implicit
// graphs with non-negative integer edge costs.
//
// Overview:
//
//   - The graph is described by an EdgeFunc: given a vertex it returns the
//     weighted successors as []Edge{Cost, To}. Nothing is stored between calls.
//   - CheapestPathCost / CheapestPathCostFunc: minimal cost to one target or
//     to the nearest vertex satisfying a predicate.
//   - CheapestPath / CheapestPathFunc: the same plus one cheapest path.
//   - Distances / Run: cheapest cost to every reachable vertex, with a
//     predecessor map for path reconstruction (Result.PathTo).
//   - OnCheapestPaths: every vertex lying on any cheapest path to the
//     cheapest of several targets, from one forward search over children and
//     one backward search per best target over parents.
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//   - StopAt: ends the search at the first settled target vertex.
//
// Contract:
//
//   - Edge costs must be non-negative. Negative-cost edges are skipped.
//   - Each vertex is settled at most once; a tentative distance is replaced
//     only by a strictly smaller one.
//   - Among several cheapest paths the one returned is unspecified.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for distances, predecessors and heap entries.
//
// Example:
//
//	next := func(x int) []dijkstra.Edge[int] {
//		return []dijkstra.Edge[int]{{Cost: 1, To: x + 1}, {Cost: 3, To: x * 2}}
//	}
//	path, cost, ok := dijkstra.CheapestPath(1, 8, next)
//
// Errors:
//
//   - ErrBadMaxDistance  (panic value) for WithMaxDistance(max < 0).
//   - ErrBadInfThreshold (panic value) for WithInfEdgeThreshold(t ≤ 0).
//
// Unreachable targets are never errors: the ok result is false.
package dijkstra
