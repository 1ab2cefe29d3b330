// Package dfs implements depth-first algorithms over implicit graphs
// described by a NeighborFunc.
//
// Key features:
//   - Walk(src, next, opts...): single-source traversal with pre-/post-order
//     hooks (OnVisit, OnExit), MaxDepth, FilterNeighbor and a
//     SkippedNeighbors diagnostic.
//   - CountPaths: number of distinct walks from src to targets in a tree or
//     DAG. Deliberately keeps no visited set: two walks that share a vertex
//     are both counted. This differs from bfs.CountReachable, which counts
//     distinct target vertices.
//   - CountPathsMemo: the same count with a per-call cache, DAG only.
//   - HasCycle / FindCycle: three-color back-edge detection.
//   - TopologicalOrder: reverse post-order of the vertices reachable from src.
//
// Complexity:
//
//   - Walk, FindCycle, TopologicalOrder, CountPathsMemo: O(V + E)
//   - CountPaths: O(number of walks), exponential in the worst case
//   - Memory: O(V) for recursion stack and state maps.
//
// Errors:
//
//   - ErrCycleDetected from TopologicalOrder (and as the panic value of
//     CountPathsMemo).
//   - Any error returned by OnVisit or OnExit, wrapped.
package dfs
