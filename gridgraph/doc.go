// Package gridgraph treats a 2D grid of runes as an implicit graph, enabling
// path searches, region analysis and minimal-cost "island" expansions.
//
// What:
//
//   - Grid wraps rectangular rune rows (New, or Parse from a reader).
//   - Wall runes (Options.Walls, default "#") are tracked in a roaring
//     bitmap of row-major indices and are skipped by Neighbors.
//   - Neighbors / SameNeighbors are NeighborFuncs for bfs and dfs.
//   - Regions groups same-rune cells with union-find and reports area,
//     perimeter and price (area × perimeter).
//   - ConnectedComponents groups non-blocked cells satisfying a predicate.
//   - ExpandIsland computes minimal conversions (0-1 costs on dijkstra) to
//     connect two components.
//   - Point and Direction give coordinates and compass headings for
//     building richer state graphs, such as (position, heading) searches.
//
// Complexity:
//
//   - Regions, ConnectedComponents: O(W×H×d×α), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:                 O(W×H×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithWalls: runes treated as blocked.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
