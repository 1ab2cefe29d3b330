package gridgraph

import "github.com/katalvlaran/pathkit/dijkstra"

// virtualSource is the out-of-bounds hub linked at zero cost to every cell
// of the source component.
var virtualSource = Point{-1, -1}

// ExpandIsland finds a minimum-conversion path of "water" cells (non-blocked
// cells not satisfying isLand) that connects any cell of component srcComp
// to any cell of component dstComp, as numbered by ConnectedComponents.
// Each water-cell conversion costs 1 and blocked cells are impassable.
// Returns the cells of the path (including the start and end land cells)
// and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source Dijkstra from all srcComp cells through a virtual hub:
//     • Moving into a land cell   → cost 0
//     • Moving into a water cell  → cost 1
//  3. Stop when any dstComp cell is settled.
//  4. Reconstruct the path and drop the hub.
//
// Complexity: O(W·H · log(W·H)).
// Memory:     O(W·H) for distances and predecessors.
func (g *Grid) ExpandIsland(isLand func(rune) bool, srcComp, dstComp int) ([]Point, int, error) {
	comps := g.ConnectedComponents(isLand)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	seeds := make([]dijkstra.Edge[Point], len(comps[srcComp]))
	for i, p := range comps[srcComp] {
		seeds[i] = dijkstra.Edge[Point]{Cost: 0, To: p}
	}
	next := func(p Point) []dijkstra.Edge[Point] {
		if p == virtualSource {
			return seeds
		}
		out := make([]dijkstra.Edge[Point], 0, len(conn4Offsets))
		for _, d := range conn4Offsets {
			n := p.Add(d)
			r, ok := g.At(n)
			if !ok || g.Blocked(n) {
				continue
			}
			step := 1
			if isLand(r) {
				step = 0
			}
			out = append(out, dijkstra.Edge[Point]{Cost: step, To: n})
		}
		return out
	}
	isDst := func(p Point) bool {
		_, ok := dstSet[p]
		return ok
	}

	path, cost, ok := dijkstra.CheapestPathFunc(virtualSource, isDst, next)
	if !ok {
		return nil, 0, ErrNoPath
	}

	return path[1:], cost, nil
}
