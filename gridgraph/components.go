package gridgraph

import "github.com/katalvlaran/pathkit/unionfind"

// Regions partitions every cell into maximal groups of same-rune cells
// connected under g.Conn. Blocked cells form regions like any other rune.
// Regions are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d·α), where d = 4 or 8.
// Memory: O(W·H) for the union-find forest.
func (g *Grid) Regions() []Region {
	f := g.forest(func(p Point) bool { return true }, func(a, b Point) bool {
		ra, _ := g.At(a)
		rb, _ := g.At(b)
		return ra == rb
	})

	groups := f.Flatten()
	out := make([]Region, 0, len(groups))
	for _, members := range groups {
		reg := Region{Value: members[0].Weight, Cells: make([]Point, len(members))}
		for i, m := range members {
			reg.Cells[i] = m.Value
			reg.Perimeter += g.exposedSides(m.Value)
		}
		out = append(out, reg)
	}

	return out
}

// ConnectedComponents finds all contiguous groups ("islands") of
// non-blocked cells satisfying isLand, according to g.Conn connectivity.
// Components are ordered by their first cell in row-major order, and each
// lists its cells in row-major order.
//
// Time:   O(W·H·d·α), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) ConnectedComponents(isLand func(rune) bool) [][]Point {
	land := func(p Point) bool {
		r, _ := g.At(p)
		return !g.Blocked(p) && isLand(r)
	}
	f := g.forest(land, func(a, b Point) bool { return true })

	groups := f.Flatten()
	out := make([][]Point, len(groups))
	for i, members := range groups {
		out[i] = make([]Point, len(members))
		for j, m := range members {
			out[i][j] = m.Value
		}
	}

	return out
}

// forest inserts every cell accepted by keep as a root, in row-major order,
// then joins each kept cell with every kept neighbor for which join holds.
func (g *Grid) forest(keep func(Point) bool, join func(a, b Point) bool) *unionfind.Forest[Point, rune] {
	f := unionfind.WithCapacity[Point, rune](g.Width * g.Height)
	for y, row := range g.cells {
		for x, r := range row {
			if p := (Point{x, y}); keep(p) {
				f.InsertRootWeighted(p, r)
			}
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			if !f.Contains(p) {
				continue
			}
			for _, d := range g.offsets {
				n := p.Add(d)
				if f.Contains(n) && join(p, n) {
					f.Union(n, p)
				}
			}
		}
	}

	return f
}

// exposedSides counts the orthogonal sides of p that border a different
// rune or the grid edge.
func (g *Grid) exposedSides(p Point) int {
	r, _ := g.At(p)
	sides := 0
	for _, d := range conn4Offsets {
		if v, ok := g.At(p.Add(d)); !ok || v != r {
			sides++
		}
	}
	return sides
}
