// Package gridgraph provides utilities to treat a 2D grid of runes as an
// implicit graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Neighbor functions that plug into bfs, dfs and dijkstra
//   - Same-value regions with area and perimeter
//   - Connected components of "land" cells and minimal conversions between them
//
// Cells whose rune is listed in Options.Walls are blocked.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// New constructs a Grid from non-empty rows of equal rune length.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, y, len(cells[y]), len(cells[0]))
		}
	}

	g := &Grid{
		Width:   len(cells[0]),
		Height:  len(cells),
		Conn:    o.Conn,
		cells:   cells,
		offsets: conn4Offsets,
		blocked: roaring.New(),
	}
	if o.Conn == Conn8 {
		g.offsets = conn8Offsets
	}
	for y, row := range cells {
		for x, r := range row {
			if strings.ContainsRune(o.Walls, r) {
				g.blocked.Add(uint32(g.index(Point{x, y})))
			}
		}
	}

	return g, nil
}

// Parse reads one row per line from r and builds a Grid. Trailing blank
// lines are ignored.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows, opts...)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune stored at p; ok is false when p is out of bounds.
func (g *Grid) At(p Point) (r rune, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Blocked reports whether p is a wall cell. Out-of-bounds points are not
// blocked; use InBounds for that.
func (g *Grid) Blocked(p Point) bool {
	return g.InBounds(p) && g.blocked.Contains(uint32(g.index(p)))
}

// NumBlocked returns the number of wall cells.
func (g *Grid) NumBlocked() int { return int(g.blocked.GetCardinality()) }

// NeighborOffsets returns the offsets used by Neighbors for g.Conn.
func (g *Grid) NeighborOffsets() []Point {
	return g.offsets
}

// Neighbors returns the in-bounds, non-blocked neighbors of p.
// It has the shape of bfs.NeighborFunc.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := p.Add(d)
		if g.InBounds(n) && !g.blocked.Contains(uint32(g.index(n))) {
			out = append(out, n)
		}
	}
	return out
}

// SameNeighbors returns the in-bounds neighbors of p holding the same rune.
func (g *Grid) SameNeighbors(p Point) []Point {
	r, ok := g.At(p)
	if !ok {
		return nil
	}
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		if v, ok := g.At(p.Add(d)); ok && v == r {
			out = append(out, p.Add(d))
		}
	}
	return out
}

// Find returns the first cell, in row-major order, holding r.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if v == r {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell holding r in row-major order.
func (g *Grid) FindAll(r rune) []Point {
	var out []Point
	for y, row := range g.cells {
		for x, v := range row {
			if v == r {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// index maps p to a row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}
