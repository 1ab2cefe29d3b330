// Package gridgraph defines core types and options for the gridgraph
// package of github.com/katalvlaran/pathkit.
package gridgraph

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate; X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Sub returns p shifted by -d.
func (p Point) Sub(d Point) Point { return Point{p.X - d.X, p.Y - d.Y} }

// Direction is one of the four compass headings, in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var (
	conn4Offsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offset returns the unit step for d.
func (d Direction) Offset() Point { return conn4Offsets[d&3] }

// Clockwise returns the heading after a right turn.
func (d Direction) Clockwise() Direction { return (d + 1) & 3 }

// CounterClockwise returns the heading after a left turn.
func (d Direction) CounterClockwise() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	}
	return "W"
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors and
	// SameNeighbors. Perimeters and ExpandIsland are always orthogonal.
	Conn Connectivity
	// Walls lists the runes that mark blocked cells.
	Walls string
}

// Option configures New and Parse.
type Option func(*Options)

// DefaultOptions returns Conn4 connectivity with '#' as the only wall rune.
func DefaultOptions() Options {
	return Options{
		Conn:  Conn4,
		Walls: "#",
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithWalls replaces the set of wall runes. An empty set means no cell is
// blocked.
func WithWalls(walls string) Option {
	return func(o *Options) { o.Walls = walls }
}

// Grid treats a rectangular rune grid as an implicit graph. It is immutable
// once built. Blocked holds the row-major indices of wall cells.
type Grid struct {
	Width, Height int
	Conn          Connectivity

	cells   [][]rune
	offsets []Point
	blocked *roaring.Bitmap
}

// Region is a maximal group of connected cells sharing one rune.
type Region struct {
	Value     rune
	Cells     []Point // row-major order
	Perimeter int     // cell edges not shared with a cell of the region
}

// Area is the number of cells in the region.
func (r Region) Area() int { return len(r.Cells) }

// Price is area times perimeter.
func (r Region) Price() int { return r.Area() * r.Perimeter }
