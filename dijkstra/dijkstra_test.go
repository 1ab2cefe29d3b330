// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate cheapest costs and paths, options such as MaxDistance,
// InfEdgeThreshold and StopAt, and the cheapest-path tile union.
package dijkstra_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/dijkstra"
)

// ring is a six-vertex cycle 0..5 with unit costs, plus a weighted
// triangle 6–7 (10), 6–8 (1), 7–8 (5).
func ring(x uint8) []dijkstra.Edge[uint8] {
	e := func(c int, to uint8) dijkstra.Edge[uint8] { return dijkstra.Edge[uint8]{Cost: c, To: to} }
	switch x {
	case 0:
		return []dijkstra.Edge[uint8]{e(1, 1), e(1, 5)}
	case 1:
		return []dijkstra.Edge[uint8]{e(1, 0), e(1, 2)}
	case 2:
		return []dijkstra.Edge[uint8]{e(1, 1), e(1, 3)}
	case 3:
		return []dijkstra.Edge[uint8]{e(1, 2), e(1, 4)}
	case 4:
		return []dijkstra.Edge[uint8]{e(1, 3), e(1, 5)}
	case 5:
		return []dijkstra.Edge[uint8]{e(1, 4), e(1, 0)}
	case 6:
		return []dijkstra.Edge[uint8]{e(10, 7), e(1, 8)}
	case 7:
		return []dijkstra.Edge[uint8]{e(10, 6), e(5, 8)}
	case 8:
		return []dijkstra.Edge[uint8]{e(1, 6), e(5, 7)}
	}
	return nil
}

func none(uint8) []dijkstra.Edge[uint8] { return nil }

// ------------------------------------------------------------------------
// 1. Cheapest paths
// ------------------------------------------------------------------------

func TestCheapestPath_Ring(t *testing.T) {
	cases := []struct {
		src, tgt uint8
		path     []uint8
		cost     int
	}{
		{0, 5, []uint8{0, 5}, 1},
		{0, 4, []uint8{0, 5, 4}, 2},
		{0, 2, []uint8{0, 1, 2}, 2},
		{0, 0, []uint8{0}, 0},
		{6, 7, []uint8{6, 8, 7}, 6},
	}
	for _, c := range cases {
		path, cost, ok := dijkstra.CheapestPath(c.src, c.tgt, ring)
		if !ok {
			t.Fatalf("CheapestPath(%d, %d): expected a path", c.src, c.tgt)
		}
		if !reflect.DeepEqual(path, c.path) || cost != c.cost {
			t.Errorf("CheapestPath(%d, %d) = %v, %d; want %v, %d", c.src, c.tgt, path, cost, c.path, c.cost)
		}
	}

	cost, ok := dijkstra.CheapestPathCost(6, 7, ring)
	require.True(t, ok)
	assert.Equal(t, 6, cost)
}

func TestCheapestPath_NoPath(t *testing.T) {
	path, cost, ok := dijkstra.CheapestPath(0, 1, none)
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.Zero(t, cost)

	_, ok = dijkstra.CheapestPathCost(0, 1, none)
	assert.False(t, ok)

	// separate components of ring
	_, ok = dijkstra.CheapestPathCost(0, 7, ring)
	assert.False(t, ok)
}

func TestCheapestPathFunc_NearestTarget(t *testing.T) {
	isHigh := func(v uint8) bool { return v >= 3 && v <= 5 }
	path, cost, ok := dijkstra.CheapestPathFunc(0, isHigh, ring)
	require.True(t, ok)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []uint8{0, 5}, path)

	cost, ok = dijkstra.CheapestPathCostFunc(5, isHigh, ring)
	require.True(t, ok)
	assert.Zero(t, cost)
}

func TestCheapestPathCost_MonotonicInWeights(t *testing.T) {
	base, ok := dijkstra.CheapestPathCost(6, 7, ring)
	require.True(t, ok)

	for _, extra := range []int{0, 1, 3, 10, 100} {
		heavier := func(x uint8) []dijkstra.Edge[uint8] {
			edges := ring(x)
			out := make([]dijkstra.Edge[uint8], len(edges))
			for i, e := range edges {
				if e.To == 8 || x == 8 {
					e.Cost += extra
				}
				out[i] = e
			}
			return out
		}
		cost, ok := dijkstra.CheapestPathCost(6, 7, heavier)
		require.True(t, ok)
		assert.GreaterOrEqual(t, cost, base, "extra=%d", extra)
	}
}

func TestNegativeEdgesSkipped(t *testing.T) {
	next := func(x int) []dijkstra.Edge[int] {
		switch x {
		case 0:
			return []dijkstra.Edge[int]{{Cost: -5, To: 1}, {Cost: 3, To: 2}}
		case 2:
			return []dijkstra.Edge[int]{{Cost: 1, To: 1}}
		}
		return nil
	}
	path, cost, ok := dijkstra.CheapestPath(0, 1, next)
	require.True(t, ok)
	assert.Equal(t, 4, cost)
	assert.Equal(t, []int{0, 2, 1}, path)
}

// ------------------------------------------------------------------------
// 2. Run and options
// ------------------------------------------------------------------------

func TestDistances_Ring(t *testing.T) {
	got := dijkstra.Distances(0, ring)
	want := map[uint8]int{0: 0, 1: 1, 5: 1, 2: 2, 4: 2, 3: 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Distances = %v; want %v", got, want)
	}
}

func TestRun_PathTo(t *testing.T) {
	res := dijkstra.Run(6, ring)
	assert.False(t, res.Found)
	assert.Equal(t, uint8(6), res.Source)

	path, ok := res.PathTo(7)
	require.True(t, ok)
	assert.Equal(t, []uint8{6, 8, 7}, path)

	path, ok = res.PathTo(6)
	require.True(t, ok)
	assert.Equal(t, []uint8{6}, path)

	_, ok = res.PathTo(0)
	assert.False(t, ok)
}

func TestRun_MaxDistance(t *testing.T) {
	res := dijkstra.Run(0, ring, dijkstra.WithMaxDistance[uint8](1))
	assert.Equal(t, map[uint8]int{0: 0, 1: 1, 5: 1}, res.Dist)

	res = dijkstra.Run(0, ring, dijkstra.WithMaxDistance[uint8](0))
	assert.Equal(t, map[uint8]int{0: 0}, res.Dist)
}

func TestRun_InfEdgeThreshold(t *testing.T) {
	// 6–7 (10) and 7–8 (5) become impassable, isolating 7.
	res := dijkstra.Run(6, ring, dijkstra.WithInfEdgeThreshold[uint8](5))
	assert.Equal(t, map[uint8]int{6: 0, 8: 1}, res.Dist)

	// only 6–7 (10) is impassable; 7 is still reached through 8.
	res = dijkstra.Run(6, ring, dijkstra.WithInfEdgeThreshold[uint8](10))
	assert.Equal(t, 6, res.Dist[7])
}

func TestRun_StopAt(t *testing.T) {
	res := dijkstra.Run(0, ring, dijkstra.WithStopAt(func(v uint8) bool { return v == 2 }))
	require.True(t, res.Found)
	assert.Equal(t, uint8(2), res.Target)
	assert.Equal(t, 2, res.Dist[2])
	_, settled := res.Dist[3]
	assert.False(t, settled)
}

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance[int](-1)
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold[int](0)
	})
}

// ------------------------------------------------------------------------
// 3. Vertices on cheapest paths
// ------------------------------------------------------------------------

type cell struct{ x, y int }

// openGrid returns children for a w×h grid with unit step costs where
// walls are impassable. The graph is undirected, so it is its own parents.
func openGrid(w, h int, walls map[cell]bool) dijkstra.EdgeFunc[cell] {
	return func(c cell) []dijkstra.Edge[cell] {
		var out []dijkstra.Edge[cell]
		for _, d := range []cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := cell{c.x + d.x, c.y + d.y}
			if n.x < 0 || n.y < 0 || n.x >= w || n.y >= h || walls[n] {
				continue
			}
			out = append(out, dijkstra.Edge[cell]{Cost: 1, To: n})
		}
		return out
	}
}

func TestOnCheapestPaths_TwoRoutes(t *testing.T) {
	// S . .
	// . # .
	// . . E
	next := openGrid(3, 3, map[cell]bool{{1, 1}: true})
	on, cost, ok := dijkstra.OnCheapestPaths(cell{0, 0}, []cell{{2, 2}}, next, next)
	require.True(t, ok)
	assert.Equal(t, 4, cost)
	assert.Len(t, on, 8)
	assert.NotContains(t, on, cell{1, 1})
}

func TestOnCheapestPaths_SingleRoute(t *testing.T) {
	// S . .
	// # # .
	// E . .
	next := openGrid(3, 3, map[cell]bool{{0, 1}: true, {1, 1}: true})
	on, cost, ok := dijkstra.OnCheapestPaths(cell{0, 0}, []cell{{0, 2}}, next, next)
	require.True(t, ok)
	assert.Equal(t, 6, cost)
	assert.Len(t, on, 7)
	assert.NotContains(t, on, cell{0, 1})
}

func TestOnCheapestPaths_MultipleTargets(t *testing.T) {
	line := func(x int) []dijkstra.Edge[int] {
		var out []dijkstra.Edge[int]
		if x > 0 {
			out = append(out, dijkstra.Edge[int]{Cost: 1, To: x - 1})
		}
		if x < 5 {
			out = append(out, dijkstra.Edge[int]{Cost: 1, To: x + 1})
		}
		return out
	}
	on, cost, ok := dijkstra.OnCheapestPaths(0, []int{3, 2, 5}, line, line)
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, on)
}

func TestOnCheapestPaths_Directed(t *testing.T) {
	// 0→1 (1), 0→2 (1), 1→3 (1), 2→3 (1), 0→3 (5)
	children := func(x int) []dijkstra.Edge[int] {
		switch x {
		case 0:
			return []dijkstra.Edge[int]{{Cost: 1, To: 1}, {Cost: 1, To: 2}, {Cost: 5, To: 3}}
		case 1, 2:
			return []dijkstra.Edge[int]{{Cost: 1, To: 3}}
		}
		return nil
	}
	parents := func(x int) []dijkstra.Edge[int] {
		switch x {
		case 1, 2:
			return []dijkstra.Edge[int]{{Cost: 1, To: 0}}
		case 3:
			return []dijkstra.Edge[int]{{Cost: 1, To: 1}, {Cost: 1, To: 2}, {Cost: 5, To: 0}}
		}
		return nil
	}
	on, cost, ok := dijkstra.OnCheapestPaths(0, []int{3}, children, parents)
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	assert.Len(t, on, 4)
}

func TestOnCheapestPaths_Unreachable(t *testing.T) {
	on, cost, ok := dijkstra.OnCheapestPaths(0, []uint8{7}, ring, ring)
	assert.False(t, ok)
	assert.Nil(t, on)
	assert.Zero(t, cost)

	on, cost, ok = dijkstra.OnCheapestPaths(0, nil, ring, ring)
	assert.False(t, ok)
	assert.Nil(t, on)
	assert.Zero(t, cost)
}

func TestOnCheapestPaths_SourceIsTarget(t *testing.T) {
	on, cost, ok := dijkstra.OnCheapestPaths(3, []uint8{3}, ring, ring)
	require.True(t, ok)
	assert.Zero(t, cost)
	assert.Equal(t, map[uint8]struct{}{3: {}}, on)
}
