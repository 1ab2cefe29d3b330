package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/dfs"
	"github.com/katalvlaran/pathkit/gridgraph"
)

// trailsReport summarises a topographic map of digit heights.
type trailsReport struct {
	Trailheads int
	Score      int // summed count of distinct peaks reachable per trailhead
	Rating     int // summed count of distinct hiking trails per trailhead
}

func newTrailsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trails FILE",
		Short: "Score and rate hiking trails climbing from 0 to 9 one step at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGrid(args[0], gridgraph.WithWalls(""))
			if err != nil {
				return err
			}
			rep := rateTrails(g)
			a.logger.Info("trails rated",
				zap.Int("trailheads", rep.Trailheads),
				zap.Int("score", rep.Score),
				zap.Int("rating", rep.Rating))
			fmt.Fprintf(cmd.OutOrStdout(), "trailheads: %d\nscore: %d\nrating: %d\n", rep.Trailheads, rep.Score, rep.Rating)
			return nil
		},
	}
}

// rateTrails walks uphill from every '0'. A trail steps orthogonally to a
// cell exactly one higher; non-digit cells are impassable.
func rateTrails(g *gridgraph.Grid) trailsReport {
	height := func(p gridgraph.Point) int {
		r, ok := g.At(p)
		if !ok || r < '0' || r > '9' {
			return -1
		}
		return int(r - '0')
	}
	uphill := func(p gridgraph.Point) []gridgraph.Point {
		h := height(p)
		var out []gridgraph.Point
		for _, n := range g.Neighbors(p) {
			if height(n) == h+1 {
				out = append(out, n)
			}
		}
		return out
	}
	isPeak := func(p gridgraph.Point) bool { return height(p) == 9 }

	var rep trailsReport
	for _, head := range g.FindAll('0') {
		rep.Trailheads++
		rep.Score += bfs.CountReachable(head, isPeak, uphill)
		rep.Rating += dfs.CountPaths(head, isPeak, uphill)
	}
	return rep
}
