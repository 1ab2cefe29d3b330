package main

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/gridgraph"
	"github.com/katalvlaran/pathkit/memo"
)

// heading is a search state: a position and the direction faced there.
type heading struct {
	Pos gridgraph.Point
	Dir gridgraph.Direction
}

// mazeReport summarises one maze.
type mazeReport struct {
	Steps int // fewest moves from S to E ignoring turns
	Cost  int // cheapest cost counting turns
	Tiles int // cells on at least one cheapest route
}

var errNoRoute = errors.New("no route from S to E")

func newMazeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "maze FILE",
		Short: "Fewest steps, cheapest turn-weighted cost and best-route tiles from S to E",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGrid(args[0], gridgraph.WithWalls(a.profile.Wall))
			if err != nil {
				return err
			}
			rep, err := solveMaze(g, a.profile)
			if err != nil {
				return errors.Annotatef(err, "maze %s", args[0])
			}
			a.logger.Info("maze solved",
				zap.Int("steps", rep.Steps),
				zap.Int("cost", rep.Cost),
				zap.Int("tiles", rep.Tiles))
			fmt.Fprintf(cmd.OutOrStdout(), "steps: %d\ncost: %d\ntiles: %d\n", rep.Steps, rep.Cost, rep.Tiles)
			return nil
		},
	}
}

// solveMaze searches from S, initially facing east, to E. Moving forward
// costs p.StepCost and a quarter turn in place costs p.TurnCost.
func solveMaze(g *gridgraph.Grid, p Profile) (mazeReport, error) {
	start, ok := g.Find('S')
	if !ok {
		return mazeReport{}, errors.New("maze has no S")
	}
	end, ok := g.Find('E')
	if !ok {
		return mazeReport{}, errors.New("maze has no E")
	}

	steps, ok := bfs.ShortestPathLength(start, end, g.Neighbors)
	if !ok {
		return mazeReport{}, errNoRoute
	}

	open := func(q gridgraph.Point) bool { return g.InBounds(q) && !g.Blocked(q) }
	turns := func(h heading) []dijkstra.Edge[heading] {
		return []dijkstra.Edge[heading]{
			{Cost: p.TurnCost, To: heading{h.Pos, h.Dir.Clockwise()}},
			{Cost: p.TurnCost, To: heading{h.Pos, h.Dir.CounterClockwise()}},
		}
	}
	children := memo.New(func(h heading) []dijkstra.Edge[heading] {
		out := turns(h)
		if q := h.Pos.Add(h.Dir.Offset()); open(q) {
			out = append(out, dijkstra.Edge[heading]{Cost: p.StepCost, To: heading{q, h.Dir}})
		}
		return out
	}).Func()
	parents := func(h heading) []dijkstra.Edge[heading] {
		out := turns(h)
		if q := h.Pos.Sub(h.Dir.Offset()); open(q) {
			out = append(out, dijkstra.Edge[heading]{Cost: p.StepCost, To: heading{q, h.Dir}})
		}
		return out
	}

	targets := make([]heading, 0, len(gridgraph.Directions))
	for _, d := range gridgraph.Directions {
		targets = append(targets, heading{end, d})
	}
	on, cost, ok := dijkstra.OnCheapestPaths(heading{start, gridgraph.East}, targets, children, parents)
	if !ok {
		return mazeReport{}, errNoRoute
	}

	tiles := make(map[gridgraph.Point]struct{}, len(on))
	for h := range on {
		tiles[h.Pos] = struct{}{}
	}

	return mazeReport{Steps: steps, Cost: cost, Tiles: len(tiles)}, nil
}
