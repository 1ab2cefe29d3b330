package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathkit/gridgraph"
)

// regionsReport summarises the plots of a garden map.
type regionsReport struct {
	Regions int
	Price   int // sum of area × perimeter
	Largest gridgraph.Region
}

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions FILE",
		Short: "Count same-letter regions and their total fence price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGrid(args[0], gridgraph.WithWalls(""))
			if err != nil {
				return err
			}
			rep := priceRegions(g)
			a.logger.Info("regions priced",
				zap.Int("regions", rep.Regions),
				zap.Int("price", rep.Price),
				zap.String("largest", string(rep.Largest.Value)),
				zap.Int("largestArea", rep.Largest.Area()))
			fmt.Fprintf(cmd.OutOrStdout(), "regions: %d\nprice: %d\n", rep.Regions, rep.Price)
			return nil
		},
	}
}

func priceRegions(g *gridgraph.Grid) regionsReport {
	var rep regionsReport
	for _, r := range g.Regions() {
		rep.Regions++
		rep.Price += r.Price()
		if r.Area() > rep.Largest.Area() {
			rep.Largest = r
		}
	}
	return rep
}
