package main

import (
	"os"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathkit/gridgraph"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	verbose     bool
	profilePath string

	logger  *zap.Logger
	profile Profile
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Search text grids: maze costs, region prices and trail counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.profilePath, "config", "c", "", "HCL cost profile (step_cost, turn_cost, wall)")

	rootCmd.AddCommand(newMazeCmd(a), newRegionsCmd(a), newTrailsCmd(a))
	return rootCmd
}

// setup builds the logger and loads the cost profile.
func (a *app) setup() error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	profile, loaded, err := LoadProfile(a.profilePath)
	if err != nil {
		return err
	}
	a.profile = profile
	a.logger.Debug("cost profile",
		zap.String("path", a.profilePath),
		zap.Bool("loaded", loaded),
		zap.Int("stepCost", profile.StepCost),
		zap.Int("turnCost", profile.TurnCost),
		zap.String("wall", profile.Wall))
	return nil
}

// readGrid parses the grid stored at path.
func (a *app) readGrid(path string, opts ...gridgraph.Option) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f, opts...)
	if err != nil {
		return nil, errors.Annotatef(err, "read grid %s", path)
	}
	a.logger.Info("grid loaded",
		zap.String("path", path),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("walls", g.NumBlocked()))
	return g, nil
}
