package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	zipped   bool

	cfg config.Config
	log *slog.Logger
}

// newRootCmd wires the command tree. Each call returns a fresh tree so tests
// can run commands without sharing flag state.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "graphtool",
		Short: "Inspect and traverse typed multigraph files",
		Long: `graphtool reads graph files produced by core.Graph.SaveBinary.

Examples:
  graphtool info deps.graph
  graphtool walk deps.graph --start main --mode post --edge calls
  graphtool strings deps.graph
  graphtool scc deps.graph --edge calls
  graphtool catalog put nightly deps.graph
  graphtool build ring.graph --shape cycle --n 8 --edge-type next`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML or TOML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	pf.BoolVar(&a.zipped, "zipped", false, "read and write deflate-compressed graph files")

	root.AddCommand(
		newInfoCmd(a),
		newWalkCmd(a),
		newStringsCmd(a),
		newDumpCmd(a),
		newTopoCmd(a),
		newCyclesCmd(a),
		newSCCCmd(a),
		newPathCmd(a),
		newDotCmd(a),
		newGraphMLCmd(a),
		newCSVCmd(a),
		newBuildCmd(a),
		newCatalogCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("zipped") {
		cfg.Zipped = a.zipped
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	return nil
}

// newGraph returns an empty graph configured from a.cfg.
func (a *app) newGraph() *core.Graph {
	return core.NewGraph(core.WithBuckets(a.cfg.Buckets), core.WithLogger(a.log))
}

// loadGraph reads the graph file at path.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	g := a.newGraph()
	var err error
	if a.cfg.Zipped {
		err = g.LoadBinaryZipped(path)
	} else {
		err = g.LoadBinary(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return g, nil
}

// saveGraph writes g to path.
func (a *app) saveGraph(g *core.Graph, path string) error {
	var err error
	if a.cfg.Zipped {
		err = g.SaveBinaryZipped(path)
	} else {
		err = g.SaveBinary(path)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// edgeFilter resolves the --edge flag values, falling back to the configured
// default edges and then to every edge type present in g.
func (a *app) edgeFilter(g *core.Graph, flags []string) (*core.EdgeTypeSet, error) {
	if len(flags) > 0 {
		set := core.NewEdgeTypeSet()
		for _, s := range flags {
			t, err := config.ParseEdgeType(s)
			if err != nil {
				return nil, err
			}
			set.Add(t)
		}
		return set, nil
	}
	types, err := a.cfg.EdgeTypes()
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		types = g.EdgeTypes()
	}

	return core.NewEdgeTypeSet(types...), nil
}
