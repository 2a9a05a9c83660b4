package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/converters"
	"github.com/katalvlaran/graphlib/core"
)

func newSCCCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "scc FILE",
		Short: "List strongly connected components, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			set, err := a.edgeFilter(g, edges)
			if err != nil {
				return err
			}
			comps, err := converters.StronglyConnected(g, set)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range comps {
				fmt.Fprintln(out, strings.Join(c, " "))
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "path FILE FROM TO",
		Short: "Print a shortest path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			set, err := a.edgeFilter(g, edges)
			if err != nil {
				return err
			}
			path, err := converters.ShortestPath(g, set, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}

func newDotCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Render the graph in Graphviz DOT format",
		Long: `Render the graph in Graphviz DOT format. Parallel edges of the
selected types collapse into one arrow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			set, err := a.edgeFilter(g, edges)
			if err != nil {
				return err
			}

			return converters.WriteDOT(cmd.OutOrStdout(), g, set)
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}

func newGraphMLCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "graphml FILE",
		Short: "Render the graph as GraphML",
		Long: `Render the graph as a GraphML document. Every edge of the selected
types is written; a bidirectional pair appears once as an undirected edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			set, err := a.edgeFilter(g, edges)
			if err != nil {
				return err
			}

			return converters.WriteGraphML(cmd.OutOrStdout(), g, set)
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}

func newCSVCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "csv",
		Short: "Convert between graph files and sectioned CSV",
		Long: `Convert between graph files and sectioned CSV: one section per node
type and per edge type, one attribute per column.

Examples:
  graphtool csv export deps.graph > deps.csv
  graphtool csv import deps.csv deps.graph`,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "export FILE",
			Short: "Write FILE as CSV to stdout",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := a.loadGraph(args[0])
				if err != nil {
					return err
				}
				return converters.WriteCSV(cmd.OutOrStdout(), g)
			},
		},
		&cobra.Command{
			Use:   "import CSV OUT",
			Short: "Build a graph file OUT from CSV",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				g, err := converters.ReadCSV(f, core.WithBuckets(a.cfg.Buckets), core.WithLogger(a.log))
				if err != nil {
					return fmt.Errorf("import %s: %w", args[0], err)
				}
				a.log.Debug("csv imported", "path", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

				return a.saveGraph(g, args[1])
			},
		},
	)

	return root
}
