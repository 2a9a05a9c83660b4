package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/dfs"
)

func newTopoCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "topo FILE",
		Short: "Print a topological order of the nodes",
		Long: `Print one UID per line in topological order over the selected edge
types. Fails with the offending node when the edges contain a cycle.`,
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
			order, err := dfs.TopologicalSort(g, set, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				if errors.Is(err, dfs.ErrCycleDetected) {
					a.log.Warn("graph is not acyclic", "file", args[0])
				}
				return err
			}
			out := cmd.OutOrStdout()
			for _, uid := range order {
				fmt.Fprintln(out, uid)
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}

func newCyclesCmd(a *app) *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "cycles FILE",
		Short: "List the simple cycles over the selected edge types",
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
			found, cycles, err := dfs.DetectCycles(g, set)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !found {
				fmt.Fprintln(out, "no cycles")
				return nil
			}
			for _, c := range cycles {
				fmt.Fprintln(out, strings.Join(c, " -> "))
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")

	return cmd
}
