package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/bfs"
	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/dfs"
)

// walkModes maps --mode values to traversals. Every entry records events into
// rec and returns the visit order.
var walkModes = map[string]func(ctx context.Context, g *core.Graph, start core.Node, set *core.EdgeTypeSet, rec core.Visitor, depth int) ([]string, error){
	"bfs": func(ctx context.Context, g *core.Graph, start core.Node, set *core.EdgeTypeSet, rec core.Visitor, depth int) ([]string, error) {
		opts := []bfs.Option{bfs.WithContext(ctx)}
		if depth > 0 {
			opts = append(opts, bfs.WithMaxDepth(depth))
		}
		res, err := bfs.Traverse(g, start, set, rec, opts...)
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	},
	"dfs":  dfsWalk(dfs.Traverse),
	"pre":  dfsWalk(dfs.Preorder),
	"post": dfsWalk(dfs.Postorder),
}

type dfsFunc func(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, opts ...dfs.Option) (*dfs.DFSResult, error)

func dfsWalk(run dfsFunc) func(context.Context, *core.Graph, core.Node, *core.EdgeTypeSet, core.Visitor, int) ([]string, error) {
	return func(ctx context.Context, g *core.Graph, start core.Node, set *core.EdgeTypeSet, rec core.Visitor, depth int) ([]string, error) {
		res, err := run(g, start, set, rec, dfs.WithContext(ctx), dfs.WithMaxDepth(depth))
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	}
}

func newWalkCmd(a *app) *cobra.Command {
	var (
		start string
		mode  string
		edges []string
		depth int
		order bool
	)
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "Traverse from a node and print visitor events",
		Long: `Traverse the graph from --start and print one event per line:
  +UID     node entered (bfs, dfs, pre)
  -UID     node finished (dfs, post)
  FROM-TO  edge examined

Modes: bfs, dfs (combined pre and post), pre, post.
--edge takes TYPE or TYPE:DIRECTION and may repeat; without it the
configured default_edges or every edge type of the file is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walk, ok := walkModes[mode]
			if !ok {
				return fmt.Errorf("unknown mode %q (want bfs, dfs, pre or post)", mode)
			}
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			from, ok := g.FindNode(start)
			if !ok {
				return fmt.Errorf("start node %q: %w", start, core.ErrNodeNotFound)
			}
			set, err := a.edgeFilter(g, edges)
			if err != nil {
				return err
			}
			a.log.Debug("walk", "mode", mode, "start", start, "edge_types", set.Len())

			rec := &core.Recorder{}
			visited, err := walk(cmd.Context(), g, from, set, rec, depth)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if order {
				for _, uid := range visited {
					fmt.Fprintln(out, uid)
				}
				return nil
			}
			for _, ev := range rec.Events {
				fmt.Fprintln(out, ev)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&start, "start", "", "UID of the start node")
	f.StringVar(&mode, "mode", "bfs", "traversal mode: bfs, dfs, pre, post")
	f.StringArrayVar(&edges, "edge", nil, "edge type filter TYPE[:DIRECTION], repeatable")
	f.IntVar(&depth, "max-depth", -1, "depth limit; -1 means unlimited (bfs also treats 0 as unlimited)")
	f.BoolVar(&order, "order", false, "print the visit order instead of events")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
