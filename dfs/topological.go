// Package dfs provides topological sort over the typed edges of a core.Graph.
//
// TopologicalSort computes a linear ordering of node UIDs such that for
// every matching edge u→v, u appears before v in the ordering.
// If the matching edges form a cycle (self-loops included),
// ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	set   *core.EdgeTypeSet // edges that constrain the order
	opts  topoOptions       // traversal options (cancellation)
	state []int8            // by node index: White, Gray, Black
	order []string          // recorded post-order sequence
}

// TopologicalSort orders all live nodes of g so that every edge whose type
// is in set points forward. Roots are tried in node creation order and
// edges in creation order, so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns an error wrapping ErrCycleDetected that
// names the node closing it.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, set *core.EdgeTypeSet, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	nodes := g.Nodes()
	sorter := &topoSorter{
		set:   set,
		opts:  opts,
		state: make([]int8, g.NodeSlots()),
		order: make([]string, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited node
	for _, n := range nodes {
		if sorter.state[n.Index()] == White {
			if err := sorter.visit(n); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from n, marking states and detecting cycles.
func (t *topoSorter) visit(n core.Node) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	idx := n.Index()
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[idx] == Gray {
		return fmt.Errorf("%w at %q", ErrCycleDetected, n.UID())
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[idx] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[idx] = Gray

	// 5. Explore each matching outgoing edge
	for _, e := range n.FindOutEdges(t.set) {
		if err := t.visit(e.To()); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order list
	t.state[idx] = Black
	t.order = append(t.order, n.UID())

	return nil
}
