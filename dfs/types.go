// Package dfs defines types and options for depth-first search traversal,
// including cancellation, depth limiting, full-graph (forest) traversal,
// and the result record shared by the three depth-first modes.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Traverse,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInvalidStart indicates that the start node is zero, deleted, or
	// belongs to another graph.
	ErrInvalidStart = errors.New("dfs: invalid start node")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with Traverse, Preorder or Postorder.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when visitor callbacks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node (its edges are still
	// reported). Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, restarts DFS from every still-unvisited node
	// in creation order once the start node's tree is finished.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; -1 removes the limit.
// Anything below -1 is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS will restart from each unvisited node, covering
// components unreachable from the start node.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal, keyed by UID.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Depth maps each node UID to its distance (#edges) from the root of
	// its DFS tree.
	Depth map[string]int

	// Parent maps each node UID to the UID of the node from which it was
	// first discovered. Tree roots do not appear in this map.
	Parent map[string]string
}
