// Package bfs provides breadth-first traversal over a core.Graph driven by a
// core.Visitor and an edge-type filter.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	set     *core.EdgeTypeSet
	visitor core.Visitor
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool // indexed by core.Node.Index; set on discovery
	res     *BFSResult
}

// Traverse walks g breadth-first from start, following only outgoing edges
// whose type is in set, in creation order.
//
// Events: OnNodePre fires once per node when it is dequeued; OnEdge fires for
// every matching edge of a dequeued node, including edges to nodes already
// discovered. OnNodePost is never called. A node is marked discovered when it
// is enqueued, the start node included.
//
// Returns ErrGraphNil, ErrInvalidStart, core.ErrNilVisitor or
// ErrOptionViolation for invalid input, the context error on cancellation,
// or the first visitor error, wrapped.
func Traverse(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if v == nil {
		return nil, core.ErrNilVisitor
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !start.Valid() || start.Graph() != g {
		return nil, ErrInvalidStart
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		set:     set,
		visitor: v,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, g.NodeSlots()),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.Node{})
	// Main loop
	return w.res, w.loop()
}

// enqueue marks n discovered at depth d, records its parent, calls
// OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(n core.Node, d int, parent core.Node) {
	w.visited[n.Index()] = true
	uid := n.UID()
	w.res.Depth[uid] = d
	if parent.Valid() {
		w.res.Parent[uid] = parent.UID()
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnNodePre.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node.UID())
	if err := w.visitor.OnNodePre(item.node); err != nil {
		return fmt.Errorf("bfs: OnNodePre at %q: %w", item.node.UID(), err)
	}

	return nil
}

// expand reports each matching outgoing edge and enqueues undiscovered
// targets within MaxDepth.
func (w *walker) expand(item queueItem) error {
	nextDepth := item.depth + 1
	for _, e := range item.node.FindOutEdges(w.set) {
		// cancellation check inside edge iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if err := w.visitor.OnEdge(e); err != nil {
			return fmt.Errorf("bfs: OnEdge %s: %w", e, err)
		}
		to := e.To()
		if w.visited[to.Index()] {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.enqueue(to, nextDepth, item.node)
	}

	return nil
}
