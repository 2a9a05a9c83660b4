// Package bfs provides breadth-first traversal over a typed core.Graph.
//
// What
//
//   - Walk nodes in non-decreasing distance (edge count) from a start node,
//     following only outgoing edges whose core.EdgeType is in a filter set.
//   - Drive a core.Visitor:
//   - OnNodePre once per node, when it is dequeued
//   - OnEdge for every matching edge, in creation order, even when its
//     target was already discovered
//   - OnNodePost is never called in breadth-first mode
//   - Return a BFSResult with the visit Order, Depth and Parent maps (by UID).
//   - Optional hooks OnEnqueue and OnDequeue, a MaxDepth limit, and context
//     cancellation.
//
// Determinism
//
//	Edges are taken from the node's incidence list in creation order and the
//	queue is FIFO, so the event sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	set := core.NewEdgeTypeSet(core.EdgeType{Name: "calls", Dir: core.Directional})
//	rec := &core.Recorder{}
//	res, err := bfs.Traverse(g, start, set, rec,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidStart     if start is not a live node of the graph.
//   - core.ErrNilVisitor  if the visitor is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped visitor errors from OnNodePre / OnEdge.
package bfs
