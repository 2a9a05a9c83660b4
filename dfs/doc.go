// Package dfs implements depth‑first traversal, cycle detection,
// and topological sort over the typed edges of a core.Graph.
//
// What:
//
//   - Depth‑first traversal in three event modes, all following only the
//     outgoing edges whose core.EdgeType is in a filter set, in creation order:
//   - Traverse:  OnNodePre, OnEdge for every matching edge, OnNodePost
//   - Preorder:  OnNodePre and OnEdge, never OnNodePost
//   - Postorder: OnEdge and OnNodePost, never OnNodePre
//   - A node is marked visited when it is first reached, so cycles
//     terminate; edges into visited nodes are still reported.
//   - DetectCycles: reports cycles closed by back edges using vertex
//     coloring (White, Gray, Black) and canonical minimal rotation.
//   - TopologicalSort: linear ordering of node UIDs over the matching
//     edges, returning ErrCycleDetected if they form a cycle.
//
// Why:
//   - Walk containment and call hierarchies of a code graph
//   - Determine safe processing orders over dependency edges
//   - Detect dependency cycles
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for traversal behavior
//   - DFSOptions: holds Context, MaxDepth, FullTraversal
//   - DFSResult: collects post‑order, Depth and Parent maps by UID
//
// Complexity:
//
//   - Traverse:        Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C*L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrInvalidStart         start node is not a live node of the graph
//   - core.ErrNilVisitor      visitor is nil
//   - ErrOptionViolation      invalid option value
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - visitor errors          wrapped with the node or edge that failed
package dfs
