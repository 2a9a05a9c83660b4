// Package core provides an in-memory directed multigraph with typed nodes,
// typed edges, attribute trees and a compact binary persistence format.
//
// The Graph G = (V,E) is built from:
//
//   - Nodes identified by a unique UID and labelled with a NodeType.
//   - Edges labelled with an EdgeType: a type name plus a Direction
//     (Bidirectional, Directional, Reverse). Parallel edges are kept.
//   - Attributes: a closed sum type over int, float, string, bool and
//     composite values, each with an optional context string.
//
// Storage is arena based. Node and Edge are small comparable handles
// {graph, slot}; incidence lists store edge slots in creation order, and that
// order is the only ordering the traversal packages (bfs, dfs) rely on.
//
// Pairs:
//
//	CreateDirectedEdge(a, b, t, true)  → a→b Directional + b→a Reverse
//	CreateBidirectedEdge(a, b, t)      → a→b Bidirectional + b→a Bidirectional
//
// Deleting either half of a pair deletes both.
//
// Strings (UIDs, type labels, attribute names and string payloads) are
// interned in a per-graph strtable.Table. Save writes:
//
//	header | STRTBL block (StrToSave entries) | node records | edge records
//
// through binio, optionally as one zlib stream (SaveBinaryZipped).
// Loading replays edges in creation order, so incidence order and therefore
// traversal output survive a round trip.
//
// Errors:
//
//	ErrEmptyUID, ErrNodeExists, ErrNodeNotFound – node lifecycle
//	ErrInvalidNode, ErrInvalidEdge              – stale or foreign handles
//	ErrEmptyEdgeType                            – edge label missing
//	ErrBadRecord                                – malformed file content
//	ErrNilVisitor                               – traversal without a visitor
//
// A Graph is not safe for concurrent mutation; concurrent read-only
// traversals are safe.
package core
