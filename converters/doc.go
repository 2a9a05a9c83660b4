// Package converters provides two-way adapters between core.Graph and
// github.com/dominikbraun/graph.
//
// Export projects a typed multigraph onto a simple directed graph keyed by
// node UID: only edges whose type is in the given EdgeTypeSet are kept and
// parallel edges collapse into one. Node and edge type labels travel as the
// "type" attribute of vertex and edge properties.
//
// Import goes the other way. Undirected sources become Bidirectional pairs,
// directed ones become Directional edges.
//
// StronglyConnected, ShortestPath and WriteDOT run the adapter's algorithms
// over an exported view and return UIDs in deterministic order.
package converters
