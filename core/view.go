// File: view.go
// Role: Non-mutating derived graphs.
// Determinism:
//   - Kept nodes and edges appear in their original creation order.
// AI-HINT (file):
//   - InducedSubgraph does NOT mutate the input Graph.
//   - Pairs survive together: both halves share the same two endpoints.

package core

import "fmt"

// InducedSubgraph returns a new graph holding the nodes for which keep
// returns true and every edge whose endpoints are both kept. Header entries,
// types, pairs and attributes are copied. The string table is rebuilt, so it
// only holds strings the subgraph references.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep func(Node) bool) (*Graph, error) {
	out := NewGraph(WithBuckets(g.buckets), WithLogger(g.log))
	for k, v := range g.header {
		out.header[k] = v
	}

	// old slot → new slot, -1 when dropped
	remap := make([]int32, len(g.nodes))
	for id := range g.nodes {
		remap[id] = -1
		n := Node{g: g, id: int32(id)}
		if !g.nodes[id].alive || !keep(n) {
			continue
		}
		nn, err := out.CreateNode(n.UID(), n.Type())
		if err != nil {
			return nil, fmt.Errorf("core: subgraph node %q: %w", n.UID(), err)
		}
		out.nodes[nn.id].attrs = g.nodes[id].attrs.clone()
		remap[id] = nn.id
	}

	for id := range g.edges {
		src := &g.edges[id]
		if !src.alive || !src.primary {
			continue
		}
		from, to := remap[src.from], remap[src.to]
		if from < 0 || to < 0 {
			continue
		}
		tk, err := out.intern(g.strs.Get(src.typ))
		if err != nil {
			return nil, err
		}
		paired := src.pair != noPair && g.edges[src.pair].alive
		nid := out.link(from, to, tk, src.dir, paired)
		out.edges[nid].attrs = src.attrs.clone()
		if paired {
			out.edges[out.edges[nid].pair].attrs = g.edges[src.pair].attrs.clone()
		}
	}

	return out, nil
}
