package core

import "github.com/katalvlaran/graphlib/strtable"

// CloneEmpty returns a new graph with the same header, string table and
// nodes (with attributes) but no edges. Node creation order is kept.
// Complexity: O(V + strings).
func (g *Graph) CloneEmpty() *Graph {
	clone := g.cloneShell()
	for id := range g.nodes {
		rec := &g.nodes[id]
		if !rec.alive {
			continue
		}
		nid := clone.addNode(rec.uid, rec.typ)
		clone.nodes[nid].attrs = rec.attrs.clone()
	}

	return clone
}

// Clone returns a deep copy of g: header, string table, nodes, edges, pairs
// and attributes. Handles of g are not valid on the clone; use FindNode.
// Complexity: O(V + E + strings).
func (g *Graph) Clone() *Graph {
	clone := g.cloneShell()
	clone.nodes = make([]nodeRec, len(g.nodes))
	for id := range g.nodes {
		src := &g.nodes[id]
		clone.nodes[id] = nodeRec{
			uid:   src.uid,
			typ:   src.typ,
			out:   append([]int32(nil), src.out...),
			in:    append([]int32(nil), src.in...),
			attrs: src.attrs.clone(),
			alive: src.alive,
		}
		if src.alive {
			clone.byUID[src.uid] = int32(id)
		}
	}
	clone.edges = make([]edgeRec, len(g.edges))
	for id := range g.edges {
		src := g.edges[id]
		src.attrs = src.attrs.clone()
		clone.edges[id] = src
	}
	clone.liveNodes = g.liveNodes
	clone.liveEdges = g.liveEdges

	return clone
}

// cloneShell copies configuration, header and string table.
func (g *Graph) cloneShell() *Graph {
	clone := &Graph{
		strs:    g.strs.Clone(),
		buckets: g.buckets,
		log:     g.log,
		byUID:   make(map[strtable.Key]int32, g.liveNodes),
		header:  make(map[string]string, len(g.header)),
	}
	for k, v := range g.header {
		clone.header[k] = v
	}

	return clone
}
