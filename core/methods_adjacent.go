// File: methods_adjacent.go
// Role: whole-graph enumeration and edge-type structural queries.
//
// Determinism:
//   - Every enumeration returns elements in creation order.
package core

import "github.com/katalvlaran/graphlib/strtable"

// Nodes returns all live nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.liveNodes)
	for id := range g.nodes {
		if g.nodes[id].alive {
			out = append(out, Node{g: g, id: int32(id)})
		}
	}

	return out
}

// FindNodes returns the live nodes of type t in creation order.
func (g *Graph) FindNodes(t NodeType) []Node {
	k := g.strs.Lookup(string(t))
	if k == 0 {
		return nil
	}
	var out []Node
	for id := range g.nodes {
		if g.nodes[id].alive && g.nodes[id].typ == k {
			out = append(out, Node{g: g, id: int32(id)})
		}
	}

	return out
}

// FindNodesOfTypes returns the live nodes whose type is any of types, in
// creation order.
func (g *Graph) FindNodesOfTypes(types ...NodeType) []Node {
	keys := make(map[strtable.Key]struct{}, len(types))
	for _, t := range types {
		if k := g.strs.Lookup(string(t)); k != 0 {
			keys[k] = struct{}{}
		}
	}
	if len(keys) == 0 {
		return nil
	}
	var out []Node
	for id := range g.nodes {
		if !g.nodes[id].alive {
			continue
		}
		if _, ok := keys[g.nodes[id].typ]; ok {
			out = append(out, Node{g: g, id: int32(id)})
		}
	}

	return out
}

// InitAttribute appends a copy of a to every node whose type is any of types
// and returns the number of nodes touched.
func (g *Graph) InitAttribute(a *Attribute, types ...NodeType) int {
	if a == nil {
		return 0
	}
	nodes := g.FindNodesOfTypes(types...)
	for _, n := range nodes {
		g.nodes[n.id].attrs.Add(a.clone())
	}

	return len(nodes)
}

// Edges returns all live edges in creation order, companions included.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.liveEdges)
	for id := range g.edges {
		if g.edges[id].alive {
			out = append(out, Edge{g: g, id: int32(id)})
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.liveNodes }

// EdgeCount returns the number of live edges, companions included.
func (g *Graph) EdgeCount() int { return g.liveEdges }

// NodeSlots returns the size of the node arena. Node.Index is always below
// it, so traversals can size per-node state once.
func (g *Graph) NodeSlots() int { return len(g.nodes) }

// matches reports whether edge slot id has type t.
func (g *Graph) matches(id int32, name string, dir Direction) bool {
	r := &g.edges[id]
	return r.alive && r.dir == dir && g.strs.Get(r.typ) == name
}

// RootsByEdgeType returns the nodes that have no outgoing edge of type t,
// in creation order.
//
// Implementation:
//   - Stage 1: Scan each live node's outgoing incidence list.
//   - Stage 2: Keep the node when no edge matches t.
//
// Complexity:
//   - Time O(V+E), Space O(V) for the result.
func (g *Graph) RootsByEdgeType(t EdgeType) []Node {
	var out []Node
	for id := range g.nodes {
		rec := &g.nodes[id]
		if !rec.alive {
			continue
		}
		root := true
		for _, eid := range rec.out {
			if g.matches(eid, t.Name, t.Dir) {
				root = false
				break
			}
		}
		if root {
			out = append(out, Node{g: g, id: int32(id)})
		}
	}

	return out
}

// LeavesByEdgeType returns the nodes that are never the target of an edge of
// type t, in creation order.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) LeavesByEdgeType(t EdgeType) []Node {
	target := make([]bool, len(g.nodes))
	for id := range g.edges {
		if g.matches(int32(id), t.Name, t.Dir) {
			target[g.edges[id].to] = true
		}
	}
	var out []Node
	for id := range g.nodes {
		if g.nodes[id].alive && !target[id] {
			out = append(out, Node{g: g, id: int32(id)})
		}
	}

	return out
}

// EdgeTypes returns the distinct types of live edges, sorted.
func (g *Graph) EdgeTypes() []EdgeType {
	set := NewEdgeTypeSet()
	for _, e := range g.Edges() {
		set.Add(e.Type())
	}

	return set.Types()
}
