// File: methods_vertices.go
// Role: Node handle accessors.
//
// Determinism:
//   - OutEdges/InEdges return edges in creation order.
//
// Validity:
//   - A Node is a {graph, slot} pair. The zero Node and handles of deleted
//     nodes are invalid; accessors on them return zero values.
package core

// Node is a handle to a node slot of a Graph. Node values are comparable and
// may be used as map keys.
type Node struct {
	g  *Graph
	id int32
}

// Valid reports whether n refers to a live node.
//
// Implementation:
//   - Stage 1: Reject the zero handle (nil graph).
//   - Stage 2: Delegate the bounds and liveness check to the owning graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (n Node) Valid() bool { return n.g != nil && n.g.checkNode(n) == nil }

// Graph returns the owning graph, or nil for the zero handle.
func (n Node) Graph() *Graph { return n.g }

// Index returns the arena slot of n. Slots are dense in creation order and
// are not reused, which makes them usable as slice indexes for per-node state.
func (n Node) Index() int { return int(n.id) }

func (n Node) rec() *nodeRec {
	if !n.Valid() {
		return nil
	}

	return &n.g.nodes[n.id]
}

// UID returns the node identifier, or "" for an invalid handle.
func (n Node) UID() string {
	r := n.rec()
	if r == nil {
		return ""
	}

	return n.g.strs.Get(r.uid)
}

// String returns the UID.
func (n Node) String() string { return n.UID() }

// Type returns the node type label.
func (n Node) Type() NodeType {
	r := n.rec()
	if r == nil {
		return ""
	}

	return NodeType(n.g.strs.Get(r.typ))
}

func (n Node) edges(ids []int32) []Edge {
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = Edge{g: n.g, id: id}
	}

	return out
}

// OutEdges returns the edges leaving n in creation order, including
// Reverse and Bidirectional companions that start at n.
func (n Node) OutEdges() []Edge {
	r := n.rec()
	if r == nil {
		return nil
	}

	return n.edges(r.out)
}

// InEdges returns the edges entering n in creation order.
func (n Node) InEdges() []Edge {
	r := n.rec()
	if r == nil {
		return nil
	}

	return n.edges(r.in)
}

// FindOutEdges returns the outgoing edges whose type is in set, in creation
// order. Traversals iterate exactly this sequence.
func (n Node) FindOutEdges(set *EdgeTypeSet) []Edge {
	r := n.rec()
	if r == nil || set.Len() == 0 {
		return nil
	}
	var out []Edge
	for _, id := range r.out {
		e := Edge{g: n.g, id: id}
		if set.Contains(e.Type()) {
			out = append(out, e)
		}
	}

	return out
}

// RangeOutEdges calls fn for each outgoing edge whose type is in set until fn
// returns false. It does not allocate.
func (n Node) RangeOutEdges(set *EdgeTypeSet, fn func(Edge) bool) {
	r := n.rec()
	if r == nil || set.Len() == 0 {
		return
	}
	for _, id := range r.out {
		e := Edge{g: n.g, id: id}
		if set.Contains(e.Type()) && !fn(e) {
			return
		}
	}
}

// Attributes returns the node's attribute list for reading and editing, or
// nil for an invalid handle.
func (n Node) Attributes() *Attributes {
	r := n.rec()
	if r == nil {
		return nil
	}

	return r.attrs
}

// AddAttribute appends a to the node's attributes.
func (n Node) AddAttribute(a *Attribute) error {
	r := n.rec()
	if r == nil {
		return ErrInvalidNode
	}
	r.attrs.Add(a)

	return nil
}
