// File: methods_edges.go
// Role: Edge handle accessors.
//
// Pairing:
//   - CreateDirectedEdge(..., true) and CreateBidirectedEdge create two edge
//     slots pointing at each other; ReversePair crosses between them.
package core

// Edge is a handle to an edge slot of a Graph. Edge values are comparable.
type Edge struct {
	g  *Graph
	id int32
}

// Valid reports whether e refers to a live edge.
func (e Edge) Valid() bool { return e.g != nil && e.g.checkEdge(e) == nil }

// Index returns the arena slot of e.
func (e Edge) Index() int { return int(e.id) }

func (e Edge) rec() *edgeRec {
	if !e.Valid() {
		return nil
	}

	return &e.g.edges[e.id]
}

// From returns the source node.
func (e Edge) From() Node {
	r := e.rec()
	if r == nil {
		return Node{}
	}

	return Node{g: e.g, id: r.from}
}

// To returns the target node.
func (e Edge) To() Node {
	r := e.rec()
	if r == nil {
		return Node{}
	}

	return Node{g: e.g, id: r.to}
}

// Type returns the edge label and direction.
func (e Edge) Type() EdgeType {
	r := e.rec()
	if r == nil {
		return EdgeType{}
	}

	return EdgeType{Name: e.g.strs.Get(r.typ), Dir: r.dir}
}

// String renders the edge as "FROM-TO".
func (e Edge) String() string { return e.From().UID() + "-" + e.To().UID() }

// ReversePair returns the companion edge created together with e.
func (e Edge) ReversePair() (Edge, bool) {
	r := e.rec()
	if r == nil || r.pair == noPair || !e.g.edges[r.pair].alive {
		return Edge{}, false
	}

	return Edge{g: e.g, id: r.pair}, true
}

// Primary reports whether e is the first-created half of its pair, or an
// unpaired edge.
func (e Edge) Primary() bool {
	r := e.rec()
	return r != nil && r.primary
}

// Attributes returns the edge's attribute list, or nil for an invalid handle.
func (e Edge) Attributes() *Attributes {
	r := e.rec()
	if r == nil {
		return nil
	}

	return r.attrs
}

// AddAttribute appends a to the edge's attributes.
func (e Edge) AddAttribute(a *Attribute) error {
	r := e.rec()
	if r == nil {
		return ErrInvalidEdge
	}
	r.attrs.Add(a)

	return nil
}
