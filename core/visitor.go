package core

// Visitor receives traversal events. Returning a non-nil error from any
// method aborts the traversal; the error reaches the caller wrapped.
type Visitor interface {
	OnEdge(e Edge) error
	OnNodePre(n Node) error
	OnNodePost(n Node) error
}

// VisitorFuncs adapts plain functions to Visitor. Nil fields are no-ops.
type VisitorFuncs struct {
	Edge     func(Edge) error
	NodePre  func(Node) error
	NodePost func(Node) error
}

// OnEdge calls f.Edge if set.
func (f VisitorFuncs) OnEdge(e Edge) error {
	if f.Edge == nil {
		return nil
	}

	return f.Edge(e)
}

// OnNodePre calls f.NodePre if set.
func (f VisitorFuncs) OnNodePre(n Node) error {
	if f.NodePre == nil {
		return nil
	}

	return f.NodePre(n)
}

// OnNodePost calls f.NodePost if set.
func (f VisitorFuncs) OnNodePost(n Node) error {
	if f.NodePost == nil {
		return nil
	}

	return f.NodePost(n)
}

// Recorder is a Visitor that logs events as strings: "+UID" before a node,
// "-UID" after it and "FROM-TO" for an edge.
type Recorder struct {
	Events []string
}

// OnEdge records "FROM-TO".
func (r *Recorder) OnEdge(e Edge) error {
	r.Events = append(r.Events, e.String())
	return nil
}

// OnNodePre records "+UID".
func (r *Recorder) OnNodePre(n Node) error {
	r.Events = append(r.Events, "+"+n.UID())
	return nil
}

// OnNodePost records "-UID".
func (r *Recorder) OnNodePost(n Node) error {
	r.Events = append(r.Events, "-"+n.UID())
	return nil
}
