// Package core: node and edge lifecycle on the Graph arenas.
//
// Every created node and edge is appended to its arena; incidence lists hold
// edge ids in creation order, which is the only ordering traversals rely on.
// Deleting marks the slot dead and strips it from the incidence lists.

package core

import (
	"fmt"

	"github.com/katalvlaran/graphlib/strtable"
)

// intern stores s in the string table tagged for saving.
func (g *Graph) intern(s string) (strtable.Key, error) {
	k, err := g.strs.SetWithType(s, strtable.StrToSave)
	if err != nil {
		return 0, fmt.Errorf("core: intern %q: %w", s, err)
	}
	g.strs.SetKeyType(k, strtable.StrToSave)

	return k, nil
}

// internAll interns every string in ss, or none of them when the table
// cannot hold them all.
func (g *Graph) internAll(ss ...string) ([]strtable.Key, error) {
	if !g.strs.Fits(ss...) {
		return nil, fmt.Errorf("core: intern %q: %w", ss, strtable.ErrBucketFull)
	}
	keys := make([]strtable.Key, len(ss))
	for i, s := range ss {
		k, err := g.intern(s)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	return keys, nil
}

// CreateNode adds a node with the given UID and type.
// Returns ErrEmptyUID or ErrNodeExists; the string table may report
// strtable.ErrBucketFull.
// Complexity: O(1) amortized.
func (g *Graph) CreateNode(uid string, typ NodeType) (Node, error) {
	if uid == "" {
		return Node{}, ErrEmptyUID
	}
	if k := g.strs.Lookup(uid); k != 0 {
		if _, exists := g.byUID[k]; exists {
			return Node{}, fmt.Errorf("%w: %q", ErrNodeExists, uid)
		}
	}
	keys, err := g.internAll(uid, string(typ))
	if err != nil {
		return Node{}, err
	}

	return Node{g: g, id: g.addNode(keys[0], keys[1])}, nil
}

// addNode appends a node slot; the caller guarantees uid is unused.
func (g *Graph) addNode(uid, typ strtable.Key) int32 {
	id := int32(len(g.nodes))
	g.nodes = append(g.nodes, nodeRec{uid: uid, typ: typ, attrs: &Attributes{}, alive: true})
	g.byUID[uid] = id
	g.liveNodes++

	return id
}

// FindNode returns the node with the given UID.
func (g *Graph) FindNode(uid string) (Node, bool) {
	k := g.strs.Lookup(uid)
	if k == 0 {
		return Node{}, false
	}
	id, ok := g.byUID[k]
	if !ok {
		return Node{}, false
	}

	return Node{g: g, id: id}, true
}

// NodeExists reports whether a node with the given UID is present.
func (g *Graph) NodeExists(uid string) bool {
	_, ok := g.FindNode(uid)
	return ok
}

// checkNode validates that n is a live node of g.
func (g *Graph) checkNode(n Node) error {
	if n.g != g || n.id < 0 || int(n.id) >= len(g.nodes) || !g.nodes[n.id].alive {
		return ErrInvalidNode
	}

	return nil
}

// checkEdge validates that e is a live edge of g.
func (g *Graph) checkEdge(e Edge) error {
	if e.g != g || e.id < 0 || int(e.id) >= len(g.edges) || !g.edges[e.id].alive {
		return ErrInvalidEdge
	}

	return nil
}

// addEdge appends an edge slot and links it into both incidence lists.
func (g *Graph) addEdge(from, to int32, typ strtable.Key, dir Direction, primary bool) int32 {
	id := int32(len(g.edges))
	g.edges = append(g.edges, edgeRec{
		from: from, to: to, typ: typ, dir: dir,
		pair: noPair, primary: primary, attrs: &Attributes{}, alive: true,
	})
	g.nodes[from].out = append(g.nodes[from].out, id)
	g.nodes[to].in = append(g.nodes[to].in, id)
	g.liveEdges++

	return id
}

// link creates the primary edge and, when paired, its companion in the
// opposite orientation immediately after it.
func (g *Graph) link(from, to int32, typ strtable.Key, dir Direction, paired bool) int32 {
	id := g.addEdge(from, to, typ, dir, true)
	if paired {
		pid := g.addEdge(to, from, typ, pairOf(dir), false)
		g.edges[id].pair = pid
		g.edges[pid].pair = id
	}

	return id
}

// CreateDirectedEdge adds a Directional edge from→to of the given type.
// Parallel edges are kept. With createReverse a Reverse companion to→from
// is created as well and reachable through Edge.ReversePair.
// Returns ErrInvalidNode or ErrEmptyEdgeType.
// Complexity: O(1) amortized.
func (g *Graph) CreateDirectedEdge(from, to Node, typ string, createReverse bool) (Edge, error) {
	return g.createEdge(from, to, typ, Directional, createReverse)
}

// CreateDirectedEdgeByUID is CreateDirectedEdge with endpoints looked up by
// UID. Returns ErrNodeNotFound for an unknown UID.
func (g *Graph) CreateDirectedEdgeByUID(fromUID, toUID, typ string, createReverse bool) (Edge, error) {
	from, ok := g.FindNode(fromUID)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrNodeNotFound, fromUID)
	}
	to, ok := g.FindNode(toUID)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrNodeNotFound, toUID)
	}

	return g.CreateDirectedEdge(from, to, typ, createReverse)
}

// CreateBidirectedEdge adds a pair of Bidirectional edges of the given type,
// one per orientation. The from→to half is returned.
func (g *Graph) CreateBidirectedEdge(from, to Node, typ string) (Edge, error) {
	return g.createEdge(from, to, typ, Bidirectional, true)
}

func (g *Graph) createEdge(from, to Node, typ string, dir Direction, paired bool) (Edge, error) {
	if err := g.checkNode(from); err != nil {
		return Edge{}, fmt.Errorf("core: edge source: %w", err)
	}
	if err := g.checkNode(to); err != nil {
		return Edge{}, fmt.Errorf("core: edge target: %w", err)
	}
	if typ == "" {
		return Edge{}, ErrEmptyEdgeType
	}
	tk, err := g.intern(typ)
	if err != nil {
		return Edge{}, err
	}

	return Edge{g: g, id: g.link(from.id, to.id, tk, dir, paired)}, nil
}

// removeID deletes the first occurrence of id from ids, keeping order.
func removeID(ids []int32, id int32) []int32 {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// killEdge unlinks a single edge slot.
func (g *Graph) killEdge(id int32) {
	rec := &g.edges[id]
	if !rec.alive {
		return
	}
	rec.alive = false
	g.nodes[rec.from].out = removeID(g.nodes[rec.from].out, id)
	g.nodes[rec.to].in = removeID(g.nodes[rec.to].in, id)
	g.liveEdges--
}

// killPair unlinks an edge and its companion, returning how many died.
func (g *Graph) killPair(id int32) int {
	n := 0
	if g.edges[id].alive {
		g.killEdge(id)
		n++
	}
	if p := g.edges[id].pair; p != noPair && g.edges[p].alive {
		g.killEdge(p)
		n++
	}

	return n
}

// DeleteEdge removes e together with its companion, if any.
func (g *Graph) DeleteEdge(e Edge) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	g.killPair(e.id)

	return nil
}

// killMatched removes an edge picked by a bulk delete. Directional and
// Bidirectional edges take their companion along; a Reverse companion goes
// alone and leaves its primary unpaired.
func (g *Graph) killMatched(id int32) int {
	rec := &g.edges[id]
	if rec.dir != Reverse {
		return g.killPair(id)
	}
	if !rec.alive {
		return 0
	}
	g.killEdge(id)
	if p := rec.pair; p != noPair {
		g.edges[p].pair = noPair
		rec.pair = noPair
	}

	return 1
}

// DeleteNode removes the node with the given UID and every edge touching it.
// Returns ErrEmptyUID or ErrNodeNotFound.
// Complexity: O(deg(v)²) in the worst case because incidence lists are slices.
func (g *Graph) DeleteNode(uid string) error {
	if uid == "" {
		return ErrEmptyUID
	}
	n, ok := g.FindNode(uid)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, uid)
	}
	g.deleteNode(n.id)

	return nil
}

func (g *Graph) deleteNode(id int32) {
	rec := &g.nodes[id]
	for len(rec.out) > 0 {
		g.killPair(rec.out[0])
	}
	for len(rec.in) > 0 {
		g.killPair(rec.in[0])
	}
	rec.alive = false
	delete(g.byUID, rec.uid)
	g.liveNodes--
}

// DeleteNodesOfType removes every node of type t with its edges and returns
// how many nodes were removed.
// Complexity: O(V + E).
func (g *Graph) DeleteNodesOfType(t NodeType) int {
	k := g.strs.Lookup(string(t))
	if k == 0 {
		return 0
	}
	removed := 0
	for id := range g.nodes {
		if g.nodes[id].alive && g.nodes[id].typ == k {
			g.deleteNode(int32(id))
			removed++
		}
	}

	return removed
}

// DeleteEdgesOfType removes every edge whose type equals t and returns the
// number of edges removed. Matching Directional or Bidirectional edges take
// their companion along; deleting the Reverse type keeps the primaries.
func (g *Graph) DeleteEdgesOfType(t EdgeType) int {
	k := g.strs.Lookup(t.Name)
	if k == 0 {
		return 0
	}
	removed := 0
	for id := range g.edges {
		rec := &g.edges[id]
		if rec.alive && rec.typ == k && rec.dir == t.Dir {
			removed += g.killMatched(int32(id))
		}
	}

	return removed
}

// DeleteEdgesBetween removes every edge from→to, whatever its type, and
// returns the number of edges removed. Companions follow the rule of
// DeleteEdgesOfType, so to→from halves of removed pairs go too.
// Returns ErrInvalidNode for a stale or foreign handle.
func (g *Graph) DeleteEdgesBetween(from, to Node) (int, error) {
	if err := g.checkNode(from); err != nil {
		return 0, err
	}
	if err := g.checkNode(to); err != nil {
		return 0, err
	}
	out := append([]int32(nil), g.nodes[from.id].out...)
	removed := 0
	for _, id := range out {
		if g.edges[id].alive && g.edges[id].to == to.id {
			removed += g.killMatched(id)
		}
	}

	return removed, nil
}

// ConvertToBidirectional replaces e and its companion with a Bidirectional
// pair between the same endpoints and returns the from→to half. Attributes
// move with their edge: e's to the returned half, the companion's to the
// other. e is invalid afterwards.
func (g *Graph) ConvertToBidirectional(e Edge) (Edge, error) {
	return g.convertEdge(e, Bidirectional)
}

// ConvertToDirectionalWithReverse is ConvertToBidirectional producing a
// Directional edge with a Reverse companion.
func (g *Graph) ConvertToDirectionalWithReverse(e Edge) (Edge, error) {
	return g.convertEdge(e, Directional)
}

func (g *Graph) convertEdge(e Edge, dir Direction) (Edge, error) {
	if err := g.checkEdge(e); err != nil {
		return Edge{}, err
	}
	old := g.edges[e.id]
	id := g.link(old.from, old.to, old.typ, dir, true)
	g.edges[id].attrs = old.attrs
	if old.pair != noPair && g.edges[old.pair].alive {
		g.edges[g.edges[id].pair].attrs = g.edges[old.pair].attrs
	}
	g.killPair(e.id)

	return Edge{g: g, id: id}, nil
}
