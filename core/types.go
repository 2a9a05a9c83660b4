// Package core defines the typed multigraph: Graph, Node, Edge, EdgeType,
// Attribute and the Visitor contract used by the traversal packages.
//
// This file declares the identity types, sentinel errors, the arena records
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyUID        - node UID is the empty string.
//	ErrNodeExists      - a node with the same UID is already present.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrInvalidNode     - handle is zero, stale, or belongs to another graph.
//	ErrInvalidEdge     - edge handle is zero, stale, or belongs to another graph.
//	ErrEmptyEdgeType   - edge type label is the empty string.
//	ErrBadRecord       - persisted data is structurally invalid.
//	ErrNilVisitor      - traversal was given a nil Visitor.
//	ErrAttributeKind   - attribute setter does not match the payload kind.
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/katalvlaran/graphlib/strtable"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyUID indicates that a node UID is empty.
	ErrEmptyUID = errors.New("core: node UID is empty")

	// ErrNodeExists indicates CreateNode was called with a UID already in use.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrInvalidNode indicates a Node handle that is zero, deleted or foreign.
	ErrInvalidNode = errors.New("core: invalid node handle")

	// ErrInvalidEdge indicates an Edge handle that is zero, deleted or foreign.
	ErrInvalidEdge = errors.New("core: invalid edge handle")

	// ErrEmptyEdgeType indicates an edge type label is empty.
	ErrEmptyEdgeType = errors.New("core: edge type is empty")

	// ErrBadRecord indicates malformed node, edge or attribute data on load.
	ErrBadRecord = errors.New("core: bad record")

	// ErrNilVisitor indicates a traversal was started without a Visitor.
	ErrNilVisitor = errors.New("core: visitor is nil")

	// ErrAttributeKind indicates a setter was called on an attribute of
	// another kind.
	ErrAttributeKind = errors.New("core: attribute kind mismatch")
)

// InvalidNodeType is given to nodes that an edge record references but no
// node record declared.
const InvalidNodeType NodeType = "__INVALID__"

// NodeType labels a node.
type NodeType string

// Direction is the orientation part of an EdgeType. The ordinals are the
// values stored in graph files.
type Direction uint8

const (
	// Bidirectional edges come in pairs, one per orientation.
	Bidirectional Direction = iota
	// Directional edges point from the source to the target.
	Directional
	// Reverse edges are the target→source companions of Directional edges.
	Reverse
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Bidirectional:
		return "bidirectional"
	case Directional:
		return "directional"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool { return d <= Reverse }

// ParseDirection accepts the names produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "bidirectional", "bi":
		return Bidirectional, nil
	case "directional", "dir", "":
		return Directional, nil
	case "reverse", "rev":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("core: unknown direction %q", s)
	}
}

// pairOf is the direction of the companion edge created with d.
func pairOf(d Direction) Direction {
	switch d {
	case Directional:
		return Reverse
	case Reverse:
		return Directional
	default:
		return Bidirectional
	}
}

// EdgeType is an edge label together with its direction; both take part in
// traversal filtering.
type EdgeType struct {
	Name string
	Dir  Direction
}

// String renders the type as "name:direction".
func (t EdgeType) String() string { return t.Name + ":" + t.Dir.String() }

// EdgeTypeSet is a traversal filter over EdgeType values. A nil set matches
// nothing.
type EdgeTypeSet struct {
	m map[EdgeType]struct{}
}

// NewEdgeTypeSet returns a set holding types.
func NewEdgeTypeSet(types ...EdgeType) *EdgeTypeSet {
	s := &EdgeTypeSet{m: make(map[EdgeType]struct{}, len(types))}
	for _, t := range types {
		s.m[t] = struct{}{}
	}

	return s
}

// Add inserts t.
func (s *EdgeTypeSet) Add(t EdgeType) {
	if s.m == nil {
		s.m = make(map[EdgeType]struct{})
	}
	s.m[t] = struct{}{}
}

// Remove deletes t.
func (s *EdgeTypeSet) Remove(t EdgeType) { delete(s.m, t) }

// Contains reports whether t is in the set.
func (s *EdgeTypeSet) Contains(t EdgeType) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[t]

	return ok
}

// Len returns the number of types in the set.
func (s *EdgeTypeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// Types returns the members sorted by name, then direction.
func (s *EdgeTypeSet) Types() []EdgeType {
	if s == nil {
		return nil
	}
	out := make([]EdgeType, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Dir < out[j].Dir
	})

	return out
}

// noPair marks an edge without a companion.
const noPair int32 = -1

// nodeRec is the arena slot of a node.
type nodeRec struct {
	uid   strtable.Key
	typ   strtable.Key
	out   []int32 // outgoing edge ids, creation order
	in    []int32 // incoming edge ids, creation order
	attrs *Attributes
	alive bool
}

// edgeRec is the arena slot of an edge.
type edgeRec struct {
	from, to int32
	typ      strtable.Key
	dir      Direction
	pair     int32 // companion edge id or noPair
	primary  bool  // false for the second half of a pair
	attrs    *Attributes
	alive    bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithBuckets sets the bucket count of the graph's string table.
func WithBuckets(n uint32) GraphOption {
	return func(g *Graph) { g.buckets = n }
}

// WithLogger routes save/load diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an in-memory directed multigraph of typed nodes and typed edges.
//
// Nodes and edges live in arenas indexed by int32; Node and Edge are handles
// into them. Slots of deleted elements are never reused, so handles taken
// before a deletion stay invalid instead of aliasing new data.
//
// A Graph is not safe for concurrent mutation. Concurrent read-only
// traversals are safe.
type Graph struct {
	strs    *strtable.Table
	buckets uint32
	log     *slog.Logger

	nodes []nodeRec
	edges []edgeRec
	byUID map[strtable.Key]int32

	liveNodes int
	liveEdges int

	header map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(buckets).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		byUID:  make(map[strtable.Key]int32),
		header: make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.strs = strtable.New(g.buckets)
	g.buckets = g.strs.Buckets()

	return g
}
