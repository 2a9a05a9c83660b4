package converters

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/graphlib/core"
)

// TypeAttr is the property attribute carrying node and edge type labels.
const TypeAttr = "type"

// Labels used by Import when a property has no type attribute.
const (
	DefaultNodeType core.NodeType = "Node"
	DefaultEdgeType               = "E"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")
	// ErrNodeNotFound is returned when a UID names no live node.
	ErrNodeNotFound = errors.New("converters: node not found")
	// ErrNoPath is returned by ShortestPath when the target is unreachable.
	ErrNoPath = errors.New("converters: no path")
)

// Export builds a directed dominikbraun graph holding every live node of g
// and one edge per connected (from, to) pair whose type is in set.
//
// Complexity: O(V + E).
func Export(g *core.Graph, set *core.EdgeTypeSet) (graph.Graph[string, string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := graph.New(graph.StringHash, graph.Directed())
	for _, n := range g.Nodes() {
		if err := out.AddVertex(n.UID(), graph.VertexAttribute(TypeAttr, string(n.Type()))); err != nil {
			return nil, fmt.Errorf("converters: vertex %q: %w", n.UID(), err)
		}
	}
	for _, e := range g.Edges() {
		if !set.Contains(e.Type()) {
			continue
		}
		err := out.AddEdge(e.From().UID(), e.To().UID(), graph.EdgeAttribute(TypeAttr, e.Type().Name))
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("converters: edge %s: %w", e, err)
		}
	}

	return out, nil
}

// Import copies src into a new core.Graph. Vertices and edges are created in
// ascending hash order so repeated imports produce identical graphs.
//
// Complexity: O((V + E) log V).
func Import(src graph.Graph[string, string], opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	adj, err := src.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("converters: adjacency: %w", err)
	}
	directed := src.Traits().IsDirected

	uids := sortedKeys(adj)
	g := core.NewGraph(opts...)
	for _, uid := range uids {
		_, props, err := src.VertexWithProperties(uid)
		if err != nil {
			return nil, fmt.Errorf("converters: vertex %q: %w", uid, err)
		}
		typ := DefaultNodeType
		if t := props.Attributes[TypeAttr]; t != "" {
			typ = core.NodeType(t)
		}
		if _, err = g.CreateNode(uid, typ); err != nil {
			return nil, err
		}
	}

	for _, from := range uids {
		for _, to := range sortedKeys(adj[from]) {
			if !directed && to < from {
				continue // the other half of an undirected edge
			}
			typ := DefaultEdgeType
			if t := adj[from][to].Properties.Attributes[TypeAttr]; t != "" {
				typ = t
			}
			u, _ := g.FindNode(from)
			v, _ := g.FindNode(to)
			if directed {
				_, err = g.CreateDirectedEdge(u, v, typ, false)
			} else {
				_, err = g.CreateBidirectedEdge(u, v, typ)
			}
			if err != nil {
				return nil, fmt.Errorf("converters: edge %s-%s: %w", from, to, err)
			}
		}
	}

	return g, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// StronglyConnected returns the strongly connected components of g over set.
// Members are listed in node creation order and components are ordered by
// their first member.
func StronglyConnected(g *core.Graph, set *core.EdgeTypeSet) ([][]string, error) {
	dg, err := Export(g, set)
	if err != nil {
		return nil, err
	}
	comps, err := graph.StronglyConnectedComponents(dg)
	if err != nil {
		return nil, fmt.Errorf("converters: scc: %w", err)
	}

	rank := make(map[string]int, g.NodeCount())
	for i, n := range g.Nodes() {
		rank[n.UID()] = i
	}
	for _, c := range comps {
		sort.Slice(c, func(i, j int) bool { return rank[c[i]] < rank[c[j]] })
	}
	sort.Slice(comps, func(i, j int) bool { return rank[comps[i][0]] < rank[comps[j][0]] })

	return comps, nil
}

// ShortestPath returns a path with the fewest edges from one UID to another
// over set, both endpoints included.
func ShortestPath(g *core.Graph, set *core.EdgeTypeSet, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, uid := range []string{from, to} {
		if !g.NodeExists(uid) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, uid)
		}
	}
	dg, err := Export(g, set)
	if err != nil {
		return nil, err
	}
	path, err := graph.ShortestPath(dg, from, to)
	if errors.Is(err, graph.ErrTargetNotReachable) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("converters: shortest path: %w", err)
	}

	return path, nil
}

// WriteDOT renders the exported view of g in Graphviz DOT format.
func WriteDOT(w io.Writer, g *core.Graph, set *core.EdgeTypeSet) error {
	dg, err := Export(g, set)
	if err != nil {
		return err
	}

	return draw.DOT(dg, w)
}
