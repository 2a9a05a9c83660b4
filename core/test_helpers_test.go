// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphlib/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep edge/UID expectations as readable string sequences.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/core"
)

// Common labels used across core tests.
const (
	TypeClass  core.NodeType = "Class"
	TypeMethod core.NodeType = "Method"

	EdgeCalls    = "calls"
	EdgeContains = "contains"
	EdgeE        = "E"
)

// FixtureEdges is the five-node multigraph used by the traversal scenarios,
// listed in creation order.
var FixtureEdges = [][2]string{
	{"N1", "N2"}, {"N1", "N3"}, {"N1", "N2"},
	{"N2", "N4"}, {"N2", "N4"},
	{"N3", "N1"}, {"N3", "N4"}, {"N3", "N4"},
	{"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"},
}

// NewFixture BUILDS the N1..N5 graph with directional "E" edges.
//
// Implementation:
//   - Stage 1: Create N1..N5 in order.
//   - Stage 2: Create FixtureEdges in order (duplicates kept).
func NewFixture(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, uid := range []string{"N1", "N2", "N3", "N4", "N5"} {
		_, err := g.CreateNode(uid, TypeClass)
		require.NoError(t, err)
	}
	for _, e := range FixtureEdges {
		_, err := g.CreateDirectedEdgeByUID(e[0], e[1], EdgeE, false)
		require.NoError(t, err)
	}

	return g
}

// MustNode RETURNS the node with uid or fails the test.
func MustNode(t testing.TB, g *core.Graph, uid string) core.Node {
	t.Helper()
	n, ok := g.FindNode(uid)
	require.Truef(t, ok, "node %q missing", uid)

	return n
}

// UIDs maps nodes to their UIDs.
func UIDs(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.UID()
	}

	return out
}

// EdgeStrings renders edges as "FROM-TO:type:dir".
func EdgeStrings(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.String() + ":" + e.Type().String()
	}

	return out
}

// Shape CAPTURES everything the round-trip property compares: per-node UID,
// type, attributes and outgoing/incoming edge sequences.
type Shape struct {
	UID   string
	Type  core.NodeType
	Attrs []any
	Out   []string
	In    []string
}

// ShapeOf RETURNS the Shape of every node in creation order.
func ShapeOf(g *core.Graph) []Shape {
	var out []Shape
	for _, n := range g.Nodes() {
		s := Shape{UID: n.UID(), Type: n.Type(), Out: EdgeStrings(n.OutEdges()), In: EdgeStrings(n.InEdges())}
		for _, a := range n.Attributes().All() {
			s.Attrs = append(s.Attrs, a.Kind().String()+"/"+a.Name+"/"+a.Context, a.Value())
		}
		s.Out = append(s.Out, edgeAttrs(n.OutEdges())...)
		out = append(out, s)
	}

	return out
}

func edgeAttrs(edges []core.Edge) []string {
	var out []string
	for _, e := range edges {
		for _, a := range e.Attributes().All() {
			out = append(out, e.String()+"@"+a.Name)
		}
	}

	return out
}
