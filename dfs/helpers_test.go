package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/core"
)

var (
	edgeE   = core.EdgeType{Name: "E", Dir: core.Directional}
	setE    = core.NewEdgeTypeSet(edgeE)
	fixture = [][2]string{
		{"N1", "N2"}, {"N1", "N3"}, {"N1", "N2"},
		{"N2", "N4"}, {"N2", "N4"},
		{"N3", "N1"}, {"N3", "N4"}, {"N3", "N4"},
		{"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"},
	}
)

// build creates nodes in first-mention order and directional "E" edges.
func build(t testing.TB, edges [][2]string, extra ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	add := func(uid string) {
		if !g.NodeExists(uid) {
			_, err := g.CreateNode(uid, "Class")
			require.NoError(t, err)
		}
	}
	for _, e := range edges {
		add(e[0])
		add(e[1])
	}
	for _, uid := range extra {
		add(uid)
	}
	for _, e := range edges {
		_, err := g.CreateDirectedEdgeByUID(e[0], e[1], edgeE.Name, false)
		require.NoError(t, err)
	}

	return g
}

func node(t testing.TB, g *core.Graph, uid string) core.Node {
	t.Helper()
	n, ok := g.FindNode(uid)
	require.Truef(t, ok, "node %q missing", uid)

	return n
}

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}
