package converters_test

import (
	"bytes"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/builder"
	"github.com/katalvlaran/graphlib/converters"
	"github.com/katalvlaran/graphlib/core"
)

var (
	calls    = core.EdgeType{Name: "calls", Dir: core.Directional}
	callsSet = core.NewEdgeTypeSet(calls)
)

// callGraph: a → b → c → a (cycle), c → d, d → e, plus "contains" pkg → a
// with reverse companion and a duplicate a → b.
func callGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, uid := range []string{"a", "b", "c", "d", "e"} {
		_, err := g.CreateNode(uid, "Func")
		require.NoError(t, err)
	}
	_, err := g.CreateNode("pkg", "Package")
	require.NoError(t, err)
	for _, e := range [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}, {"d", "e"}} {
		_, err = g.CreateDirectedEdgeByUID(e[0], e[1], "calls", false)
		require.NoError(t, err)
	}
	_, err = g.CreateDirectedEdgeByUID("pkg", "a", "contains", true)
	require.NoError(t, err)

	return g
}

func TestExport(t *testing.T) {
	dg, err := converters.Export(callGraph(t), callsSet)
	require.NoError(t, err)

	order, err := dg.Order()
	require.NoError(t, err)
	assert.Equal(t, 6, order)

	size, err := dg.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, size, "duplicate a→b collapses, contains edges are filtered out")

	_, props, err := dg.VertexWithProperties("pkg")
	require.NoError(t, err)
	assert.Equal(t, "Package", props.Attributes[converters.TypeAttr])

	e, err := dg.Edge("c", "d")
	require.NoError(t, err)
	assert.Equal(t, "calls", e.Properties.Attributes[converters.TypeAttr])

	_, err = dg.Edge("a", "pkg")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestExport_NilGraph(t *testing.T) {
	_, err := converters.Export(nil, callsSet)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
	_, err = converters.Import(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestImport_Directed(t *testing.T) {
	src := graph.New(graph.StringHash, graph.Directed())
	require.NoError(t, src.AddVertex("y", graph.VertexAttribute(converters.TypeAttr, "Class")))
	require.NoError(t, src.AddVertex("x"))
	require.NoError(t, src.AddEdge("x", "y", graph.EdgeAttribute(converters.TypeAttr, "inherits")))
	require.NoError(t, src.AddEdge("y", "x"))

	g, err := converters.Import(src)
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, "x", g.Nodes()[0].UID(), "vertices are created in sorted order")

	y, ok := g.FindNode("y")
	require.True(t, ok)
	assert.Equal(t, core.NodeType("Class"), y.Type())
	x, _ := g.FindNode("x")
	assert.Equal(t, converters.DefaultNodeType, x.Type())

	var got []string
	for _, e := range g.Edges() {
		got = append(got, e.String()+" "+e.Type().String())
	}
	assert.Equal(t, []string{"x-y inherits:directional", "y-x E:directional"}, got)
}

func TestImport_UndirectedBecomesPairs(t *testing.T) {
	src := graph.New(graph.StringHash)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, src.AddVertex(v))
	}
	require.NoError(t, src.AddEdge("b", "a"))
	require.NoError(t, src.AddEdge("b", "c"))

	g, err := converters.Import(src)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, core.Bidirectional, e.Type().Dir)
	}
	assert.Equal(t, []core.EdgeType{{Name: "E", Dir: core.Bidirectional}}, g.EdgeTypes())
}

func TestRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithEdgeType("next")}, builder.Path(4))
	require.NoError(t, err)

	dg, err := converters.Export(g, builder.BuiltEdgeTypes(builder.WithEdgeType("next")))
	require.NoError(t, err)
	back, err := converters.Import(dg)
	require.NoError(t, err)

	var want, got []string
	for _, e := range g.Edges() {
		want = append(want, e.String())
	}
	for _, e := range back.Edges() {
		got = append(got, e.String())
	}
	assert.Equal(t, want, got)
	assert.Equal(t, []core.EdgeType{{Name: "next", Dir: core.Directional}}, back.EdgeTypes())
}

func TestStronglyConnected(t *testing.T) {
	comps, err := converters.StronglyConnected(callGraph(t), callsSet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}, {"e"}, {"pkg"}}, comps)
}

func TestShortestPath(t *testing.T) {
	g := callGraph(t)

	path, err := converters.ShortestPath(g, callsSet, "a", "e")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, path)

	_, err = converters.ShortestPath(g, callsSet, "e", "a")
	assert.ErrorIs(t, err, converters.ErrNoPath)

	_, err = converters.ShortestPath(g, callsSet, "a", "zzz")
	assert.ErrorIs(t, err, converters.ErrNodeNotFound)

	path, err = converters.ShortestPath(g, core.NewEdgeTypeSet(core.EdgeType{Name: "contains", Dir: core.Reverse}), "a", "pkg")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "pkg"}, path)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, converters.WriteDOT(&buf, callGraph(t), callsSet))
	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"c" -> "d"`)
	assert.NotContains(t, out, `"pkg" -> "a"`)
}
