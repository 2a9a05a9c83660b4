// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, edge kinds and determinism.
package builder_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/builder"
	"github.com/katalvlaran/graphlib/core"
)

// edgeList renders every live edge as "FROM-TO:type:dir" in creation order.
func edgeList(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.String()+":"+e.Type().String())
	}

	return out
}

func uids(g *core.Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		out = append(out, n.UID())
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantNodes []string
		wantEdges []string
	}{
		{
			name:      "Path(3)",
			ctor:      builder.Path(3),
			wantNodes: []string{"0", "1", "2"},
			wantEdges: []string{"0-1:E:directional", "1-2:E:directional"},
		},
		{
			name:      "Cycle(3)",
			ctor:      builder.Cycle(3),
			wantNodes: []string{"0", "1", "2"},
			wantEdges: []string{"0-1:E:directional", "1-2:E:directional", "2-0:E:directional"},
		},
		{
			name:      "Cycle(1) self-loop",
			ctor:      builder.Cycle(1),
			wantNodes: []string{"0"},
			wantEdges: []string{"0-0:E:directional"},
		},
		{
			name:      "Star(3)",
			ctor:      builder.Star(3),
			wantNodes: []string{"Center", "0", "1"},
			wantEdges: []string{"Center-0:E:directional", "Center-1:E:directional"},
		},
		{
			name:      "Complete(3)",
			ctor:      builder.Complete(3),
			wantNodes: []string{"0", "1", "2"},
			wantEdges: []string{"0-1:E:directional", "0-2:E:directional", "1-2:E:directional"},
		},
		{
			name:      "Grid(2,2)",
			ctor:      builder.Grid(2, 2),
			wantNodes: []string{"0,0", "0,1", "1,0", "1,1"},
			wantEdges: []string{
				"0,0-0,1:E:directional", "0,0-1,0:E:directional",
				"0,1-1,1:E:directional", "1,0-1,1:E:directional",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, uids(g))
			assert.Equal(t, tc.wantEdges, edgeList(g))
			for _, n := range g.Nodes() {
				assert.Equal(t, builder.DefaultNodeType, n.Type())
			}
		})
	}
}

// TestBuilders_Validation checks every constructor's parameter domain.
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		"Path(1)":             {ctor: builder.Path(1), want: builder.ErrTooFewVertices},
		"Cycle(0)":            {ctor: builder.Cycle(0), want: builder.ErrTooFewVertices},
		"Star(1)":             {ctor: builder.Star(1), want: builder.ErrTooFewVertices},
		"Complete(0)":         {ctor: builder.Complete(0), want: builder.ErrTooFewVertices},
		"Grid(0,3)":           {ctor: builder.Grid(0, 3), want: builder.ErrTooFewVertices},
		"RandomSparse(0,.5)":  {ctor: builder.RandomSparse(0, 0.5), opts: []builder.BuilderOption{builder.WithSeed(1)}, want: builder.ErrTooFewVertices},
		"RandomSparse(3,1.5)": {ctor: builder.RandomSparse(3, 1.5), opts: []builder.BuilderOption{builder.WithSeed(1)}, want: builder.ErrInvalidProbability},
		"RandomSparse no rng": {ctor: builder.RandomSparse(3, 0.5), want: builder.ErrNeedRandSource},
		"nil constructor":     {ctor: nil, want: builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_EdgeKinds covers WithReverse and WithBidirected.
func TestBuilders_EdgeKinds(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithEdgeType("contains"), builder.WithReverse(),
	}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0-1:contains:directional", "1-0:contains:reverse"}, edgeList(g))
	assert.Equal(t, 2, builder.BuiltEdgeTypes(builder.WithEdgeType("contains"), builder.WithReverse()).Len())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirected()}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0-1:E:bidirectional", "1-0:E:bidirectional"}, edgeList(g))
	assert.True(t, builder.BuiltEdgeTypes(builder.WithBidirected()).Contains(
		core.EdgeType{Name: "E", Dir: core.Bidirectional}))
}

// TestBuilders_Compose collides on UIDs unless the schemes differ.
func TestBuilders_Compose(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Cycle(3))
	assert.ErrorIs(t, err, core.ErrNodeExists)

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("a", 0)}, builder.Path(2)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("b", 0)}, builder.Cycle(2)))
	assert.Equal(t, []string{"a0", "a1", "b0", "b1"}, uids(g))
	assert.Equal(t, 3, g.EdgeCount())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestBuilders_NodeOptions checks node types and per-index attributes.
func TestBuilders_NodeOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithNodeType("Class"),
		builder.WithNodeAttributes(func(idx int) []*core.Attribute {
			return []*core.Attribute{core.NewInt("index", "metric", int32(idx))}
		}),
	}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"Center", "A", "B"}, uids(g))

	for i, uid := range []string{"A", "B"} {
		n, ok := g.FindNode(uid)
		require.True(t, ok)
		assert.Equal(t, core.NodeType("Class"), n.Type())
		a, ok := n.Attributes().First("index")
		require.True(t, ok)
		v, _ := a.Int()
		assert.Equal(t, int32(i), v)
	}
	hub, _ := g.FindNode(builder.CenterNodeID)
	a, ok := hub.Attributes().First("index")
	require.True(t, ok)
	v, _ := a.Int()
	assert.Equal(t, int32(2), v)
}

// TestRandomSparse_Deterministic yields identical files for equal seeds.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []byte {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, g.Save(&buf))
		return buf.Bytes()
	}
	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))

	full, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
}

// TestBuilders_WrappedContext keeps the constructor name in messages.
func TestBuilders_WrappedContext(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Grid(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BuildGraph: Grid:")
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}
