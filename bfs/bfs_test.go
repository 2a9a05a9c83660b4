package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/bfs"
	"github.com/katalvlaran/graphlib/core"
)

var edgeE = core.EdgeType{Name: "E", Dir: core.Directional}

// fixture builds the five-node multigraph N1..N5 with directional "E" edges.
func fixture(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, uid := range []string{"N1", "N2", "N3", "N4", "N5"} {
		_, err := g.CreateNode(uid, "Class")
		require.NoError(t, err)
	}
	for _, e := range [][2]string{
		{"N1", "N2"}, {"N1", "N3"}, {"N1", "N2"},
		{"N2", "N4"}, {"N2", "N4"},
		{"N3", "N1"}, {"N3", "N4"}, {"N3", "N4"},
		{"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"}, {"N4", "N5"}, {"N4", "N1"},
	} {
		_, err := g.CreateDirectedEdgeByUID(e[0], e[1], "E", false)
		require.NoError(t, err)
	}

	return g
}

func node(t testing.TB, g *core.Graph, uid string) core.Node {
	t.Helper()
	n, ok := g.FindNode(uid)
	require.True(t, ok)

	return n
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := fixture(t)
	n1 := node(t, g, "N1")
	set := core.NewEdgeTypeSet(edgeE)
	rec := &core.Recorder{}

	_, err := bfs.Traverse(nil, n1, set, rec)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Traverse(g, n1, set, nil)
	assert.ErrorIs(t, err, core.ErrNilVisitor)

	_, err = bfs.Traverse(g, core.Node{}, set, rec)
	assert.ErrorIs(t, err, bfs.ErrInvalidStart)

	other := fixture(t)
	_, err = bfs.Traverse(g, node(t, other, "N1"), set, rec)
	assert.ErrorIs(t, err, bfs.ErrInvalidStart, "start from another graph")

	gone := node(t, other, "N2")
	require.NoError(t, other.DeleteNode("N2"))
	_, err = bfs.Traverse(other, gone, set, rec)
	assert.ErrorIs(t, err, bfs.ErrInvalidStart, "deleted start")

	_, err = bfs.Traverse(g, n1, set, rec, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.Empty(t, rec.Events, "no events on rejected input")
}

// TestBFS_FixtureSequence pins the exact event sequence on the multigraph.
func TestBFS_FixtureSequence(t *testing.T) {
	g := fixture(t)
	rec := &core.Recorder{}
	res, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), rec)
	require.NoError(t, err)

	want := []string{
		"+N1", "N1-N2", "N1-N3", "N1-N2",
		"+N2", "N2-N4", "N2-N4",
		"+N3", "N3-N1", "N3-N4", "N3-N4",
		"+N4", "N4-N1", "N4-N5", "N4-N1", "N4-N5", "N4-N1",
		"+N5",
	}
	assert.Equal(t, want, rec.Events)
	assert.Equal(t, []string{"N1", "N2", "N3", "N4", "N5"}, res.Order)
	assert.Equal(t, map[string]int{"N1": 0, "N2": 1, "N3": 1, "N4": 2, "N5": 3}, res.Depth)

	path, err := res.PathTo("N5")
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N2", "N4", "N5"}, path)
}

// TestBFS_Deterministic repeats the walk and expects identical events.
func TestBFS_Deterministic(t *testing.T) {
	g := fixture(t)
	set := core.NewEdgeTypeSet(edgeE)
	var first []string
	for i := 0; i < 5; i++ {
		rec := &core.Recorder{}
		_, err := bfs.Traverse(g, node(t, g, "N3"), set, rec)
		require.NoError(t, err)
		if first == nil {
			first = rec.Events
			continue
		}
		assert.Equal(t, first, rec.Events)
	}
}

// TestBFS_EdgeTypeFilter only follows edges whose type is in the set.
func TestBFS_EdgeTypeFilter(t *testing.T) {
	g := core.NewGraph()
	for _, uid := range []string{"A", "B", "C"} {
		_, err := g.CreateNode(uid, "Class")
		require.NoError(t, err)
	}
	_, err := g.CreateDirectedEdgeByUID("A", "B", "calls", true)
	require.NoError(t, err)
	_, err = g.CreateDirectedEdgeByUID("A", "C", "contains", false)
	require.NoError(t, err)

	calls := core.EdgeType{Name: "calls", Dir: core.Directional}
	rec := &core.Recorder{}
	_, err = bfs.Traverse(g, node(t, g, "A"), core.NewEdgeTypeSet(calls), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"+A", "A-B", "+B"}, rec.Events)

	// The reverse companion is a different edge type.
	rev := core.EdgeType{Name: "calls", Dir: core.Reverse}
	rec = &core.Recorder{}
	_, err = bfs.Traverse(g, node(t, g, "B"), core.NewEdgeTypeSet(rev), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"+B", "B-A", "+A"}, rec.Events)

	// An empty or nil set yields only the start node.
	rec = &core.Recorder{}
	_, err = bfs.Traverse(g, node(t, g, "A"), nil, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"+A"}, rec.Events)
}

// TestBFS_MaxDepth stops discovery beyond the limit but reports edges.
func TestBFS_MaxDepth(t *testing.T) {
	g := fixture(t)
	rec := &core.Recorder{}
	res, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), rec, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N2", "N3"}, res.Order)
	assert.Contains(t, rec.Events, "N2-N4")
	assert.NotContains(t, rec.Events, "+N4")

	_, err = res.PathTo("N4")
	assert.Error(t, err)
}

// TestBFS_Hooks checks OnEnqueue/OnDequeue ordering and depths.
func TestBFS_Hooks(t *testing.T) {
	g := fixture(t)
	var enq, deq []string
	_, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), &core.Recorder{},
		bfs.WithOnEnqueue(func(n core.Node, d int) { enq = append(enq, n.UID()) }),
		bfs.WithOnDequeue(func(n core.Node, d int) { deq = append(deq, n.UID()) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N2", "N3", "N4", "N5"}, enq)
	assert.Equal(t, enq, deq)
}

// TestBFS_VisitorAbort stops on the first visitor error.
func TestBFS_VisitorAbort(t *testing.T) {
	g := fixture(t)
	stop := errors.New("stop")
	var seen []string
	v := core.VisitorFuncs{
		NodePre: func(n core.Node) error {
			seen = append(seen, n.UID())
			if n.UID() == "N3" {
				return stop
			}
			return nil
		},
	}
	_, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), v)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"N1", "N2", "N3"}, seen)

	count := 0
	v = core.VisitorFuncs{
		Edge: func(core.Edge) error {
			count++
			if count == 2 {
				return stop
			}
			return nil
		},
	}
	_, err = bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), v)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

// TestBFS_ContextCancel returns ctx.Err() when canceled.
func TestBFS_ContextCancel(t *testing.T) {
	g := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), &core.Recorder{}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// Cancel from inside the walk.
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	v := core.VisitorFuncs{NodePre: func(n core.Node) error {
		if n.UID() == "N2" {
			cancel()
		}
		return nil
	}}
	res, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), v, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"N1", "N2"}, res.Order)
}

// TestBFS_DeletedEdgesSkipped ignores edges removed before the walk.
func TestBFS_DeletedEdgesSkipped(t *testing.T) {
	g := fixture(t)
	require.NoError(t, g.DeleteNode("N3"))
	rec := &core.Recorder{}
	_, err := bfs.Traverse(g, node(t, g, "N1"), core.NewEdgeTypeSet(edgeE), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+N1", "N1-N2", "N1-N2",
		"+N2", "N2-N4", "N2-N4",
		"+N4", "N4-N1", "N4-N5", "N4-N1", "N4-N5", "N4-N1",
		"+N5",
	}, rec.Events)
}
