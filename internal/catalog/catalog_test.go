package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/builder"
	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/internal/catalog"
)

func openMem(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Open(catalog.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func ring(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPrefixIDs("N", 1), builder.WithEdgeType("next")},
		builder.Cycle(n))
	require.NoError(t, err)
	g.SetHeaderInfo("shape", "ring")
	return g
}

func edgeStrings(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.String()+" "+e.Type().String())
	}
	return out
}

func TestPutGet(t *testing.T) {
	c := openMem(t)
	g := ring(t, 4)
	require.NoError(t, c.Put("ring4", g))

	got, err := c.Get("ring4")
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), got.NodeCount())
	assert.Equal(t, edgeStrings(g), edgeStrings(got))
	v, ok := got.HeaderInfo("shape")
	require.True(t, ok)
	assert.Equal(t, "ring", v)
}

func TestPut_Replaces(t *testing.T) {
	c := openMem(t)
	require.NoError(t, c.Put("g", ring(t, 3)))
	require.NoError(t, c.Put("g", ring(t, 5)))

	got, err := c.Get("g")
	require.NoError(t, err)
	assert.Equal(t, 5, got.NodeCount())
}

func TestBucketCountTravels(t *testing.T) {
	c := openMem(t)
	g, err := builder.BuildGraph([]core.GraphOption{core.WithBuckets(7)}, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, c.Put("small", g))

	got, err := c.Get("small", core.WithBuckets(1024))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got.StrTable().Buckets())
}

func TestErrors(t *testing.T) {
	c := openMem(t)

	assert.ErrorIs(t, c.Put("", ring(t, 2)), catalog.ErrEmptyName)

	_, err := c.Get("missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.ErrorIs(t, c.Delete("missing"), catalog.ErrNotFound)

	_, err = catalog.Open(catalog.Config{})
	assert.ErrorIs(t, err, catalog.ErrNoPath)
}

func TestListAndDelete(t *testing.T) {
	c := openMem(t)
	for _, name := range []string{"beta", "alpha", "gamma"} {
		require.NoError(t, c.Put(name, ring(t, 3)))
	}

	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	names := []string{entries[0].Name, entries[1].Name, entries[2].Name}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
	for _, e := range entries {
		assert.Positive(t, e.Size)
	}

	require.NoError(t, c.Delete("beta"))
	entries, err = c.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPersistentReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	c, err := catalog.Open(catalog.Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, c.Put("ring", ring(t, 6)))
	require.NoError(t, c.Close())

	c, err = catalog.Open(catalog.Config{Path: dir})
	require.NoError(t, err)
	defer c.Close()
	got, err := c.Get("ring")
	require.NoError(t, err)
	assert.Equal(t, 6, got.NodeCount())
}
