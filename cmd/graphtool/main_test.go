package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphlib/converters"
	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/dfs"
	"github.com/katalvlaran/graphlib/internal/catalog"
	"github.com/katalvlaran/graphlib/internal/config"
)

// run executes graphtool with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeCallGraph saves a small call graph:
//
//	main → parse, main → eval, eval → print  (calls)
//	pkg → main with reverse companion         (contains)
func writeCallGraph(t *testing.T) string {
	t.Helper()
	g := core.NewGraph()
	g.SetHeaderInfo("lang", "go")
	for _, uid := range []string{"main", "parse", "eval", "print"} {
		_, err := g.CreateNode(uid, "Func")
		require.NoError(t, err)
	}
	_, err := g.CreateNode("pkg", "Package")
	require.NoError(t, err)

	for _, e := range [][2]string{{"main", "parse"}, {"main", "eval"}, {"eval", "print"}} {
		_, err = g.CreateDirectedEdgeByUID(e[0], e[1], "calls", false)
		require.NoError(t, err)
	}
	_, err = g.CreateDirectedEdgeByUID("pkg", "main", "contains", true)
	require.NoError(t, err)

	main, _ := g.FindNode("main")
	require.NoError(t, main.AddAttribute(core.NewInt("line", "", 10)))

	path := filepath.Join(t.TempDir(), "calls.graph")
	require.NoError(t, g.SaveBinary(path))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", writeCallGraph(t))
	require.NoError(t, err)
	assert.Contains(t, out, "header lang=go\n")
	assert.Contains(t, out, "nodes 5\n")
	assert.Contains(t, out, "edges 5\n")
	assert.Contains(t, out, "node-type Func 4\n")
	assert.Contains(t, out, "node-type Package 1\n")
	assert.Contains(t, out, "edge-type calls:directional 3\n")
	assert.Contains(t, out, "edge-type contains:reverse 1\n")
}

func TestWalk_Modes(t *testing.T) {
	path := writeCallGraph(t)
	cases := map[string][]string{
		"bfs":  {"+main", "main-parse", "main-eval", "+parse", "+eval", "eval-print", "+print"},
		"dfs":  {"+main", "main-parse", "+parse", "-parse", "main-eval", "+eval", "eval-print", "+print", "-print", "-eval", "-main"},
		"pre":  {"+main", "main-parse", "+parse", "main-eval", "+eval", "eval-print", "+print"},
		"post": {"main-parse", "-parse", "main-eval", "eval-print", "-print", "-eval", "-main"},
	}
	for mode, want := range cases {
		t.Run(mode, func(t *testing.T) {
			out, err := run(t, "walk", path, "--start", "main", "--mode", mode, "--edge", "calls")
			require.NoError(t, err)
			assert.Equal(t, want, lines(out))
		})
	}
}

func TestWalk_Order(t *testing.T) {
	path := writeCallGraph(t)
	out, err := run(t, "walk", path, "--start", "main", "--mode", "dfs", "--edge", "calls", "--order")
	require.NoError(t, err)
	assert.Equal(t, []string{"parse", "print", "eval", "main"}, lines(out))

	out, err = run(t, "walk", path, "--start", "main", "--edge", "calls", "--order", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "parse", "eval"}, lines(out))
}

func TestWalk_ReverseEdges(t *testing.T) {
	out, err := run(t, "walk", writeCallGraph(t), "--start", "main", "--edge", "contains:reverse")
	require.NoError(t, err)
	assert.Equal(t, []string{"+main", "main-pkg", "+pkg"}, lines(out))
}

func TestWalk_ConfigDefaultEdges(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "graphtool.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("default_edges: [calls]\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "walk", writeCallGraph(t), "--start", "main", "--order")
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "parse", "eval", "print"}, lines(out))
}

func TestWalk_Errors(t *testing.T) {
	path := writeCallGraph(t)

	_, err := run(t, "walk", path, "--start", "nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = run(t, "walk", path, "--start", "main", "--mode", "sideways")
	assert.ErrorContains(t, err, "unknown mode")

	_, err = run(t, "walk", path, "--start", "main", "--edge", "calls:diagonal")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "walk", path)
	assert.Error(t, err, "--start is required")

	_, err = run(t, "walk", filepath.Join(t.TempDir(), "missing.graph"), "--start", "main")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStrings(t *testing.T) {
	out, err := run(t, "strings", writeCallGraph(t))
	require.NoError(t, err)
	for _, s := range []string{"main", "parse", "Func", "calls", "contains"} {
		assert.Contains(t, out, "\t\""+s+"\"\n")
	}

	out, err = run(t, "strings", writeCallGraph(t), "--types")
	require.NoError(t, err)
	assert.Contains(t, out, "\ttoSave\t\"main\"\n")
}

func TestDump(t *testing.T) {
	path := writeCallGraph(t)

	out, err := run(t, "dump", path)
	require.NoError(t, err)
	var doc dumpDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, map[string]string{"lang": "go"}, doc.Header)
	require.Len(t, doc.Nodes, 5)
	assert.Equal(t, "main", doc.Nodes[0].UID)
	require.Len(t, doc.Nodes[0].Attrs, 1)
	assert.Equal(t, "line", doc.Nodes[0].Attrs[0].Name)
	assert.Equal(t, "int", doc.Nodes[0].Attrs[0].Kind)
	assert.Equal(t, 10, doc.Nodes[0].Attrs[0].Value)
	require.Len(t, doc.Edges, 5)
	assert.Equal(t, dumpEdge{From: "main", To: "parse", Type: "calls:directional"}, doc.Edges[0])

	out, err = run(t, "dump", path, "--node-type", "Func")
	require.NoError(t, err)
	doc = dumpDoc{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Nodes, 4)
	assert.Len(t, doc.Edges, 3)
}

func TestTopoAndCycles(t *testing.T) {
	path := writeCallGraph(t)

	out, err := run(t, "topo", path, "--edge", "calls")
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg", "main", "eval", "print", "parse"}, lines(out))

	out, err = run(t, "cycles", path, "--edge", "calls")
	require.NoError(t, err)
	assert.Equal(t, "no cycles\n", out)

	ring := filepath.Join(t.TempDir(), "ring.graph")
	_, err = run(t, "build", ring, "--shape", "cycle", "--n", "3", "--prefix", "N")
	require.NoError(t, err)

	out, err = run(t, "cycles", ring)
	require.NoError(t, err)
	assert.Equal(t, "N1 -> N2 -> N3 -> N1\n", out)

	_, err = run(t, "topo", ring)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestBuild_Zipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.graphz")
	_, err := run(t, "--zipped", "build", path, "--shape", "grid", "--rows", "2", "--cols", "3", "--bidirected", "--edge-type", "adj")
	require.NoError(t, err)

	out, err := run(t, "--zipped", "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "header shape=grid\n")
	assert.Contains(t, out, "nodes 6\n")
	assert.Contains(t, out, "edge-type adj:bidirectional 14\n")

	_, err = run(t, "info", path)
	assert.Error(t, err, "zipped file read as plain")
}

func TestBuild_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "build", filepath.Join(dir, "x.graph"), "--shape", "hexagon")
	assert.ErrorContains(t, err, "unknown shape")

	_, err = run(t, "build", filepath.Join(dir, "x.graph"), "--shape", "path", "--n", "1")
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "buckets: 511\n")
	assert.Contains(t, out, "log_level: info\n")

	out, err = run(t, "--log-level", "debug", "--zipped", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: debug\n")
	assert.Contains(t, out, "zipped: true\n")

	_, err = run(t, "--log-level", "loud", "config")
	assert.ErrorIs(t, err, config.ErrInvalid)

	path := filepath.Join(t.TempDir(), "cfg", "graphtool.yaml")
	_, err = run(t, "config", "--init", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigFlag_TOML(t *testing.T) {
	assert.Equal(t, "YAML or TOML config file", newRootCmd().PersistentFlags().Lookup("config").Usage)

	path := filepath.Join(t.TempDir(), "graphtool.toml")
	require.NoError(t, os.WriteFile(path, []byte("buckets = 7\nlog_level = \"warn\"\n"), 0o644))
	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "buckets: 7\n")
	assert.Contains(t, out, "log_level: warn\n")
}

func TestInfo_ManyFiles(t *testing.T) {
	first := writeCallGraph(t)
	ring := filepath.Join(t.TempDir(), "ring.graph")
	_, err := run(t, "build", ring, "--shape", "cycle", "--n", "3")
	require.NoError(t, err)

	out, err := run(t, "info", first, ring)
	require.NoError(t, err)
	i, j := strings.Index(out, "== "+first), strings.Index(out, "== "+ring)
	require.True(t, i >= 0 && j > i, "reports follow argument order")
	assert.Contains(t, out[i:j], "nodes 5\n")
	assert.Contains(t, out[j:], "nodes 3\n")

	_, err = run(t, "info", first, filepath.Join(t.TempDir(), "missing.graph"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSCCPathDot(t *testing.T) {
	path := writeCallGraph(t)

	out, err := run(t, "scc", path, "--edge", "calls")
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "parse", "eval", "print", "pkg"}, lines(out))

	out, err = run(t, "path", path, "main", "print", "--edge", "calls")
	require.NoError(t, err)
	assert.Equal(t, "main -> eval -> print\n", out)

	_, err = run(t, "path", path, "print", "main", "--edge", "calls")
	assert.ErrorIs(t, err, converters.ErrNoPath)

	out, err = run(t, "dot", path, "--edge", "calls")
	require.NoError(t, err)
	assert.Contains(t, out, `"eval" -> "print"`)
	assert.NotContains(t, out, `"pkg" -> "main"`)
}

func TestGraphMLAndCSV(t *testing.T) {
	path := writeCallGraph(t)

	out, err := run(t, "graphml", path, "--edge", "calls")
	require.NoError(t, err)
	assert.Contains(t, out, `<node id="pkg">`)
	assert.Equal(t, 3, strings.Count(out, "<edge "))

	csvText, err := run(t, "csv", "export", path)
	require.NoError(t, err)
	assert.Contains(t, csvText, "@node,Func\nUniqueName,line:int\nmain,10\n")

	csvPath := filepath.Join(t.TempDir(), "calls.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(csvText), 0o644))
	rebuilt := filepath.Join(t.TempDir(), "rebuilt.graph")
	_, err = run(t, "csv", "import", csvPath, rebuilt)
	require.NoError(t, err)

	want, err := run(t, "info", path)
	require.NoError(t, err)
	got, err := run(t, "info", rebuilt)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = run(t, "csv", "import", filepath.Join(t.TempDir(), "missing.csv"), rebuilt)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalog(t *testing.T) {
	path := writeCallGraph(t)
	dir := filepath.Join(t.TempDir(), "catalog")

	_, err := run(t, "catalog", "put", "calls", path, "--catalog", dir)
	require.NoError(t, err)

	out, err := run(t, "catalog", "ls", "--catalog", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "calls\t"), out)

	restored := filepath.Join(t.TempDir(), "restored.graph")
	_, err = run(t, "catalog", "get", "calls", restored, "--catalog", dir)
	require.NoError(t, err)
	out, err = run(t, "info", restored)
	require.NoError(t, err)
	assert.Contains(t, out, "header lang=go\n")
	assert.Contains(t, out, "nodes 5\n")

	_, err = run(t, "catalog", "rm", "calls", "--catalog", dir)
	require.NoError(t, err)
	out, err = run(t, "catalog", "ls", "--catalog", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "catalog", "get", "calls", restored, "--catalog", dir)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

// syncBuffer is a bytes.Buffer safe for one writer and one poller.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatch(t *testing.T) {
	path := writeCallGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"watch", path, "--debounce", "20ms"})
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "nodes 5\n")
	}, 5*time.Second, 10*time.Millisecond)

	small := core.NewGraph()
	for _, uid := range []string{"x", "y"} {
		_, err := small.CreateNode(uid, "Func")
		require.NoError(t, err)
	}
	// Rewrite until a reload shows up; the first write may land before the
	// watcher is registered.
	require.Eventually(t, func() bool {
		s := out.String()
		if strings.Contains(s, "(reload ") && strings.Contains(s, "nodes 2\n") {
			return true
		}
		_ = small.SaveBinary(path)
		return false
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
