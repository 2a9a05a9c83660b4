package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphlib/bfs"
	"github.com/katalvlaran/graphlib/core"
)

// ExampleTraverse walks a small call graph breadth-first and prints every
// visitor event. Edges to already discovered nodes are still reported.
func ExampleTraverse() {
	g := core.NewGraph()
	for _, uid := range []string{"main", "parse", "eval", "print"} {
		_, _ = g.CreateNode(uid, "Function")
	}
	_, _ = g.CreateDirectedEdgeByUID("main", "parse", "calls", false)
	_, _ = g.CreateDirectedEdgeByUID("main", "eval", "calls", false)
	_, _ = g.CreateDirectedEdgeByUID("eval", "print", "calls", false)
	_, _ = g.CreateDirectedEdgeByUID("eval", "eval", "calls", false)

	start, _ := g.FindNode("main")
	set := core.NewEdgeTypeSet(core.EdgeType{Name: "calls", Dir: core.Directional})
	rec := &core.Recorder{}
	res, err := bfs.Traverse(g, start, set, rec)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(rec.Events)
	fmt.Println(res.Order)
	// Output:
	// [+main main-parse main-eval +parse +eval eval-print eval-eval +print]
	// [main parse eval print]
}

// ExampleBFSResult_PathTo finds the fewest-hop route between two nodes.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	for _, uid := range []string{"A", "B", "C", "D", "K"} {
		_, _ = g.CreateNode(uid, "Stop")
	}
	// Route1: A-B-C-K (3 hops), Route2: A-D-K (2 hops)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "K"}, {"A", "D"}, {"D", "K"}} {
		_, _ = g.CreateBidirectedEdge(mustFind(g, e[0]), mustFind(g, e[1]), "road")
	}

	set := core.NewEdgeTypeSet(core.EdgeType{Name: "road", Dir: core.Bidirectional})
	res, _ := bfs.Traverse(g, mustFind(g, "A"), set, core.VisitorFuncs{})
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A D K]
}

func mustFind(g *core.Graph, uid string) core.Node {
	n, _ := g.FindNode(uid)
	return n
}
