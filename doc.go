// Package graphlib is an in-memory typed multigraph with a compact binary
// file format and visitor-driven traversals, meant for tools that model code
// as nodes (classes, functions, files) joined by typed relations (calls,
// contains, inherits).
//
// What is in the box?
//
//	• String table: every UID and type label is interned once and persisted
//	  as a key, so large graphs stay small on disk.
//	• Graph model: typed nodes, typed edges with a direction
//	  (directional, reverse companion, bidirectional pair), header entries
//	  and nested attributes.
//	• Persistence: SaveBinary / LoadBinary, plain or deflate-compressed.
//	• Traversals: BFS and DFS (combined, preorder, postorder) filtered by an
//	  EdgeTypeSet, plus topological sort and cycle listing.
//	• Builders: standard shapes for tests and benchmarks.
//
// Layout:
//
//	strtable/          string interning, bucketed B-tree storage, STRTBL block
//	binio/             little-endian primitives over buffered, optionally zipped streams
//	core/              Graph, Node, Edge, Attribute, persistence, Visitor contract
//	bfs/               breadth-first walker
//	dfs/               depth-first walkers, TopologicalSort, DetectCycles
//	builder/           Path, Cycle, Star, Complete, Grid, RandomSparse
//	converters/        export to and import from dominikbraun/graph, SCC, DOT
//	internal/config/   YAML/TOML tool configuration
//	internal/catalog/  named snapshots in an embedded badger store
//	cmd/graphtool/     the graphtool CLI
//
// Quick example:
//
//	g := core.NewGraph()
//	main, _ := g.CreateNode("main", "Func")
//	util, _ := g.CreateNode("util", "Func")
//	_, _ = g.CreateDirectedEdge(main, util, "calls", true)
//
//	rec := &core.Recorder{}
//	_, _ = dfs.Traverse(g, main, core.NewEdgeTypeSet(core.EdgeType{Name: "calls", Dir: core.Directional}), rec)
//	// rec.Events: [+main main-util +util -util -main]
//
//	go get github.com/katalvlaran/graphlib
package graphlib
