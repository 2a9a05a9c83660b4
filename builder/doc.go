// Package builder provides deterministic, functional-options-driven
// constructors for typed graph topologies. It is used to build fixtures for
// tests, benchmarks and examples through the public core API only.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, constructors in order.
//     – Apply(g, bopts, cons...): extend an existing graph.
//   - Constructors (Constructor closures):
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p).
//   - Configuration (BuilderOption):
//     – WithIDScheme / WithPrefixIDs / WithSymbolIDs / WithExcelColumnIDs.
//     – WithNodeType, WithEdgeType, WithNodeAttributes.
//     – WithReverse (Directional + Reverse companion), WithBidirected.
//     – WithSeed / WithRand for RandomSparse.
//   - BuiltEdgeTypes(bopts...): the core.EdgeTypeSet matching what the
//     constructors emit, ready for bfs/dfs.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce the
//     same nodes, edges and incidence order, hence the same saved bytes.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors validate before mutating and return wrapped sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed) or core errors such as core.ErrNodeExists.
package builder
