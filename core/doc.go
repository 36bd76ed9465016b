// Package core provides a thread-safe in-memory Graph used to express small,
// literal graphs (tests, examples, reduced puzzle graphs) and to feed them to
// the search packages through their neighbor callbacks.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Adapters:
//
//	g.Successors  func(string) []string                         // bfs, dfs
//	g.Edges       func(string) []pathfind.Edge[string, int64]   // astar
//	g.EdgesAt     func(string, int64) []pathfind.Edge[...]      // dijkstra
//
// Determinism:
//
//	Vertices and adjacency keep insertion order, so the same construction
//	sequence always yields the same neighbor order and hence the same paths.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph; concurrent searches may read it
//	while other goroutines add vertices or edges.
package core
