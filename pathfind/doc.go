// Package pathfind holds the contract shared by the search packages
// (bfs, dfs, astar, dijkstra): the cost constraint, the weighted edge
// returned by neighbor callbacks, and the single error every search reports
// when its frontier runs dry.
//
// What
//
//   - Cost: numeric constraint for edge weights and accumulated costs.
//   - Edge: one weighted step {To, Cost} produced by a neighbor callback.
//   - ErrGoalUnreachable: the only failure a search can report.
//
// Callback contract
//
//	The engine never looks inside a node value T; it only compares values with
//	== and uses them as map keys. Neighbor callbacks should be deterministic for
//	reproducible paths. They may carry caller-owned side effects (for example
//	collecting visited cells); such state belongs to the caller's closure and
//	must be synchronized by the caller when shared across goroutines.
//
// Preconditions such as non-negative weights or admissible heuristics are
// documented, not enforced: violating them yields possibly non-optimal paths,
// never a panic.
package pathfind
