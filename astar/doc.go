// Package astar implements A* search over arbitrary comparable node values
// with weighted edges and a caller-supplied heuristic.
//
// What:
//
//   - Search(start, end, neighbors, heuristic, opts...) returns a least-cost
//     path start → end when edge costs are non-negative and the heuristic is
//     admissible.
//   - Edge costs and heuristic share the numeric type C (any integer or
//     float type, see pathfind.Cost).
//   - At most one open-set entry exists per value at a time.
//
// Heuristics:
//
//   - ZeroHeuristic turns A* into uniform-cost search.
//   - Manhattan distance is admissible on 4-connected grids with step cost ≥ 1.
//
// Determinism:
//
//	Entries with equal f pop in push order and edges are relaxed in the
//	order the neighbor function returns them, so results are reproducible.
//
// Complexity:
//
//   - Time:   O((V + E) log V) with a consistent heuristic.
//   - Memory: O(V) for g, f, parents and the open set.
//
// Errors:
//
//   - ErrNoPath (wraps pathfind.ErrGoalUnreachable) if end is never popped.
//
// Example:
//
//	path, err := astar.Search(start, goal, grid.Edges, func(p Point) int {
//	    return mathx.Manhattan(p, goal)
//	})
package astar
