// Package dijkstra implements Dijkstra's algorithm over arbitrary comparable
// node values, stopping at the first value that satisfies a goal predicate.
//
// What:
//
//	Search(start, isGoal, neighbors, opts...) returns the cheapest path from
//	start to any goal value, together with its total cost.
//
// Why:
//
//	A predicate goal fits state-space searches where many states represent
//	the same target, e.g. "at the bottom-right cell, heading anywhere, after
//	any run length". The neighbor callback also receives the accumulated
//	cost, so callers can prune or vary edges by cost so far.
//
// Cost type:
//
//	C is any integer or float type (pathfind.Cost). Edge weights must be
//	non-negative; this is documented, not checked.
//
// Determinism:
//
//	Ties on cost pop in push order, and edges are pushed in callback order.
//
// Complexity:
//
//	Time O((V + E) log E), Memory O(V + E).
//
// Errors:
//
//	ErrNoPath (wraps pathfind.ErrGoalUnreachable) if no goal is ever popped.
package dijkstra
