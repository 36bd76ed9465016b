// Package dfs implements depth-first search on arbitrary comparable node
// values, returning a start → end path.
//
// What:
//
//   - Search(start, end, neighbors, opts...): explore as deep as possible
//     along each branch before backtracking, stop when end is popped.
//   - Each value is expanded (its neighbors requested) at most once.
//   - A value never steps straight back to the value that pushed it.
//   - WithStartAsEnd seeds the stack with start's neighbors, turning
//     Search(s, s, ...) into "find a cycle through s". On undirected graphs
//     this is the mode used to trace closed loops, since the back-step
//     filter stops the trivial s → n → s answer.
//
// Why:
//
//   - Any-path reachability where the shortest path is not required.
//   - Tracing a single closed loop (pipe mazes) where every branch is the loop.
//   - Flood fills driven by a neighbor callback that records what it sees.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E), stack entries are only discarded when popped.
//
// Errors:
//
//   - ErrNoPath (wraps pathfind.ErrGoalUnreachable) when the stack empties.
//
// Functions:
//
//   - Search[T comparable](start, end T, neighbors func(T) []T, opts ...Option) ([]T, error)
//   - DefaultOptions(), WithStartAsEnd(), WithLogger()
package dfs
