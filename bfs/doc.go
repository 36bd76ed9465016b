// Package bfs provides breadth-first search from a start value to an end
// value over any comparable node type, returning the discovered path.
//
// What
//
//   - Explore values in FIFO discovery order starting at start.
//   - Return the path start → end inclusive once end is dequeued.
//   - Expand (request neighbors of) each value at most once.
//   - Never step straight back to the value a node was discovered from.
//   - WithStartAsEnd seeds the queue with start's neighbors, turning
//     Search(s, s, ...) into a shortest loop search through s.
//
// Why
//
//   - Fewest-edge paths on unit-step graphs (grids, mazes, state machines).
//   - Loop detection: which cycle leaves and re-enters a given value.
//
// Determinism
//
//	The queue is FIFO and neighbors are enqueued in callback order, so a
//	deterministic neighbor function yields the same path on every run.
//
// Complexity (V = expanded values, E = neighbors returned)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (queue may hold duplicates until they are dequeued)
//
// Usage
//
//	path, err := bfs.Search(start, goal, func(p Point) []Point {
//	    return grid.OpenNeighbors(p)
//	})
//	if errors.Is(err, pathfind.ErrGoalUnreachable) {
//	    // goal is disconnected from start
//	}
//
//	// loop through start:
//	loop, err := bfs.Search(s, s, neighbors, bfs.WithStartAsEnd())
//
// Options
//
//   - DefaultOptions():  root is start itself, slog.Default() logging.
//   - WithStartAsEnd():  seed with start's neighbors (parent = start).
//   - WithLogger(l):     debug record per run (expanded, frontier peak, path length).
//
// Errors
//
//   - ErrNoPath (wraps pathfind.ErrGoalUnreachable) if the queue empties first.
package bfs
