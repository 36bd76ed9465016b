// Package adventofcode2023 collects generic graph search engines and the
// Advent of Code 2023 puzzles solved with them.
//
// What is inside?
//
//	Four search engines over caller-defined state spaces. Each takes a start
//	value, a goal and a neighbor callback; none of them needs a materialized
//	graph:
//		• bfs      – fewest steps, optional loop-back search (WithStartAsEnd)
//		• dfs      – iterative depth-first, same contract as bfs
//		• astar    – weighted steps guided by a heuristic
//		• dijkstra – goal predicate, cost-aware neighbors, returns the cost
//
//	Supporting packages:
//		• pathfind   – shared Edge/Cost types and ErrGoalUnreachable
//		• core       – small thread-safe literal graph for tests and demos
//		• gridgraph  – character grids, points and directions
//		• puzzle     – solver registry and timed runner, one subpackage per day
//		• config     – YAML configuration for the aoc command
//
// Layout:
//
//	astar/ bfs/ dfs/ dijkstra/ – search engines
//	pathfind/                  – shared vocabulary
//	core/ gridgraph/           – graph and grid representations
//	puzzle/                    – day10, day12, day16, day17 and the maze demo
//	internal/                  – parent trail, metrics and logging, math helpers
//	cmd/aoc/                   – command-line runner
//
// Quick start:
//
//	go run ./cmd/aoc run --inputs ./inputs 10 17
//	go run ./cmd/aoc maze --algo astar
package adventofcode2023
