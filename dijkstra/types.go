// Package dijkstra defines options and errors for Dijkstra's shortest-path
// search over caller-defined node values.
//
// Dijkstra pops entries in increasing order of accumulated cost, so with
// non-negative edge weights the first entry that satisfies the goal predicate
// carries a minimum-cost path.
//
// Options:
//
//	– WithLogger: debug record per run (expanded values, heap peak, path length).
//
// Errors (sentinel):
//
//	– ErrNoPath if the heap empties without a goal pop.
//
// Example usage:
//
//	path, cost, err := dijkstra.Search(start, isGoal, func(s State, _ int) []pathfind.Edge[State, int] {
//	    return s.moves()
//	})
package dijkstra

import (
	"fmt"
	"log/slog"

	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// ErrNoPath indicates the heap emptied before any value satisfied isGoal.
// It wraps pathfind.ErrGoalUnreachable.
var ErrNoPath = fmt.Errorf("dijkstra: %w", pathfind.ErrGoalUnreachable)

// Options configures the behavior of a Dijkstra run.
type Options struct {
	// Logger receives one debug record per run. Nil means slog.Default().
	Logger *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with slog.Default() logging.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger sets the run logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
