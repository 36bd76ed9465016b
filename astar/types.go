package astar

import (
	"fmt"
	"log/slog"

	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// ErrNoPath is returned when the open set empties before end is popped.
// It wraps pathfind.ErrGoalUnreachable.
var ErrNoPath = fmt.Errorf("astar: %w", pathfind.ErrGoalUnreachable)

// Option configures an A* run.
type Option func(*Options)

// Options holds A* run parameters.
type Options struct {
	// Logger receives one debug record per run. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options with slog.Default() logging.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger sets the run logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ZeroHeuristic is the h ≡ 0 estimate, which reduces A* to uniform-cost search.
func ZeroHeuristic[T comparable, C pathfind.Cost](T) C {
	var zero C
	return zero
}
