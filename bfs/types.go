// Package bfs provides tunable options and error definitions
// for breadth-first search over caller-defined node values.
package bfs

import (
	"fmt"
	"log/slog"

	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// ErrNoPath is returned when the queue empties before end is dequeued.
// It wraps pathfind.ErrGoalUnreachable.
var ErrNoPath = fmt.Errorf("bfs: %w", pathfind.ErrGoalUnreachable)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize a BFS run.
type BFSOptions struct {
	// StartAsEnd seeds the queue with the neighbors of start (each with
	// parent start) instead of start itself, so that a search with
	// start == end looks for a loop back to start rather than matching
	// start immediately.
	StartAsEnd bool

	// Logger receives one debug record per run. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - start is enqueued as the root (StartAsEnd == false)
//   - slog.Default() logging
func DefaultOptions() BFSOptions {
	return BFSOptions{
		StartAsEnd: false,
		Logger:     nil,
	}
}

// WithStartAsEnd seeds the queue with start's neighbors, enabling
// "return to start" loop searches. start is closed once seeded, so it is
// never expanded again; it can still be dequeued as the goal.
func WithStartAsEnd() Option {
	return func(o *BFSOptions) {
		o.StartAsEnd = true
	}
}

// WithLogger sets the logger for run diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
