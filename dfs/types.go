// Package dfs defines options and errors for depth-first search over
// caller-defined node values.
package dfs

import (
	"fmt"
	"log/slog"

	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// ErrNoPath is returned when the stack empties before end is popped.
// It wraps pathfind.ErrGoalUnreachable.
var ErrNoPath = fmt.Errorf("dfs: %w", pathfind.ErrGoalUnreachable)

// Option configures optional behavior of a DFS run.
// Use with Search(start, end, neighbors, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a DFS run.
type DFSOptions struct {
	// StartAsEnd seeds the stack with the neighbors of start (each with
	// parent start) so that Search(s, s, ...) finds a cycle through s.
	StartAsEnd bool

	// Logger receives one debug record per run. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns a DFSOptions struct with:
//   - start pushed as the root
//   - slog.Default() logging
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithStartAsEnd seeds the stack with start's neighbors. start is closed
// once seeded and is only revisited as the goal.
func WithStartAsEnd() Option {
	return func(o *DFSOptions) {
		o.StartAsEnd = true
	}
}

// WithLogger sets the run logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *DFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
