// Package dfs implements depth-first search from a start value to an end
// value over a caller-supplied neighbor function.
//
// The search is iterative: an explicit LIFO stack replaces recursion, so deep
// graphs such as long pipe loops cannot overflow the goroutine stack.
package dfs

import (
	"github.com/RiPs7/AdventOfCode2023/internal/telemetry"
	"github.com/RiPs7/AdventOfCode2023/internal/trail"
)

const algorithm = "dfs"

// frame is one stack entry: a value and the value that pushed it.
type frame[T comparable] struct {
	id        T
	parent    T
	hasParent bool
}

// dfsWalker encapsulates state during a single DFS run.
type dfsWalker[T comparable] struct {
	end       T
	neighbors func(T) []T
	opts      DFSOptions
	stack     []frame[T]
	closed    map[T]struct{}
	trail     *trail.Trail[T]
	expanded  int
	peak      int
}

// Search performs depth-first search from start and returns some path
// start → end inclusive. The path is valid but not necessarily shortest.
//
// Popped values equal to end terminate the search immediately. Any other
// value is expanded at most once; its neighbors are pushed in callback
// order (so the last neighbor is explored first), skipping the value it was
// reached from.
//
// Returns ErrNoPath (wrapping pathfind.ErrGoalUnreachable) when the stack
// empties first.
func Search[T comparable](start, end T, neighbors func(T) []T, opts ...Option) ([]T, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &dfsWalker[T]{
		end:       end,
		neighbors: neighbors,
		opts:      o,
		stack:     make([]frame[T], 0, 16),
		closed:    make(map[T]struct{}),
		trail:     trail.New[T](16),
	}

	if o.StartAsEnd {
		// start counts as expanded; reaching it again only matters as the goal
		w.expanded++
		w.closed[start] = struct{}{}
		for _, nbr := range neighbors(start) {
			w.push(frame[T]{id: nbr, parent: start, hasParent: true})
		}
	} else {
		w.push(frame[T]{id: start})
	}

	path, err := w.run()
	telemetry.Record(o.Logger, telemetry.SearchStats{
		Algorithm:    algorithm,
		Expanded:     w.expanded,
		FrontierPeak: w.peak,
		PathLen:      len(path),
		Found:        err == nil,
	})

	return path, err
}

func (w *dfsWalker[T]) run() ([]T, error) {
	for len(w.stack) > 0 {
		f := w.pop()
		if f.id == w.end {
			if !f.hasParent {
				return []T{f.id}, nil
			}

			return w.trail.PathVia(f.parent, f.id), nil
		}
		if _, done := w.closed[f.id]; done {
			continue
		}

		w.closed[f.id] = struct{}{}
		w.expanded++
		if f.hasParent {
			w.trail.Link(f.id, f.parent)
		}
		for _, nbr := range w.neighbors(f.id) {
			// never step straight back
			if f.hasParent && nbr == f.parent {
				continue
			}
			w.push(frame[T]{id: nbr, parent: f.id, hasParent: true})
		}
	}

	return nil, ErrNoPath
}

func (w *dfsWalker[T]) push(f frame[T]) {
	w.stack = append(w.stack, f)
	if len(w.stack) > w.peak {
		w.peak = len(w.stack)
	}
}

func (w *dfsWalker[T]) pop() frame[T] {
	last := len(w.stack) - 1
	f := w.stack[last]
	w.stack = w.stack[:last]

	return f
}
