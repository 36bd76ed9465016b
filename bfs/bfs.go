// Package bfs provides breadth-first search from a start value to an end
// value over a caller-supplied neighbor function.
//
// BFS explores values in FIFO discovery order, so on unit-step graphs the
// returned path has the fewest possible edges.
package bfs

import (
	"github.com/RiPs7/AdventOfCode2023/internal/telemetry"
	"github.com/RiPs7/AdventOfCode2023/internal/trail"
)

const algorithm = "bfs"

// queueItem pairs a value with the value that discovered it.
type queueItem[T comparable] struct {
	id        T
	parent    T
	hasParent bool // false only for the root
}

// walker encapsulates mutable BFS state for a single run.
type walker[T comparable] struct {
	end       T
	neighbors func(T) []T
	opts      BFSOptions
	queue     []queueItem[T]
	closed    map[T]struct{}
	trail     *trail.Trail[T]
	expanded  int
	peak      int
}

// Search runs breadth-first search from start until end is dequeued and
// returns the path start → end inclusive.
//
// Each dequeued value that is not end and not yet closed is expanded once:
// neighbors is called and every neighbor other than the value's own parent is
// enqueued. The parent filter only forbids immediate back-and-forth steps;
// longer cycles are cut by the closed set.
//
// Returns ErrNoPath (wrapping pathfind.ErrGoalUnreachable) when the queue
// empties first. Termination on infinite graphs is the caller's concern.
func Search[T comparable](start, end T, neighbors func(T) []T, opts ...Option) ([]T, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[T]{
		end:       end,
		neighbors: neighbors,
		opts:      o,
		queue:     make([]queueItem[T], 0, 16),
		closed:    make(map[T]struct{}),
		trail:     trail.New[T](16),
	}
	w.seed(start)

	path, err := w.loop()
	telemetry.Record(o.Logger, telemetry.SearchStats{
		Algorithm:    algorithm,
		Expanded:     w.expanded,
		FrontierPeak: w.peak,
		PathLen:      len(path),
		Found:        err == nil,
	})

	return path, err
}

// seed enqueues the root, or its neighbors when StartAsEnd is set.
func (w *walker[T]) seed(start T) {
	if !w.opts.StartAsEnd {
		w.enqueue(queueItem[T]{id: start})

		return
	}
	w.expanded++
	w.closed[start] = struct{}{}
	for _, nbr := range w.neighbors(start) {
		w.enqueue(queueItem[T]{id: nbr, parent: start, hasParent: true})
	}
}

// loop processes the queue until end is dequeued or the queue is empty.
func (w *walker[T]) loop() ([]T, error) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.id == w.end {
			return w.pathTo(item), nil
		}
		if _, done := w.closed[item.id]; done {
			continue
		}
		w.expand(item)
	}

	return nil, ErrNoPath
}

func (w *walker[T]) enqueue(item queueItem[T]) {
	w.queue = append(w.queue, item)
	if len(w.queue) > w.peak {
		w.peak = len(w.queue)
	}
}

// dequeue pops the first item.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// expand closes item, records its parent and enqueues its neighbors.
func (w *walker[T]) expand(item queueItem[T]) {
	w.closed[item.id] = struct{}{}
	w.expanded++
	if item.hasParent {
		w.trail.Link(item.id, item.parent)
	}
	for _, nbr := range w.neighbors(item.id) {
		if item.hasParent && nbr == item.parent {
			continue
		}
		w.enqueue(queueItem[T]{id: nbr, parent: item.id, hasParent: true})
	}
}

func (w *walker[T]) pathTo(item queueItem[T]) []T {
	if !item.hasParent {
		return []T{item.id}
	}

	return w.trail.PathVia(item.parent, item.id)
}
