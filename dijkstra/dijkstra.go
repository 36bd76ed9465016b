// Package dijkstra implements Dijkstra's shortest-path search from a start
// value to the first value satisfying a goal predicate.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each value is expanded at most once.
//   - Every returned edge pushes a heap entry (lazy decrease-key): up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Entries are pushed unconditionally and stale ones are dropped when
//     popped, via the closed set.
//   - The neighbor function receives the accumulated cost of the value being
//     expanded, so cost-dependent state machines can be expressed directly.
//   - Negative weights are not detected; they void the optimality guarantee.
package dijkstra

import (
	"container/heap"

	"github.com/RiPs7/AdventOfCode2023/internal/telemetry"
	"github.com/RiPs7/AdventOfCode2023/internal/trail"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

const algorithm = "dijkstra"

// Search computes a minimum-cost path from start to the first popped value v
// with isGoal(v) and returns the path start → v inclusive and its cost.
//
// neighbors(v, cost) returns the edges out of v, where cost is the total
// cost of reaching v. Edge.Cost is the weight of that single step; the
// engine adds it to cost. Callbacks written to return absolute costs
// (cost plus weight) must return only the weight here.
//
// Returns ErrNoPath (wrapping pathfind.ErrGoalUnreachable) and the zero cost
// if the heap empties first.
func Search[T comparable, C pathfind.Cost](
	start T,
	isGoal func(T) bool,
	neighbors func(T, C) []pathfind.Edge[T, C],
	opts ...Option,
) ([]T, C, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[T, C]{
		isGoal:    isGoal,
		neighbors: neighbors,
		closed:    make(map[T]struct{}),
		trail:     trail.New[T](16),
	}
	heap.Init(&r.pq)
	r.push(nodeItem[T, C]{id: start})

	path, cost, err := r.process()
	telemetry.Record(cfg.Logger, telemetry.SearchStats{
		Algorithm:    algorithm,
		Expanded:     r.expanded,
		FrontierPeak: r.peak,
		PathLen:      len(path),
		Found:        err == nil,
	})

	return path, cost, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable, C pathfind.Cost] struct {
	isGoal    func(T) bool
	neighbors func(T, C) []pathfind.Edge[T, C]
	closed    map[T]struct{}  // values already expanded
	trail     *trail.Trail[T] // parent of each expanded value
	pq        nodePQ[T, C]
	seq       uint64
	expanded  int
	peak      int
}

// process pops the cheapest entry until a goal is found or the heap is empty.
func (r *runner[T, C]) process() ([]T, C, error) {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(nodeItem[T, C])
		if r.isGoal(it.id) {
			if !it.hasParent {
				return []T{it.id}, it.cost, nil
			}

			return r.trail.PathVia(it.parent, it.id), it.cost, nil
		}
		if _, done := r.closed[it.id]; done {
			continue
		}
		r.relax(it)
	}

	var zero C

	return nil, zero, ErrNoPath
}

// relax closes it and pushes one entry per outgoing edge.
func (r *runner[T, C]) relax(it nodeItem[T, C]) {
	r.closed[it.id] = struct{}{}
	r.expanded++
	if it.hasParent {
		r.trail.Link(it.id, it.parent)
	}
	for _, e := range r.neighbors(it.id, it.cost) {
		r.push(nodeItem[T, C]{
			id:        e.To,
			parent:    it.id,
			hasParent: true,
			cost:      it.cost + e.Cost,
		})
	}
}

func (r *runner[T, C]) push(it nodeItem[T, C]) {
	it.seq = r.seq
	r.seq++
	heap.Push(&r.pq, it)
	if r.pq.Len() > r.peak {
		r.peak = r.pq.Len()
	}
}

// nodeItem is a heap entry: a value, how it was reached and at what cost.
type nodeItem[T comparable, C pathfind.Cost] struct {
	id        T
	parent    T
	hasParent bool
	cost      C
	seq       uint64 // push order, breaks cost ties FIFO
}

// nodePQ is a min-heap of nodeItem ordered by cost, then push order.
type nodePQ[T comparable, C pathfind.Cost] []nodeItem[T, C]

// Len returns the number of items in the priority queue.
func (pq nodePQ[T, C]) Len() int { return len(pq) }

// Less orders by cost, breaking ties by insertion sequence.
func (pq nodePQ[T, C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two items in the priority queue.
func (pq nodePQ[T, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds an item to the heap.
func (pq *nodePQ[T, C]) Push(x any) { *pq = append(*pq, x.(nodeItem[T, C])) }

// Pop removes and returns the last item of the underlying slice.
func (pq *nodePQ[T, C]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
