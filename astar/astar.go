package astar

import (
	"container/heap"

	"github.com/RiPs7/AdventOfCode2023/internal/telemetry"
	"github.com/RiPs7/AdventOfCode2023/internal/trail"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

const algorithm = "astar"

// runner holds the mutable state of one A* run.
type runner[T comparable, C pathfind.Cost] struct {
	end       T
	neighbors func(T) []pathfind.Edge[T, C]
	h         func(T) C
	g         map[T]C // best known cost from start; absent = +∞
	f         map[T]C // g + h at the time g was set
	open      openSet[T, C]
	queued    map[T]struct{}
	trail     *trail.Trail[T]
	seq       uint64
	expanded  int
	peak      int
}

// Search finds a least-cost path from start to end guided by heuristic and
// returns it start → end inclusive.
//
// The open set is a min-heap on the f-score recorded when a value was pushed,
// equal scores popping in push order. When an edge improves g of a neighbor,
// its g, f and parent are updated and it is pushed unless it is already
// queued; an entry that is already queued keeps its original priority.
// There is no closed set, so a popped value re-enters the open set if it is
// improved later.
//
// Preconditions (not checked): edge costs are non-negative and heuristic
// never overestimates. Under them the returned path is optimal; with a
// consistent heuristic no value is expanded twice.
//
// Returns ErrNoPath (wrapping pathfind.ErrGoalUnreachable) when the open set
// empties first.
func Search[T comparable, C pathfind.Cost](
	start, end T,
	neighbors func(T) []pathfind.Edge[T, C],
	heuristic func(T) C,
	opts ...Option,
) ([]T, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := &runner[T, C]{
		end:       end,
		neighbors: neighbors,
		h:         heuristic,
		g:         make(map[T]C),
		f:         make(map[T]C),
		queued:    make(map[T]struct{}),
		trail:     trail.New[T](16),
	}
	var zero C
	r.g[start] = zero
	r.f[start] = heuristic(start)
	r.push(start)

	path, err := r.run()
	telemetry.Record(o.Logger, telemetry.SearchStats{
		Algorithm:    algorithm,
		Expanded:     r.expanded,
		FrontierPeak: r.peak,
		PathLen:      len(path),
		Found:        err == nil,
	})

	return path, err
}

func (r *runner[T, C]) run() ([]T, error) {
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(openItem[T, C]).value
		delete(r.queued, cur)
		if cur == r.end {
			return r.trail.PathTo(cur), nil
		}

		r.expanded++
		base := r.g[cur]
		for _, e := range r.neighbors(cur) {
			tentative := base + e.Cost
			if old, seen := r.g[e.To]; seen && tentative >= old {
				continue
			}
			r.g[e.To] = tentative
			r.f[e.To] = tentative + r.h(e.To)
			r.trail.Link(e.To, cur)
			if _, inOpen := r.queued[e.To]; !inOpen {
				r.push(e.To)
			}
		}
	}

	return nil, ErrNoPath
}

func (r *runner[T, C]) push(v T) {
	heap.Push(&r.open, openItem[T, C]{value: v, f: r.f[v], seq: r.seq})
	r.seq++
	r.queued[v] = struct{}{}
	if r.open.Len() > r.peak {
		r.peak = r.open.Len()
	}
}
