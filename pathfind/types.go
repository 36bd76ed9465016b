package pathfind

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrGoalUnreachable is returned when a search exhausts its frontier without
// satisfying its termination condition. Each search package wraps it with its
// own prefix; test with errors.Is.
var ErrGoalUnreachable = errors.New("goal unreachable")

// Cost is the set of numeric types usable as edge weights, heuristic
// estimates and accumulated path costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is a weighted step to a neighboring node value.
// Weighted neighbor callbacks return an ordered []Edge so that tie-breaking
// between equally cheap entries follows the callback's order.
type Edge[T comparable, C Cost] struct {
	To   T
	Cost C
}

// UnitEdges lifts an unweighted neighbor list into edges of cost 1.
func UnitEdges[T comparable, C Cost](neighbors []T) []Edge[T, C] {
	out := make([]Edge[T, C], len(neighbors))
	for i, n := range neighbors {
		out[i] = Edge[T, C]{To: n, Cost: 1}
	}

	return out
}

// PathCost sums the weights along path using the edges produced by neighbors.
// When a step has several parallel edges the cheapest one counts.
// ok is false if some consecutive pair is not connected.
func PathCost[T comparable, C Cost](path []T, neighbors func(T) []Edge[T, C]) (total C, ok bool) {
	for i := 1; i < len(path); i++ {
		var (
			best  C
			found bool
		)
		for _, e := range neighbors(path[i-1]) {
			if e.To == path[i] && (!found || e.Cost < best) {
				best, found = e.Cost, true
			}
		}
		if !found {
			return total, false
		}
		total += best
	}

	return total, true
}
