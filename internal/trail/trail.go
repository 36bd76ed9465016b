// Package trail stores the parent links a search discovers, keyed by node
// value, and rebuilds start→goal paths from them.
//
// A Trail is owned by a single search run. Parents live in a side-table rather
// than on frontier entries, so duplicate entries for one value never disagree
// about which parent is authoritative.
package trail

// Trail maps a node value to the value it was reached from.
// The zero value is not usable; call New.
type Trail[T comparable] struct {
	parent map[T]T
}

// New returns an empty Trail with room for hint entries.
func New[T comparable](hint int) *Trail[T] {
	return &Trail[T]{parent: make(map[T]T, hint)}
}

// Link records p as the parent of v, replacing any previous parent.
func (t *Trail[T]) Link(v, p T) {
	t.parent[v] = p
}

// Parent returns the recorded parent of v.
func (t *Trail[T]) Parent(v T) (T, bool) {
	p, ok := t.parent[v]

	return p, ok
}

// Len reports how many values have a recorded parent.
func (t *Trail[T]) Len() int {
	return len(t.parent)
}

// PathTo rebuilds the path ending in goal, walking parents backward until a
// value without a parent is reached, then reversing.
// The walk stops early if a value repeats, so a corrupted table (only
// possible with negative weights) yields a truncated path instead of a hang.
func (t *Trail[T]) PathTo(goal T) []T {
	path := []T{goal}
	seen := map[T]struct{}{goal: {}}
	for cur := goal; ; {
		prev, ok := t.parent[cur]
		if !ok {
			break
		}
		if _, dup := seen[prev]; dup {
			break
		}
		seen[prev] = struct{}{}
		path = append(path, prev)
		cur = prev
	}

	return reverse(path)
}

// PathVia rebuilds the path ending in goal when goal itself was reached from
// parent but has not been linked (goal entries are returned before they are
// expanded). It is the loop-safe variant: goal may equal the root of the
// trail, as in start-as-end searches.
func (t *Trail[T]) PathVia(parent, goal T) []T {
	path := t.PathTo(parent)

	return append(path, goal)
}

func reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
