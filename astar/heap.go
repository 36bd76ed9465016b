package astar

import "github.com/RiPs7/AdventOfCode2023/pathfind"

// openItem is one queued value. f is the estimate captured at push time.
type openItem[T comparable, C pathfind.Cost] struct {
	value T
	f     C
	seq   uint64
}

// openSet is a min-heap of openItem ordered by f, then by push sequence.
type openSet[T comparable, C pathfind.Cost] []openItem[T, C]

func (s openSet[T, C]) Len() int { return len(s) }

func (s openSet[T, C]) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].seq < s[j].seq
}

func (s openSet[T, C]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet[T, C]) Push(x any) { *s = append(*s, x.(openItem[T, C])) }

func (s *openSet[T, C]) Pop() any {
	old := *s
	n := len(old)
	it := old[n-1]
	*s = old[:n-1]

	return it
}
