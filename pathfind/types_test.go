package pathfind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

func TestUnitEdges(t *testing.T) {
	edges := pathfind.UnitEdges[string, int]([]string{"B", "C"})
	assert.Equal(t, []pathfind.Edge[string, int]{{To: "B", Cost: 1}, {To: "C", Cost: 1}}, edges)
	assert.Empty(t, pathfind.UnitEdges[string, float64](nil))
}

func TestPathCost(t *testing.T) {
	adj := map[string][]pathfind.Edge[string, int]{
		"A": {{To: "B", Cost: 4}, {To: "B", Cost: 1}},
		"B": {{To: "C", Cost: 2}},
	}
	neighbors := func(v string) []pathfind.Edge[string, int] { return adj[v] }

	total, ok := pathfind.PathCost([]string{"A", "B", "C"}, neighbors)
	assert.True(t, ok)
	assert.Equal(t, 3, total, "parallel edges: the cheapest one counts")

	_, ok = pathfind.PathCost([]string{"A", "C"}, neighbors)
	assert.False(t, ok)

	total, ok = pathfind.PathCost([]string{"A"}, neighbors)
	assert.True(t, ok)
	assert.Zero(t, total)
}

func TestErrGoalUnreachable_Wrapping(t *testing.T) {
	err := fmt.Errorf("bfs: %w", pathfind.ErrGoalUnreachable)
	assert.True(t, errors.Is(err, pathfind.ErrGoalUnreachable))
	assert.EqualError(t, err, "bfs: goal unreachable")
}
