package dijkstra_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiPs7/AdventOfCode2023/core"
	"github.com/RiPs7/AdventOfCode2023/dijkstra"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// buildLiteral: A→B(1), A→C(4), B→C(1), B→D(5), C→D(1).
func buildLiteral(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

func is[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

func TestSearch_Literal(t *testing.T) {
	g := buildLiteral(t)
	path, cost, err := dijkstra.Search("A", is("D"), g.EdgesAt)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	assert.Equal(t, int64(3), cost)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := buildLiteral(t)
	path, cost, err := dijkstra.Search("A", is("A"), g.EdgesAt)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
	assert.Zero(t, cost)
}

func TestSearch_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))

	path, cost, err := dijkstra.Search("X", is("Y"), g.EdgesAt)
	assert.Nil(t, path)
	assert.Zero(t, cost)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.ErrorIs(t, err, pathfind.ErrGoalUnreachable)
}

// TestSearch_PredicateGoal stops at the cheapest of several goal values.
func TestSearch_PredicateGoal(t *testing.T) {
	g := buildLiteral(t)
	path, cost, err := dijkstra.Search("A", func(v string) bool { return v == "C" || v == "D" }, g.EdgesAt)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, int64(2), cost)
}

// TestSearch_TiesPopInPushOrder: both A→B→D and A→C→D cost 2; B was pushed first.
func TestSearch_TiesPopInPushOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))

	for i := 0; i < 5; i++ {
		path, cost, err := dijkstra.Search("A", is("D"), g.EdgesAt)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, path)
		assert.Equal(t, int64(2), cost)
	}
}

// TestSearch_CostAwareNeighbors prunes edges once the budget is exceeded.
func TestSearch_CostAwareNeighbors(t *testing.T) {
	// integers on a line, each step costs 3; no step is allowed past cost 9
	next := func(v, cost int) []pathfind.Edge[int, int] {
		if cost >= 9 {
			return nil
		}
		return []pathfind.Edge[int, int]{{To: v + 1, Cost: 3}}
	}

	_, cost, err := dijkstra.Search(0, is(3), next)
	require.NoError(t, err)
	assert.Equal(t, 9, cost)

	_, _, err = dijkstra.Search(0, is(4), next)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestSearch_RunLengthStates walks a 1×5 corridor where at most two
// consecutive moves may go the same way, forcing detours through a side lane.
func TestSearch_RunLengthStates(t *testing.T) {
	type state struct {
		x, y int
		dir  int // 0 none, 1 right, 2 down, 3 up
		run  int
	}
	moves := map[int][2]int{1: {1, 0}, 2: {0, 1}, 3: {0, -1}}
	next := func(s state, _ int) []pathfind.Edge[state, int] {
		var out []pathfind.Edge[state, int]
		for d := 1; d <= 3; d++ {
			run := 1
			if d == s.dir {
				run = s.run + 1
			}
			if run > 2 {
				continue
			}
			m := moves[d]
			nx, ny := s.x+m[0], s.y+m[1]
			if nx < 0 || nx > 4 || ny < 0 || ny > 1 {
				continue
			}
			out = append(out, pathfind.Edge[state, int]{To: state{nx, ny, d, run}, Cost: 1})
		}
		return out
	}

	path, cost, err := dijkstra.Search(state{}, func(s state) bool { return s.x == 4 }, next)
	require.NoError(t, err)
	// four moves right need at least one sideways step in between
	assert.Equal(t, 5, cost)
	assert.Len(t, path, 6)
	for i := 1; i < len(path); i++ {
		assert.LessOrEqual(t, path[i].run, 2)
	}
}

func TestSearch_FloatCosts(t *testing.T) {
	next := func(v string, _ float64) []pathfind.Edge[string, float64] {
		switch v {
		case "s":
			return []pathfind.Edge[string, float64]{{To: "a", Cost: 0.5}, {To: "b", Cost: 0.25}}
		case "a":
			return []pathfind.Edge[string, float64]{{To: "t", Cost: 0.5}}
		case "b":
			return []pathfind.Edge[string, float64]{{To: "t", Cost: 1.0}}
		}
		return nil
	}
	path, cost, err := dijkstra.Search("s", is("t"), next)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "t"}, path)
	assert.InDelta(t, 1.0, cost, 1e-9)
}

// TestSearch_ExpandsEachValueOnce ensures stale heap entries are discarded.
func TestSearch_ExpandsEachValueOnce(t *testing.T) {
	calls := map[int]int{}
	next := func(v, _ int) []pathfind.Edge[int, int] {
		calls[v]++
		var out []pathfind.Edge[int, int]
		for u := 0; u < 6; u++ {
			if u != v {
				out = append(out, pathfind.Edge[int, int]{To: u, Cost: 6 - u})
			}
		}
		return out
	}
	_, _, err := dijkstra.Search(0, is(-1), next)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	for v := 0; v < 6; v++ {
		assert.Equal(t, 1, calls[v], "value %d", v)
	}
}

// TestSearch_MatchesBellmanFord compares costs on random weighted digraphs.
func TestSearch_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 8
	for round := 0; round < 25; round++ {
		adj := make([][]pathfind.Edge[int, int], n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && rng.Float64() < 0.3 {
					adj[u] = append(adj[u], pathfind.Edge[int, int]{To: v, Cost: rng.Intn(9)})
				}
			}
		}
		edges := func(u int) []pathfind.Edge[int, int] { return adj[u] }
		next := func(u, _ int) []pathfind.Edge[int, int] { return adj[u] }

		for s := 0; s < n; s++ {
			dist := bellmanFord(adj, s)
			for e := 0; e < n; e++ {
				path, cost, err := dijkstra.Search(s, is(e), next)
				if dist[e] < 0 {
					assert.ErrorIs(t, err, dijkstra.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, dist[e], cost, "round %d %d→%d", round, s, e)
				sum, ok := pathfind.PathCost(path, edges)
				require.True(t, ok, "path %v is not connected", path)
				assert.Equal(t, cost, sum)
			}
		}
	}
}

func TestSearch_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := buildLiteral(t)

	_, _, err := dijkstra.Search("A", is("D"), g.EdgesAt, dijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "algorithm=dijkstra")
	assert.Contains(t, buf.String(), "path_len=4")
}

// bellmanFord returns single-source distances, -1 for unreachable values.
func bellmanFord(adj [][]pathfind.Edge[int, int], s int) []int {
	dist := make([]int, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[s] = 0
	for range adj {
		for u, out := range adj {
			if dist[u] < 0 {
				continue
			}
			for _, e := range out {
				if d := dist[u] + e.Cost; dist[e.To] < 0 || d < dist[e.To] {
					dist[e.To] = d
				}
			}
		}
	}

	return dist
}
