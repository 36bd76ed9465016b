package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
	"github.com/RiPs7/AdventOfCode2023/puzzle/maze"
)

func TestReference_AllAlgorithms(t *testing.T) {
	m, err := maze.Reference()
	require.NoError(t, err)

	want := map[maze.Algorithm]int{
		maze.BFS:      75,
		maze.DFS:      79,
		maze.AStar:    75,
		maze.Dijkstra: 75,
	}
	for _, algo := range maze.Algorithms {
		t.Run(string(algo), func(t *testing.T) {
			path, err := m.Solve(algo, nil)
			require.NoError(t, err)
			assert.Len(t, path, want[algo])
			assert.Equal(t, m.Start, path[0])
			assert.Equal(t, m.End, path[len(path)-1])
			for i, p := range path {
				assert.True(t, m.Free(p), "wall at %v", p)
				if i > 0 {
					assert.Contains(t, m.Neighbors(path[i-1]), p)
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	m, err := maze.Parse("010\n000\n110", gridgraph.Pt(0, 0), gridgraph.Pt(2, 2))
	require.NoError(t, err)
	path, err := m.Solve(maze.BFS, nil)
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, "*1.\n***\n11*\n", strings.ReplaceAll(m.Render(path), "0", "."))
}

func TestNeighbors_SkipsWallsAndEdges(t *testing.T) {
	m, err := maze.Parse("010\n000\n110", gridgraph.Pt(0, 0), gridgraph.Pt(2, 2))
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Point{gridgraph.Pt(0, 1)}, m.Neighbors(gridgraph.Pt(0, 0)))
	assert.Equal(t, []gridgraph.Point{gridgraph.Pt(2, 1), gridgraph.Pt(0, 1)}, m.Neighbors(gridgraph.Pt(1, 1)))
	assert.Equal(t, []gridgraph.Point{gridgraph.Pt(2, 1)}, m.Neighbors(gridgraph.Pt(2, 2)))
}

func TestSolve_GraphRouteMatchesBFS(t *testing.T) {
	m, err := maze.Parse("010\n000\n110", gridgraph.Pt(0, 0), gridgraph.Pt(2, 2))
	require.NoError(t, err)

	viaGraph, err := m.Solve(maze.Dijkstra, nil)
	require.NoError(t, err)
	viaBFS, err := m.Solve(maze.BFS, nil)
	require.NoError(t, err)
	assert.Equal(t, viaBFS, viaGraph)
}

func TestParseErrors(t *testing.T) {
	_, err := maze.Parse("0a\n00", gridgraph.Pt(0, 0), gridgraph.Pt(1, 1))
	assert.ErrorIs(t, err, maze.ErrBadCell)

	_, err = maze.Parse("01\n00", gridgraph.Pt(1, 0), gridgraph.Pt(1, 1))
	assert.ErrorIs(t, err, maze.ErrBlocked)

	_, err = maze.Parse("00\n00", gridgraph.Pt(0, 0), gridgraph.Pt(5, 5))
	assert.ErrorIs(t, err, maze.ErrBlocked)

	_, err = maze.Parse("", gridgraph.Pt(0, 0), gridgraph.Pt(0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestSolveErrors(t *testing.T) {
	m, err := maze.Parse("010\n010\n010", gridgraph.Pt(0, 0), gridgraph.Pt(2, 2))
	require.NoError(t, err)
	for _, algo := range maze.Algorithms {
		_, err := m.Solve(algo, nil)
		assert.ErrorIs(t, err, pathfind.ErrGoalUnreachable, algo)
	}
	_, err = m.Solve("flood", nil)
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
}
