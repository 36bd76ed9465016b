// Package maze solves a binary maze ('0' free, '1' wall) with each search
// engine and renders the route.
package maze

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RiPs7/AdventOfCode2023/astar"
	"github.com/RiPs7/AdventOfCode2023/bfs"
	"github.com/RiPs7/AdventOfCode2023/dfs"
	"github.com/RiPs7/AdventOfCode2023/dijkstra"
	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/internal/mathx"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// Cell runes.
const (
	Open = '0'
	Wall = '1'
	// PathMark replaces free cells on the route in Render output.
	PathMark = '*'
)

// Algorithm names a search engine.
type Algorithm string

const (
	BFS   Algorithm = "bfs"
	DFS   Algorithm = "dfs"
	AStar Algorithm = "astar"
	// Dijkstra searches the maze converted to a core.Graph.
	Dijkstra Algorithm = "dijkstra"
)

// Algorithms lists every supported engine.
var Algorithms = []Algorithm{BFS, DFS, AStar, Dijkstra}

var (
	// ErrUnknownAlgorithm is returned by Solve for an unsupported engine.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
	// ErrBadCell is returned for a cell other than '0' or '1'.
	ErrBadCell = errors.New("maze: cell must be '0' or '1'")
	// ErrBlocked is returned when start or end is a wall or off the grid.
	ErrBlocked = errors.New("maze: endpoint is not a free cell")
)

//go:embed reference.txt
var reference string

// Maze is a parsed grid with fixed endpoints.
type Maze struct {
	grid       *gridgraph.Grid
	Start, End gridgraph.Point
}

// Reference returns the bundled 30×30 maze, entered at the top and left at
// the bottom.
func Reference() (*Maze, error) {
	return Parse(reference, gridgraph.Pt(1, 0), gridgraph.Pt(28, 29))
}

// Parse builds a Maze from rows of '0' and '1'.
func Parse(input string, start, end gridgraph.Point) (*Maze, error) {
	g, err := gridgraph.Parse(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r := g.At(gridgraph.Pt(x, y)); r != Open && r != Wall {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
		}
	}
	m := &Maze{grid: g, Start: start, End: end}
	for _, p := range []gridgraph.Point{start, end} {
		if !m.Free(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}

	return m, nil
}

// Free reports whether p is an open cell.
func (m *Maze) Free(p gridgraph.Point) bool {
	return m.grid.At(p) == Open
}

// Neighbors returns the free cells next to p, ordered up, right, down, left.
func (m *Maze) Neighbors(p gridgraph.Point) []gridgraph.Point {
	cells := m.grid.Neighbors4(p)
	out := cells[:0]
	for _, q := range cells {
		if m.Free(q) {
			out = append(out, q)
		}
	}

	return out
}

// Solve finds a route from Start to End with algo. A* uses unit steps and
// the Manhattan distance to End; Dijkstra runs on the free cells as a graph.
func (m *Maze) Solve(algo Algorithm, logger *slog.Logger) ([]gridgraph.Point, error) {
	switch algo {
	case BFS:
		return bfs.Search(m.Start, m.End, m.Neighbors, bfs.WithLogger(logger))
	case DFS:
		return dfs.Search(m.Start, m.End, m.Neighbors, dfs.WithLogger(logger))
	case AStar:
		steps := func(p gridgraph.Point) []pathfind.Edge[gridgraph.Point, int] {
			return pathfind.UnitEdges[gridgraph.Point, int](m.Neighbors(p))
		}
		h := func(p gridgraph.Point) int { return mathx.Manhattan(p, m.End) }
		return astar.Search(m.Start, m.End, steps, h, astar.WithLogger(logger))
	case Dijkstra:
		return m.solveOnGraph(logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// solveOnGraph routes over the core.Graph of free cells and maps the vertex
// IDs back to points.
func (m *Maze) solveOnGraph(logger *slog.Logger) ([]gridgraph.Point, error) {
	g := m.grid.ToCoreGraph(func(r rune) bool { return r == Open })
	goal := gridgraph.VertexID(m.End)
	ids, _, err := dijkstra.Search(gridgraph.VertexID(m.Start),
		func(id string) bool { return id == goal },
		g.EdgesAt,
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	points := make(map[string]gridgraph.Point, m.grid.Width*m.grid.Height)
	for y := 0; y < m.grid.Height; y++ {
		for x := 0; x < m.grid.Width; x++ {
			p := gridgraph.Pt(x, y)
			points[gridgraph.VertexID(p)] = p
		}
	}
	path := make([]gridgraph.Point, len(ids))
	for i, id := range ids {
		path[i] = points[id]
	}

	return path, nil
}

// Render draws the maze with every cell of path replaced by PathMark.
func (m *Maze) Render(path []gridgraph.Point) string {
	return m.grid.With(path, PathMark).String()
}
