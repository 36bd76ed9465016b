// Package gridgraph provides utilities to treat a rectangular text grid as
// an implicit graph whose vertices are Points. It supports:
//
//   - Parsing puzzle input into a Grid (Parse, ParseDigits)
//   - Bounds-checked cell access and lookup (InBounds, At, Find)
//   - Orthogonal neighbor enumeration in a fixed order (Neighbors4)
//   - Conversion to a *core.Graph for literal-graph tooling (ToCoreGraph)
//   - Overlays for rendering paths (With, String)
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/RiPs7/AdventOfCode2023/core"
)

// Parse builds a Grid from newline-separated rows. A trailing newline and
// CR line endings are tolerated.
// Returns ErrEmptyGrid if there is no row or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func Parse(input string) (*Grid, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(input, "\n")
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
	}
	w := len(cells[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	return &Grid{Width: w, Height: len(cells), cells: cells}, nil
}

// ParseDigits is Parse followed by a check that every cell is 0-9.
// Read values back with Digit.
func ParseDigits(input string) (*Grid, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	for y, row := range g.cells {
		for x, r := range row {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q at %v", ErrNotDigit, r, Pt(x, y))
			}
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune at p, or Outside if p is off the grid.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return Outside
	}
	return g.cells[p.Y][p.X]
}

// Digit returns the numeric value of the digit at p, or -1 off the grid.
func (g *Grid) Digit(p Point) int {
	r := g.At(p)
	if r < '0' || r > '9' {
		return -1
	}
	return int(r - '0')
}

// Find returns the first cell holding r in row-major order.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == r {
				return Pt(x, y), true
			}
		}
	}

	return Point{}, false
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p in Directions
// order (up, right, down, left).
func (g *Grid) Neighbors4(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		if q := p.Move(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Corners returns the top-left and bottom-right cells.
func (g *Grid) Corners() (Point, Point) {
	return Pt(0, 0), Pt(g.Width-1, g.Height-1)
}

// With returns a copy of g with every point in overlay set to r.
// Points off the grid are ignored.
func (g *Grid) With(overlay []Point, r rune) *Grid {
	cells := make([][]rune, g.Height)
	for y := range g.cells {
		cells[y] = append([]rune(nil), g.cells[y]...)
	}
	for _, p := range overlay {
		if g.InBounds(p) {
			cells[p.Y][p.X] = r
		}
	}

	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// String renders the grid row by row, newline-terminated.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for _, row := range g.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// VertexID formats the core.Graph vertex identifier for p.
func VertexID(p Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ToCoreGraph converts the cells accepted by open into an undirected,
// unweighted *core.Graph. Each open cell becomes a vertex VertexID(p) and
// orthogonally adjacent open cells are joined by an edge.
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph(open func(rune) bool) *core.Graph {
	cg := core.NewGraph()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Pt(x, y)
			if !open(g.At(p)) {
				continue
			}
			_ = cg.AddVertex(VertexID(p))
			// link to the right and downward so each pair is added once
			for _, d := range [2]Direction{Right, Down} {
				if q := p.Move(d); g.InBounds(q) && open(g.At(q)) {
					_ = cg.AddEdge(VertexID(p), VertexID(q), 0)
				}
			}
		}
	}

	return cg
}
