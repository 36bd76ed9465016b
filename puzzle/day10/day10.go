// Package day10 solves "Pipe Maze": trace the closed pipe loop through the
// start tile, then measure it.
package day10

import (
	"errors"
	"fmt"

	"github.com/RiPs7/AdventOfCode2023/dfs"
	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/internal/mathx"
)

// ErrNoStart is returned when the input has no 'S' tile.
var ErrNoStart = errors.New("day10: no start tile")

// openings lists the headings each tile connects toward. 'S' connects
// everywhere; its real shape is implied by which neighbors connect back.
var openings = map[rune][]gridgraph.Direction{
	'|': {gridgraph.Up, gridgraph.Down},
	'-': {gridgraph.Left, gridgraph.Right},
	'L': {gridgraph.Up, gridgraph.Right},
	'J': {gridgraph.Up, gridgraph.Left},
	'7': {gridgraph.Down, gridgraph.Left},
	'F': {gridgraph.Down, gridgraph.Right},
	'S': gridgraph.Directions[:],
}

func opens(tile rune, d gridgraph.Direction) bool {
	for _, o := range openings[tile] {
		if o == d {
			return true
		}
	}
	return false
}

// Solver implements puzzle.Solver for day 10.
type Solver struct{}

// Part1 returns the number of steps to the point of the loop farthest from
// the start.
func (Solver) Part1(input string) (int, error) {
	loop, err := findLoop(input)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Part2 returns the number of tiles enclosed by the loop.
func (Solver) Part2(input string) (int, error) {
	loop, err := findLoop(input)
	if err != nil {
		return 0, err
	}
	// drop the closing repeat of the start tile
	vertices := loop[:len(loop)-1]
	area2 := mathx.ShoelaceArea2(vertices)

	return mathx.InteriorPoints(area2, len(vertices)), nil
}

// findLoop returns the loop as S, ..., S.
func findLoop(input string) ([]gridgraph.Point, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("day10: %w", err)
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrNoStart
	}

	connected := func(p gridgraph.Point) []gridgraph.Point {
		out := make([]gridgraph.Point, 0, 2)
		for _, d := range gridgraph.Directions {
			if !opens(g.At(p), d) {
				continue
			}
			if q := p.Move(d); opens(g.At(q), d.Opposite()) {
				out = append(out, q)
			}
		}
		return out
	}

	loop, err := dfs.Search(start, start, connected, dfs.WithStartAsEnd())
	if err != nil {
		return nil, fmt.Errorf("day10: no loop through %v: %w", start, err)
	}

	return loop, nil
}
