// Package day17 solves "Clumsy Crucible": the cheapest route across a
// heat-loss grid for a crucible that must turn within a bounded run length.
package day17

import (
	"fmt"

	"github.com/RiPs7/AdventOfCode2023/dijkstra"
	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// crucible bounds how many consecutive blocks it moves in one direction.
// It may turn (or stop) only after minRun blocks and must turn after maxRun.
type crucible struct {
	minRun, maxRun int
}

var (
	regular = crucible{minRun: 0, maxRun: 3}
	ultra   = crucible{minRun: 4, maxRun: 10}
)

// state is a search value. run counts the blocks moved so far in dir;
// run == 0 marks the starting block, where no direction is set yet.
type state struct {
	pos gridgraph.Point
	dir gridgraph.Direction
	run int
}

// Solver implements puzzle.Solver for day 17.
type Solver struct{}

// Part1 returns the least heat loss for a regular crucible.
func (Solver) Part1(input string) (int, error) {
	return leastHeatLoss(input, regular)
}

// Part2 returns the least heat loss for an ultra crucible.
func (Solver) Part2(input string) (int, error) {
	return leastHeatLoss(input, ultra)
}

func leastHeatLoss(input string, c crucible) (int, error) {
	g, err := gridgraph.ParseDigits(input)
	if err != nil {
		return 0, fmt.Errorf("day17: %w", err)
	}
	start, goal := g.Corners()

	atGoal := func(s state) bool { return s.pos == goal && s.run >= c.minRun }
	_, loss, err := dijkstra.Search(state{pos: start}, atGoal, func(s state, _ int) []pathfind.Edge[state, int] {
		return c.moves(g, s)
	})
	if err != nil {
		return 0, fmt.Errorf("day17: %w", err)
	}

	return loss, nil
}

// moves lists the legal next states from s, weighted by the heat loss of
// the block entered.
func (c crucible) moves(g *gridgraph.Grid, s state) []pathfind.Edge[state, int] {
	out := make([]pathfind.Edge[state, int], 0, 3)
	step := func(d gridgraph.Direction, run int) {
		next := s.pos.Move(d)
		if !g.InBounds(next) {
			return
		}
		out = append(out, pathfind.Edge[state, int]{
			To:   state{pos: next, dir: d, run: run},
			Cost: g.Digit(next),
		})
	}

	if s.run == 0 {
		for _, d := range gridgraph.Directions {
			step(d, 1)
		}
		return out
	}
	if s.run < c.maxRun {
		step(s.dir, s.run+1)
	}
	if s.run >= c.minRun {
		step(s.dir.TurnLeft(), 1)
		step(s.dir.TurnRight(), 1)
	}

	return out
}
