// Package day16 solves "The Floor Will Be Lava": follow a light beam through
// mirrors and splitters and count the tiles it energizes.
package day16

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/RiPs7/AdventOfCode2023/dfs"
	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// ErrBadTile is returned for characters other than . / \ | -.
var ErrBadTile = errors.New("day16: unknown tile")

// beam is a search value: the tile a beam occupies and where it heads next.
// Starting beams sit just off the grid.
type beam struct {
	pos gridgraph.Point
	dir gridgraph.Direction
}

// nowhere is never produced by the beam callback, so a search toward it
// explores every reachable beam state.
var nowhere = beam{pos: gridgraph.Pt(-1, -1)}

// Solver implements puzzle.Solver for day 16.
type Solver struct{}

// Part1 counts energized tiles for a beam entering the top-left tile heading
// right.
func (Solver) Part1(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return energize(g, beam{pos: gridgraph.Pt(-1, 0), dir: gridgraph.Right})
}

// Part2 returns the best energized count over every edge entry, evaluated
// concurrently.
func (Solver) Part2(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}

	starts := entries(g)
	counts := make([]int, len(starts))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range starts {
		eg.Go(func() error {
			n, err := energize(g, s)
			counts[i] = n
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	best := 0
	for _, n := range counts {
		best = max(best, n)
	}

	return best, nil
}

func parse(input string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("day16: %w", err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch r := g.At(gridgraph.Pt(x, y)); r {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadTile, r, x, y)
			}
		}
	}

	return g, nil
}

// entries lists one off-grid beam per edge tile, pointing inward.
func entries(g *gridgraph.Grid) []beam {
	out := make([]beam, 0, 2*(g.Width+g.Height))
	for x := 0; x < g.Width; x++ {
		out = append(out,
			beam{gridgraph.Pt(x, -1), gridgraph.Down},
			beam{gridgraph.Pt(x, g.Height), gridgraph.Up})
	}
	for y := 0; y < g.Height; y++ {
		out = append(out,
			beam{gridgraph.Pt(-1, y), gridgraph.Right},
			beam{gridgraph.Pt(g.Width, y), gridgraph.Left})
	}

	return out
}

// energize runs one beam to exhaustion and counts the tiles it touched.
// The energized set is owned by this call.
func energize(g *gridgraph.Grid, start beam) (int, error) {
	energized := make(map[gridgraph.Point]struct{})
	next := func(b beam) []beam {
		if g.InBounds(b.pos) {
			energized[b.pos] = struct{}{}
		}
		pos := b.pos.Move(b.dir)
		if !g.InBounds(pos) {
			return nil
		}
		dirs := deflect(g.At(pos), b.dir)
		out := make([]beam, len(dirs))
		for i, d := range dirs {
			out[i] = beam{pos: pos, dir: d}
		}
		return out
	}

	_, err := dfs.Search(start, nowhere, next)
	if !errors.Is(err, pathfind.ErrGoalUnreachable) {
		return 0, fmt.Errorf("day16: beam search: %w", err)
	}

	return len(energized), nil
}

// deflect returns the outgoing headings of a beam entering tile heading d.
func deflect(tile rune, d gridgraph.Direction) []gridgraph.Direction {
	horizontal := d == gridgraph.Left || d == gridgraph.Right
	switch tile {
	case '/':
		// right↔up, down↔left
		if horizontal {
			return []gridgraph.Direction{d.TurnLeft()}
		}
		return []gridgraph.Direction{d.TurnRight()}
	case '\\':
		if horizontal {
			return []gridgraph.Direction{d.TurnRight()}
		}
		return []gridgraph.Direction{d.TurnLeft()}
	case '|':
		if horizontal {
			return []gridgraph.Direction{gridgraph.Up, gridgraph.Down}
		}
	case '-':
		if !horizontal {
			return []gridgraph.Direction{gridgraph.Left, gridgraph.Right}
		}
	}

	return []gridgraph.Direction{d}
}
