package main

import (
	"github.com/RiPs7/AdventOfCode2023/puzzle"
	"github.com/RiPs7/AdventOfCode2023/puzzle/day10"
	"github.com/RiPs7/AdventOfCode2023/puzzle/day12"
	"github.com/RiPs7/AdventOfCode2023/puzzle/day16"
	"github.com/RiPs7/AdventOfCode2023/puzzle/day17"
)

// solvers returns a registry holding every implemented day.
func solvers() *puzzle.Registry {
	r := puzzle.NewRegistry()
	for day, s := range map[int]puzzle.Solver{
		10: day10.Solver{},
		12: day12.Solver{},
		16: day16.Solver{},
		17: day17.Solver{},
	} {
		if err := r.Register(day, s); err != nil {
			panic(err)
		}
	}

	return r
}
