package day17_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiPs7/AdventOfCode2023/gridgraph"
	"github.com/RiPs7/AdventOfCode2023/pathfind"
	"github.com/RiPs7/AdventOfCode2023/puzzle/day17"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const ribbon = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func TestPart1(t *testing.T) {
	got, err := day17.Solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 102, got)
}

func TestPart2(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"sample", sample, 94},
		{"ribbon", ribbon, 71},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day17.Solver{}.Part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSingleBlock(t *testing.T) {
	got, err := day17.Solver{}.Part1("7")
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestUltraCannotStopEarly: a 1×3 strip is too short for four blocks in a row.
func TestUltraCannotStopEarly(t *testing.T) {
	_, err := day17.Solver{}.Part2("111")
	assert.ErrorIs(t, err, pathfind.ErrGoalUnreachable)
}

func TestBadInput(t *testing.T) {
	_, err := day17.Solver{}.Part1("12\n3x")
	assert.ErrorIs(t, err, gridgraph.ErrNotDigit)
}
