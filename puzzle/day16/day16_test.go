package day16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiPs7/AdventOfCode2023/puzzle/day16"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestPart1(t *testing.T) {
	got, err := day16.Solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPart2(t *testing.T) {
	got, err := day16.Solver{}.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestMirrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"straight", "...", 3},
		{"slash turns up and leaves", "./.", 2},
		{"backslash turns down", ".\\\n..", 3},
		{"splitters fan out", "|-\n--", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day16.Solver{}.Part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBadTile(t *testing.T) {
	_, err := day16.Solver{}.Part1("..x")
	assert.ErrorIs(t, err, day16.ErrBadTile)
}
