package day12_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiPs7/AdventOfCode2023/puzzle/day12"
)

const sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestPart1(t *testing.T) {
	got, err := day12.Solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := day12.Solver{}.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 525152, got)
}

func TestPerRecord(t *testing.T) {
	want1 := []int{1, 4, 1, 1, 4, 10}
	want2 := []int{1, 16384, 1, 16, 2500, 506250}
	for i, line := range strings.Split(strings.TrimSpace(sample), "\n") {
		got, err := day12.Solver{}.Part1(line)
		require.NoError(t, err)
		assert.Equal(t, want1[i], got, line)

		got, err = day12.Solver{}.Part2(line)
		require.NoError(t, err)
		assert.Equal(t, want2[i], got, line)
	}
}

func TestBadRecords(t *testing.T) {
	for _, in := range []string{"???", "??x 1", "?? 1,a", "?? 0", " 1,2"} {
		_, err := day12.Solver{}.Part1(in)
		assert.ErrorIs(t, err, day12.ErrBadRecord, in)
	}
}
