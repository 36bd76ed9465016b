// Package day12 solves "Hot Springs": count the ways unknown springs can be
// filled in so that the runs of damaged springs match each record's groups.
package day12

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrBadRecord is returned for a line that is not "<springs> <n,n,...>".
var ErrBadRecord = errors.New("day12: malformed record")

const (
	operational = '.'
	damaged     = '#'
	unknown     = '?'
	foldTimes   = 5
)

// Solver implements puzzle.Solver for day 12.
type Solver struct{}

// Part1 sums the arrangement counts of every record.
func (Solver) Part1(input string) (int, error) {
	return total(input, 1)
}

// Part2 sums the arrangement counts after unfolding every record five times.
func (Solver) Part2(input string) (int, error) {
	return total(input, foldTimes)
}

// record is one parsed input line.
type record struct {
	springs string
	groups  []int
}

func total(input string, fold int) (int, error) {
	records, err := parse(input)
	if err != nil {
		return 0, err
	}

	var sum atomic.Int64
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, r := range records {
		r := r.unfold(fold)
		eg.Go(func() error {
			sum.Add(int64(r.arrangements()))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return int(sum.Load()), nil
}

func parse(input string) ([]record, error) {
	var out []record
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		springs, sizes, ok := strings.Cut(line, " ")
		if !ok || springs == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRecord, i+1, line)
		}
		if strings.Trim(springs, ".#?") != "" {
			return nil, fmt.Errorf("%w: line %d: unknown spring in %q", ErrBadRecord, i+1, springs)
		}
		var groups []int
		for _, f := range strings.Split(sizes, ",") {
			n, err := strconv.Atoi(f)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: line %d: group %q", ErrBadRecord, i+1, f)
			}
			groups = append(groups, n)
		}
		out = append(out, record{springs: springs, groups: groups})
	}

	return out, nil
}

// unfold repeats the springs n times joined by '?' and the groups n times.
func (r record) unfold(n int) record {
	springs := make([]string, n)
	groups := make([]int, 0, n*len(r.groups))
	for i := range springs {
		springs[i] = r.springs
		groups = append(groups, r.groups...)
	}

	return record{springs: strings.Join(springs, string(unknown)), groups: groups}
}

// state is a memo key: the next spring to place and the next group to match.
type state struct {
	spring, group int
}

// counter holds the memo table for one record.
type counter struct {
	record
	memo map[state]int
}

func (r record) arrangements() int {
	c := &counter{record: r, memo: make(map[state]int)}
	return c.count(state{})
}

func (c *counter) count(s state) int {
	if s.spring >= len(c.springs) {
		if s.group == len(c.groups) {
			return 1
		}
		return 0
	}
	if s.group == len(c.groups) {
		if strings.IndexByte(c.springs[s.spring:], damaged) >= 0 {
			return 0
		}
		return 1
	}
	if n, ok := c.memo[s]; ok {
		return n
	}

	n := 0
	head := c.springs[s.spring]
	if head == operational || head == unknown {
		n += c.count(state{s.spring + 1, s.group})
	}
	if head == damaged || head == unknown {
		size := c.groups[s.group]
		end := s.spring + size
		if end <= len(c.springs) &&
			strings.IndexByte(c.springs[s.spring:end], operational) < 0 &&
			(end == len(c.springs) || c.springs[end] != damaged) {
			// skip the separator after the run as well
			n += c.count(state{end + 1, s.group + 1})
		}
	}
	c.memo[s] = n

	return n
}
