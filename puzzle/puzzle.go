// Package puzzle defines the two-part solver contract shared by every day,
// a registry of solvers keyed by day number and a timed runner.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/exp/maps"

	"github.com/RiPs7/AdventOfCode2023/internal/telemetry"
)

var (
	// ErrBadDay indicates a day number outside 1..25.
	ErrBadDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrDuplicateDay indicates a second solver registered for one day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates a lookup for a day with no solver.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
)

// Solver answers both parts of one day from the raw puzzle input.
type Solver interface {
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Registry maps day numbers to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s as the solver for day.
func (r *Registry) Register(day int, s Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// Lookup returns the solver registered for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	days := maps.Keys(r.solvers)
	r.mu.RUnlock()
	slices.Sort(days)

	return days
}

// Result holds both answers of one day and the time each part took.
type Result struct {
	Day      int
	Part1    int
	Part2    int
	Elapsed1 time.Duration
	Elapsed2 time.Duration
}

// Run solves both parts of day in order, timing each and recording the
// durations in telemetry. ctx is checked before each part; a running part is
// not interrupted.
func Run(ctx context.Context, day int, s Solver, input string) (Result, error) {
	res := Result{Day: day}
	parts := []struct {
		name    string
		solve   func(string) (int, error)
		answer  *int
		elapsed *time.Duration
	}{
		{"1", s.Part1, &res.Part1, &res.Elapsed1},
		{"2", s.Part2, &res.Part2, &res.Elapsed2},
	}
	label := fmt.Sprintf("%02d", day)

	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		began := time.Now()
		answer, err := p.solve(input)
		took := time.Since(began)
		if err != nil {
			return res, fmt.Errorf("day %s part %s: %w", label, p.name, err)
		}
		*p.answer, *p.elapsed = answer, took
		telemetry.ObservePuzzle(label, p.name, took)
		slog.DebugContext(ctx, "part solved",
			slog.Int("day", day),
			slog.String("part", p.name),
			slog.Int("answer", answer),
			slog.Duration("elapsed", took),
		)
	}

	return res, nil
}
