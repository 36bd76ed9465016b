package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RiPs7/AdventOfCode2023/puzzle"
)

// errNoInput is returned when neither input layout exists for a day.
var errNoInput = errors.New("no input file")

func runDays(cmd *cobra.Command, args []string) error {
	reg := solvers()
	days, err := selectDays(reg, args, cfg.Days)
	if err != nil {
		return err
	}

	results := make([]puzzle.Result, len(days))
	solve := func(ctx context.Context, i int) error {
		day := days[i]
		s, err := reg.Lookup(day)
		if err != nil {
			return err
		}
		input, err := loadInput(cfg.InputsDir, day)
		if err != nil {
			return err
		}
		results[i], err = puzzle.Run(ctx, day, s, input)
		return err
	}

	if cfg.Parallel {
		eg, ctx := errgroup.WithContext(cmd.Context())
		for i := range days {
			eg.Go(func() error { return solve(ctx, i) })
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	} else {
		for i := range days {
			if err := solve(cmd.Context(), i); err != nil {
				return err
			}
		}
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if err := printResult(out, res); err != nil {
			return err
		}
	}

	return nil
}

// selectDays picks the days to run: arguments first, then configured days,
// then every registered day.
func selectDays(reg *puzzle.Registry, args []string, configured []int) ([]int, error) {
	if len(args) == 0 {
		if len(configured) > 0 {
			return configured, nil
		}
		return reg.Days(), nil
	}
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("day %q: %w", a, err)
		}
		if _, err := reg.Lookup(d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, nil
}

// loadInput reads <dir>/dayNN/input, falling back to <dir>/dayNN.txt.
func loadInput(dir string, day int) (string, error) {
	name := fmt.Sprintf("day%02d", day)
	candidates := []string{
		filepath.Join(dir, name, "input"),
		filepath.Join(dir, name+".txt"),
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		logger.Debug("input loaded", "day", day, "path", path, "bytes", len(data))
		return string(data), nil
	}

	return "", fmt.Errorf("%w for day %d in %s", errNoInput, day, dir)
}

func printResult(w io.Writer, res puzzle.Result) error {
	_, err := fmt.Fprintf(w, "%s\nPart 1: %s %s\nPart 2: %s %s\n%s\n",
		headerStyle.Render(fmt.Sprintf("----- Day%d -----", res.Day)),
		answerStyle.Render(strconv.Itoa(res.Part1)), timingStyle.Render("("+res.Elapsed1.String()+")"),
		answerStyle.Render(strconv.Itoa(res.Part2)), timingStyle.Render("("+res.Elapsed2.String()+")"),
		headerStyle.Render("----------------"),
	)
	return err
}
