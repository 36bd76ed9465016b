package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RiPs7/AdventOfCode2023/puzzle/maze"
)

func runMaze(cmd *cobra.Command, _ []string) error {
	m, err := maze.Reference()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, algo := range algorithms() {
		path, err := m.Solve(algo, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", algo, err)
		}
		fmt.Fprintf(out, "%s %s\n%s\n",
			headerStyle.Render(string(algo)),
			answerStyle.Render(fmt.Sprintf("%d steps", len(path)-1)),
			colorizeMaze(m.Render(path)),
		)
	}

	return nil
}
