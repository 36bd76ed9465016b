package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RiPs7/AdventOfCode2023/config"
	"github.com/RiPs7/AdventOfCode2023/puzzle/maze"
)

var (
	configPath string
	inputsDir  string
	logLevel   string
	metrics    bool
	parallel   bool
	mazeAlgo   string

	// cfg is the loaded configuration with flag overrides applied.
	cfg    = config.DefaultConfig()
	logger = slog.New(slog.DiscardHandler)

	rootCmd = &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2023 solvers built on generic graph search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Metrics {
				return nil
			}
			return dumpMetrics(cmd.OutOrStdout())
		},
	}

	runCmd = &cobra.Command{
		Use:   "run [days...]",
		Short: "Solve the given days (default: configured or all registered days)",
		RunE:  runDays,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	mazeCmd = &cobra.Command{
		Use:   "maze",
		Short: "Solve and render the reference maze",
		Args:  cobra.NoArgs,
		RunE:  runMaze,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.yaml", "YAML configuration file (missing file means defaults)")
	rootCmd.PersistentFlags().StringVar(&inputsDir, "inputs", "", "Directory with dayNN/input or dayNN.txt files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&metrics, "metrics", false, "Print collected metrics after the command")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "Solve days concurrently")

	rootCmd.AddCommand(mazeCmd)
	mazeCmd.Flags().StringVar(&mazeAlgo, "algo", "", "Search engine: bfs, dfs, astar or dijkstra (default: all)")

	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies explicitly set flags and installs
// the logger.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("inputs") {
		loaded.InputsDir = inputsDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("metrics") {
		loaded.Metrics = metrics
	}
	if flags.Changed("parallel") {
		loaded.Parallel = parallel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	lvl, err := loaded.Level()
	if err != nil {
		return err
	}

	cfg = loaded
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	return nil
}

// algorithms resolves the --algo flag.
func algorithms() []maze.Algorithm {
	if mazeAlgo == "" {
		return maze.Algorithms
	}
	return []maze.Algorithm{maze.Algorithm(mazeAlgo)}
}
