// Package config loads the runner configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadLogLevel indicates a log level slog does not know.
	ErrBadLogLevel = errors.New("config: unknown log level")
	// ErrBadDay indicates a day outside 1..25.
	ErrBadDay = errors.New("config: day must be between 1 and 25")
)

// Config drives the aoc command. Command-line flags override file values.
type Config struct {
	// InputsDir holds one input per day, as dayNN/input or dayNN.txt.
	InputsDir string `yaml:"inputs_dir"`
	// Days restricts the run; empty means every registered day.
	Days []int `yaml:"days"`
	// Parallel solves days concurrently.
	Parallel bool `yaml:"parallel"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Metrics dumps the collected Prometheus families after a run.
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		InputsDir: "inputs",
		LogLevel:  "info",
	}
}

// Load reads path over DefaultConfig. A missing file yields the defaults;
// an empty path does too.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the log level and day numbers.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return fmt.Errorf("%w: %d", ErrBadDay, d)
		}
	}

	return nil
}

// Level converts LogLevel to a slog.Level. Empty means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return lvl, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
