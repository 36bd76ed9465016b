// Package telemetry holds the Prometheus collectors and slog helpers shared
// by the search packages and the puzzle runner.
package telemetry

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for SearchRuns.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
)

var (
	// SearchRuns counts completed searches by algorithm and outcome.
	SearchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoc_search_runs_total",
		Help: "Completed graph searches by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	// ExpandedNodes observes how many values a search expanded.
	ExpandedNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aoc_search_expanded_nodes",
		Help:    "Node values expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"algorithm"})

	// PuzzleDuration observes wall time per puzzle part.
	PuzzleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aoc_puzzle_duration_seconds",
		Help:    "Wall time spent solving one puzzle part",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"day", "part"})
)

// SearchStats summarizes one search run.
type SearchStats struct {
	Algorithm    string
	Expanded     int
	FrontierPeak int
	PathLen      int
	Found        bool
}

// Record reports a finished search to the collectors and, at debug level,
// to logger.
func Record(logger *slog.Logger, s SearchStats) {
	outcome := OutcomeUnreachable
	if s.Found {
		outcome = OutcomeFound
	}
	SearchRuns.WithLabelValues(s.Algorithm, outcome).Inc()
	ExpandedNodes.WithLabelValues(s.Algorithm).Observe(float64(s.Expanded))

	Logger(logger).Debug("search finished",
		slog.String("algorithm", s.Algorithm),
		slog.String("outcome", outcome),
		slog.Int("expanded", s.Expanded),
		slog.Int("frontier_peak", s.FrontierPeak),
		slog.Int("path_len", s.PathLen),
	)
}

// ObservePuzzle records the duration of one puzzle part.
func ObservePuzzle(day, part string, d time.Duration) {
	PuzzleDuration.WithLabelValues(day, part).Observe(d.Seconds())
}

// Logger returns l, or slog.Default() when l is nil.
func Logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}

	return l
}
