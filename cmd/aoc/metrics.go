package main

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// metricPrefix selects this program's collectors out of the default registry.
const metricPrefix = "aoc_"

// dumpMetrics writes the aoc_* families from g in the Prometheus text format.
func dumpMetrics(w io.Writer) error {
	return writeMetrics(w, prometheus.DefaultGatherer)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
