// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics holds the Prometheus instruments for catalog loading and
// configuration generation. A CLI run has no scrape endpoint, so the
// registry is dumped in textfile-collector format on request.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes.
const (
	ResultSuccess    = "success"
	ResultValidation = "validation_error"
	ResultFailure    = "failure"
)

var (
	catalogEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hwgen_catalog_entries",
		Help: "Number of fragments in the component library (last scan)",
	})

	catalogScanErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hwgen_catalog_scan_errors_total",
		Help: "Total number of failed component library scans",
	})

	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hwgen_generations_total",
		Help: "Configuration generation attempts by result",
	}, []string{"result"}) // result=success|validation_error|failure

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hwgen_generation_duration_seconds",
		Help:    "Time spent composing and writing one configuration file",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	fragmentsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hwgen_fragments_written_total",
		Help: "Total number of fragments written to output files",
	})

	rowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hwgen_rows_skipped_total",
		Help: "Total number of selection rows skipped because their fragment was not found",
	})
)

// SetCatalogEntries records the size of the last catalog scan.
func SetCatalogEntries(n int) {
	catalogEntries.Set(float64(n))
}

// IncCatalogScanError counts a failed scan.
func IncCatalogScanError() {
	catalogScanErrors.Inc()
}

// RecordGeneration counts one generation attempt and, for attempts that
// reached the filesystem, its duration.
func RecordGeneration(result string, d time.Duration) {
	generationsTotal.WithLabelValues(result).Inc()
	if result != ResultValidation {
		generationDuration.Observe(d.Seconds())
	}
}

// AddFragmentsWritten adds n written fragments.
func AddFragmentsWritten(n int) {
	if n > 0 {
		fragmentsWritten.Add(float64(n))
	}
}

// AddRowsSkipped adds n skipped selection rows.
func AddRowsSkipped(n int) {
	if n > 0 {
		rowsSkipped.Add(float64(n))
	}
}
