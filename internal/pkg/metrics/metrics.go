// Package metrics exposes Prometheus counters for the sync and ingest paths.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncRuns counts sync runs by terminal outcome (fresh, cache, empty).
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heim",
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Sync runs by terminal outcome.",
	}, []string{"outcome"})

	// RowsImported counts normalized rows emitted per source.
	RowsImported = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heim",
		Subsystem: "ingest",
		Name:      "rows_imported_total",
		Help:      "Rows successfully normalized, by source.",
	}, []string{"source"})

	// RowsSkipped counts rows dropped during normalization per source.
	RowsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heim",
		Subsystem: "ingest",
		Name:      "rows_skipped_total",
		Help:      "Rows dropped during normalization, by source.",
	}, []string{"source"})
)

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
