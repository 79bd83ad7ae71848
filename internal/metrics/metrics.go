// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var RequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var AggregationRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aggregation_runs_total",
		Help: "How many aggregation runs finished, partitioned by result.",
	},
	[]string{"result"},
)

var AggregationDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "aggregation_duration_seconds",
		Help: "The duration of aggregation runs in seconds.",
	},
)

var AggregatedTransactions = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "aggregated_transactions_total",
		Help: "How many transactions have been folded into monthly summaries.",
	},
)

var ImportRows = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "import_rows_total",
		Help: "How many imported rows were processed, partitioned by result.",
	},
	[]string{"result"},
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	AggregationRuns,
	AggregationDuration,
	AggregatedTransactions,
	ImportRows,
}

// Register registers all collectors with the default registry.
//
// Collectors that are already registered are skipped.
func Register() error {
	for _, c := range collectors {
		err := prometheus.Register(c)

		var are prometheus.AlreadyRegisteredError
		if err != nil && !errors.As(err, &are) {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all collectors.
//
// This is needed to cleanly exit.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}
