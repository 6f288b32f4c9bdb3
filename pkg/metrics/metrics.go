// Package metrics exposes Prometheus metrics for the scheduling engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

const namespace = "planit"

var (
	schedulingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduling",
		Name:      "requests_total",
		Help:      "Scheduling requests processed, labelled by outcome.",
	}, []string{"outcome"})

	suggestionsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduling",
		Name:      "suggestions_returned",
		Help:      "Number of suggestions returned per request.",
		Buckets:   []float64{0, 1, 2, 5, 10},
	})

	candidatesEvaluated = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduling",
		Name:      "candidates_evaluated",
		Help:      "Number of candidate slots evaluated per request.",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000},
	})

	skippedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduling",
		Name:      "skipped_records_total",
		Help:      "Commitment records dropped during collection.",
	})
)

// RecordSchedulingRequest records one completed scheduling request.
func RecordSchedulingRequest(outcome string, candidates, suggestions, skipped int) {
	schedulingRequests.WithLabelValues(outcome).Inc()
	candidatesEvaluated.Observe(float64(candidates))
	suggestionsReturned.Observe(float64(suggestions))
	skippedRecords.Add(float64(skipped))
}

// Handler returns the echo handler serving the Prometheus exposition format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
