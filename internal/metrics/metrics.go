// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AssertionsTotal counts assertions evaluated.
	AssertionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "check_assertions_total",
			Help: "Total number of assertions evaluated",
		},
	)

	// AssertionsPassedTotal counts assertions that passed.
	AssertionsPassedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "check_assertions_passed_total",
			Help: "Total number of assertions that passed",
		},
	)

	// AssertionsFailedTotal counts assertions that failed.
	AssertionsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "check_assertions_failed_total",
			Help: "Total number of assertions that failed",
		},
	)

	// RunsTotal counts completed checker runs by outcome.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "check_runs_total",
			Help: "Total number of checker runs",
		},
		[]string{"outcome"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// PromRecorder forwards assertion outcomes to the Prometheus counters. It
// implements check.Recorder.
type PromRecorder struct{}

// RecordAssertion records one assertion outcome.
func (PromRecorder) RecordAssertion(passed bool) {
	AssertionsTotal.Inc()
	if passed {
		AssertionsPassedTotal.Inc()
	} else {
		AssertionsFailedTotal.Inc()
	}
}

// RecordRun records a completed checker run.
func RecordRun(outcome string) {
	RunsTotal.WithLabelValues(outcome).Inc()
}
