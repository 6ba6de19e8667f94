// Package metrics provides the Prometheus collectors of the forecast service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the service
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Analysis outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeUserError = "user_error"
	OutcomeFailure   = "failure"
)

// AnalysesTotal counts analysis runs by outcome.
var AnalysesTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "forecast",
	Subsystem: "analysis",
	Name:      "runs_total",
	Help:      "Total analysis runs by outcome",
}, []string{"outcome"})

// StageDurationSeconds tracks the time spent in each pipeline stage.
var StageDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "forecast",
	Subsystem: "analysis",
	Name:      "stage_duration_seconds",
	Help:      "Time spent per pipeline stage",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
}, []string{"stage"})

// IntervalRowsRead tracks the interval rows of the last loaded file.
var IntervalRowsRead = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "forecast",
	Subsystem: "analysis",
	Name:      "interval_rows",
	Help:      "Interval rows read from the source file in the last run",
})

// ValidationScore holds the last validation metrics, labelled by metric name.
var ValidationScore = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "forecast",
	Subsystem: "validation",
	Name:      "score",
	Help:      "Validation score of the last successful run",
}, []string{"metric"})

// RunLogWriteFailuresTotal counts run summaries that could not be stored.
var RunLogWriteFailuresTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "forecast",
	Subsystem: "runlog",
	Name:      "write_failures_total",
	Help:      "Run summaries that could not be written to the run log",
})

// HTTPRequestsTotal counts HTTP requests by route template, method and status.
var HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "forecast",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests",
}, []string{"route", "method", "status"})

// HTTPRequestDurationSeconds tracks request latency by route template and method.
var HTTPRequestDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "forecast",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// ObserveValidation records the scores of a successful run.
func ObserveValidation(rmse, mae, r2 float64) {
	ValidationScore.WithLabelValues("rmse").Set(rmse)
	ValidationScore.WithLabelValues("mae").Set(mae)
	ValidationScore.WithLabelValues("r2").Set(r2)
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
