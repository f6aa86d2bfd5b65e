package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store operation labels.
const (
	OpInsert    = "insert"
	OpSummarize = "summarize"
	OpList      = "list"
)

// Metrics holds all Prometheus metrics for the work log. Each instance owns
// its registry so several can coexist in one process.
type Metrics struct {
	registry           *prometheus.Registry
	entriesLogged      prometheus.Counter
	hoursLogged        prometheus.Counter
	validationFailures *prometheus.CounterVec
	storeErrors        *prometheus.CounterVec
	storeLatency       *prometheus.HistogramVec
	exports            *prometheus.CounterVec
}

// NewMetrics creates and registers all work log metrics
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		entriesLogged: factory.NewCounter(prometheus.CounterOpts{
			Name: "worklog_entries_logged_total",
			Help: "Total number of work entries stored",
		}),
		hoursLogged: factory.NewCounter(prometheus.CounterOpts{
			Name: "worklog_hours_logged_total",
			Help: "Sum of hours across stored work entries",
		}),
		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worklog_validation_failures_total",
			Help: "Rejected work entry submissions by failed rule",
		}, []string{"reason"}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worklog_store_errors_total",
			Help: "Failed store operations",
		}, []string{"operation"}),
		storeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worklog_store_latency_ms",
			Help:    "Latency of store operations in milliseconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		}, []string{"operation"}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worklog_exports_total",
			Help: "Work log exports by destination and result",
		}, []string{"destination", "result"}),
	}
}

// RecordEntryLogged counts one stored entry and its hours.
func (m *Metrics) RecordEntryLogged(hours float64) {
	m.entriesLogged.Inc()
	m.hoursLogged.Add(hours)
}

// RecordValidationFailure counts a rejected submission.
func (m *Metrics) RecordValidationFailure(reason string) {
	m.validationFailures.WithLabelValues(reason).Inc()
}

// ObserveStore records the latency and outcome of one store operation.
func (m *Metrics) ObserveStore(operation string, started time.Time, err error) {
	m.storeLatency.WithLabelValues(operation).Observe(float64(time.Since(started).Microseconds()) / 1000.0)
	if err != nil {
		m.storeErrors.WithLabelValues(operation).Inc()
	}
}

// RecordExport counts an export attempt.
func (m *Metrics) RecordExport(destination string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(destination, result).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
