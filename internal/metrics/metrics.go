package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for repository operations.
const (
	OutcomeOK           = "ok"
	OutcomeValidation   = "validation"
	OutcomeConstraint   = "constraint"
	OutcomeNotFound     = "not_found"
	OutcomeConnectivity = "connectivity"
	OutcomeNoChanges    = "no_changes"
	OutcomeError        = "error"
)

// MetricsRegistry holds all Prometheus metrics for the bookings service
type MetricsRegistry struct {
	Gatherer prometheus.Gatherer

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Repository Metrics
	RepoOperationsTotal   *prometheus.CounterVec
	RepoOperationDuration *prometheus.HistogramVec

	// Import Metrics
	AirportsImportedTotal *prometheus.CounterVec
}

// NewMetricsRegistry registers the collectors on a fresh registry that also
// carries the Go runtime and process collectors.
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := NewMetricsRegistryWith(reg)
	m.Gatherer = reg
	return m
}

// NewMetricsRegistryWith registers every collector on reg.
func NewMetricsRegistryWith(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)
	m := &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookings_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bookings_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		RepoOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_repository_operations_total",
				Help: "Repository operations by repository, operation and outcome",
			},
			[]string{"repository", "operation", "outcome"},
		),
		RepoOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookings_repository_operation_duration_seconds",
				Help:    "Repository operation execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"repository", "operation"},
		),

		AirportsImportedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_airports_imported_total",
				Help: "Airport records processed by the importer",
			},
			[]string{"result"},
		),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.Gatherer = g
	}
	return m
}

// ObserveRepo records one repository call. A nil registry is a no-op.
func (m *MetricsRegistry) ObserveRepo(repository, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RepoOperationsTotal.WithLabelValues(repository, operation, outcome).Inc()
	m.RepoOperationDuration.WithLabelValues(repository, operation).Observe(elapsed.Seconds())
}
