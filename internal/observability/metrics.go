// Package observability provides Prometheus metrics for the HTTP server
// and the startup consistency pass.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
)

// MetricsProvider manages the Prometheus registry and common metrics
type MetricsProvider struct {
	registry *prometheus.Registry
	handler  http.Handler
	logger   *zap.Logger

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bootstrapState      *prometheus.GaugeVec
	uploadsTotal        *prometheus.CounterVec
}

// NewMetricsProvider creates a new metrics provider with its own registry
func NewMetricsProvider(logger *zap.Logger) *MetricsProvider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mp := &MetricsProvider{
		registry: registry,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logger:   logger,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bootstrapState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bootstrap_state",
				Help: "Startup consistency pass outcome, 1 for the active state",
			},
			[]string{"state"},
		),
		uploadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logo_uploads_total",
				Help: "Total number of logo upload attempts",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		mp.httpRequestsTotal,
		mp.httpRequestDuration,
		mp.bootstrapState,
		mp.uploadsTotal,
	)

	return mp
}

// RecordHTTPRequest records an HTTP request metric
func (mp *MetricsProvider) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	mp.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	mp.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetBootstrapState publishes the startup outcome. Exactly one state label
// carries the value 1.
func (mp *MetricsProvider) SetBootstrapState(state bootstrap.State) {
	for _, s := range []bootstrap.State{bootstrap.StateReady, bootstrap.StateReadyDegraded, bootstrap.StateFatal} {
		value := 0.0
		if s == state {
			value = 1.0
		}
		mp.bootstrapState.WithLabelValues(string(s)).Set(value)
	}
}

// RecordUpload records a logo upload attempt
func (mp *MetricsProvider) RecordUpload(success bool) {
	result := "ok"
	if !success {
		result = "error"
	}
	mp.uploadsTotal.WithLabelValues(result).Inc()
}

// Handler returns the HTTP handler for the metrics endpoint
func (mp *MetricsProvider) Handler() http.Handler {
	return mp.handler
}

// Registry exposes the underlying registry for tests
func (mp *MetricsProvider) Registry() *prometheus.Registry {
	return mp.registry
}
