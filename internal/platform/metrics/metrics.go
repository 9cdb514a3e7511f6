// Package metrics exposes Prometheus collectors for generation attempts,
// safety reprompts, generator fallbacks and HTTP requests.
package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "seogen"

// PrometheusMetrics implements generation.Recorder and records HTTP traffic.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	reprompts prometheus.Counter
	fallbacks *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	handler http.Handler
}

// New creates collectors on a dedicated registry that also carries the Go
// runtime and process collectors.
func New(logger *slog.Logger) *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(Namespace, registry, logger)
}

// NewWithRegistry creates collectors registered on registry.
func NewWithRegistry(namespace string, registry *prometheus.Registry, logger *slog.Logger) *PrometheusMetrics {
	pm := &PrometheusMetrics{}

	// Generation metrics
	pm.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generation",
		Name:      "attempts_total",
		Help:      "Backend calls by outcome",
	}, []string{"outcome"}) // outcome: success, invalid, error

	pm.reprompts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generation",
		Name:      "reprompts_total",
		Help:      "Safe rewordings sent after an unusable reply",
	})

	pm.fallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generation",
		Name:      "fallbacks_total",
		Help:      "Canned results returned instead of backend output",
	}, []string{"generator"})

	// HTTP metrics
	pm.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status",
	}, []string{"route", "status"})

	pm.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
	}, []string{"route"})

	registry.MustRegister(
		pm.attempts,
		pm.reprompts,
		pm.fallbacks,
		pm.httpRequests,
		pm.httpDuration,
	)

	pm.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	if logger != nil {
		logger.Info("prometheus metrics initialized", "namespace", namespace)
	}
	return pm
}

// Attempt records the outcome of one backend call.
func (pm *PrometheusMetrics) Attempt(outcome string) {
	pm.attempts.WithLabelValues(outcome).Inc()
}

// Reprompt records a safe rewording.
func (pm *PrometheusMetrics) Reprompt() {
	pm.reprompts.Inc()
}

// Fallback records that generator returned canned content.
func (pm *PrometheusMetrics) Fallback(generator string) {
	pm.fallbacks.WithLabelValues(generator).Inc()
}

// RecordHTTPRequest records one served request.
func (pm *PrometheusMetrics) RecordHTTPRequest(route string, status int, duration time.Duration) {
	pm.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	pm.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (pm *PrometheusMetrics) Handler() http.Handler {
	return pm.handler
}
