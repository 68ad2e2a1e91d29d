// Package metrics exposes Prometheus instrumentation for upstream GitHub calls,
// the HTTP API, and the scoring engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a registry and the collectors registered on it
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	upstreamRequests  *prometheus.CounterVec
	upstreamLatency   *prometheus.HistogramVec
	rateLimitRemains  prometheus.Gauge
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	reposScored       *prometheus.CounterVec
	enrichmentAbsence *prometheus.CounterVec
}

// Option configures a Manager
type Option func(*Manager)

// WithNamespace sets the metric namespace
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		m.namespace = namespace
	}
}

// WithHistogramBuckets overrides the latency buckets
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// NewManager creates a manager with its own registry
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "github_signals",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.upstreamRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "GitHub API requests by endpoint class and status code.",
	}, []string{"endpoint", "status"})

	m.upstreamLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "GitHub API request latency.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})

	m.rateLimitRemains = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "rate_limit_remaining",
		Help:      "Last observed X-RateLimit-Remaining.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"route", "status"})

	m.httpLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   m.histogramBuckets,
	}, []string{"route"})

	m.reposScored = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "engine",
		Name:      "repositories_scored_total",
		Help:      "Repositories processed per signal.",
	}, []string{"signal"})

	m.enrichmentAbsence = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "engine",
		Name:      "enrichment_absent_total",
		Help:      "Optional enrichment fetches treated as absent.",
	}, []string{"kind"})

	return m
}

// ObserveUpstream records one GitHub API request. Status 0 means a transport failure.
func (m *Manager) ObserveUpstream(endpoint string, status int, elapsed time.Duration) {
	m.upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveRateLimit records the remaining request quota
func (m *Manager) ObserveRateLimit(remaining int) {
	m.rateLimitRemains.Set(float64(remaining))
}

// ObserveHTTP records one served HTTP request
func (m *Manager) ObserveHTTP(route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RepositoriesScored adds n to the processed counter of a signal
func (m *Manager) RepositoriesScored(signal string, n int) {
	m.reposScored.WithLabelValues(signal).Add(float64(n))
}

// EnrichmentAbsent counts an optional fetch that was treated as absent
func (m *Manager) EnrichmentAbsent(kind string) {
	m.enrichmentAbsence.WithLabelValues(kind).Inc()
}

// Registry returns the underlying registry
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
