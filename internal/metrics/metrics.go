package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPDurationSeconds *prometheus.HistogramVec

	// Dataset metrics
	DatasetLoadsTotal *prometheus.CounterVec
	CoursesLoaded     prometheus.Gauge

	// LLM metrics
	LLMRequestsTotal   *prometheus.CounterVec
	LLMDurationSeconds *prometheus.HistogramVec
	LLMFallbacksTotal  *prometheus.CounterVec

	// OpenAlex metrics
	OpenAlexRequestsTotal   *prometheus.CounterVec
	OpenAlexDurationSeconds *prometheus.HistogramVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
	RateLimiterClients *prometheus.GaugeVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_http_duration_seconds",
				Help:    "HTTP request duration in seconds by route",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"route"},
		),

		DatasetLoadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_dataset_loads_total",
				Help: "Total number of course dataset loads by source and status",
			},
			[]string{"source", "status"}, // source: primary, fallback; status: success, empty
		),

		CoursesLoaded: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "planner_courses_loaded",
				Help: "Number of courses in the most recently loaded dataset",
			},
		),

		LLMRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_llm_requests_total",
				Help: "Total number of LLM requests by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error
		),

		LLMDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_llm_duration_seconds",
				Help:    "LLM request duration in seconds by provider",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"provider"},
		),

		LLMFallbacksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_llm_fallbacks_total",
				Help: "Total number of provider fallbacks by source and target provider",
			},
			[]string{"from", "to"},
		),

		OpenAlexRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_openalex_requests_total",
				Help: "Total number of OpenAlex API requests by endpoint and status",
			},
			[]string{"endpoint", "status"}, // endpoint: authors, works
		),

		OpenAlexDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_openalex_duration_seconds",
				Help:    "OpenAlex request duration in seconds by endpoint",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20},
			},
			[]string{"endpoint"},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),

		RateLimiterClients: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "planner_rate_limiter_active_clients",
				Help: "Number of clients currently tracked by rate limiter",
			},
			[]string{"limiter_type"},
		),
	}
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPDurationSeconds.WithLabelValues(route).Observe(duration)
}

// RecordDatasetLoad records a dataset load and the resulting course count.
func (m *Metrics) RecordDatasetLoad(source, status string, count int) {
	m.DatasetLoadsTotal.WithLabelValues(source, status).Inc()
	m.CoursesLoaded.Set(float64(count))
}

// RecordLLMRequest records an LLM request with status and duration.
func (m *Metrics) RecordLLMRequest(provider, status string, duration float64) {
	m.LLMRequestsTotal.WithLabelValues(provider, status).Inc()
	m.LLMDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordLLMFallback records a provider failover.
func (m *Metrics) RecordLLMFallback(from, to string) {
	m.LLMFallbacksTotal.WithLabelValues(from, to).Inc()
}

// RecordOpenAlexRequest records an OpenAlex API request.
func (m *Metrics) RecordOpenAlexRequest(endpoint, status string, duration float64) {
	m.OpenAlexRequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.OpenAlexDurationSeconds.WithLabelValues(endpoint).Observe(duration)
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetRateLimiterClients sets the number of tracked clients for a limiter.
func (m *Metrics) SetRateLimiterClients(limiterType string, count int) {
	m.RateLimiterClients.WithLabelValues(limiterType).Set(float64(count))
}
