// Package metrics provides Prometheus metrics for the matchrank service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the matching engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ranking metrics
	rankingsServed   *prometheus.CounterVec
	rankingLatency   *prometheus.HistogramVec
	candidatesRanked prometheus.Counter
	scoringErrors    prometheus.Counter

	// Remote scorer metrics
	remoteCalls     prometheus.Counter
	remoteFailures  prometheus.Counter
	remoteFallbacks prometheus.Counter
	remoteLatency   prometheus.Histogram
	remotePartial   prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Directory metrics
	profilesTracked   prometheus.Gauge
	candidatesTracked prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchrank",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingsServed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rankings_served_total",
			Help:      "Total ranked lists produced, by use case",
		},
		[]string{"use_case"},
	)

	m.rankingLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ranking_latency_milliseconds",
			Help:      "Histogram of end-to-end ranking latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"use_case"},
	)

	m.candidatesRanked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_ranked_total",
		Help:      "Total candidates scored across all ranking calls",
	})

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total scoring defects encountered",
	})

	m.remoteCalls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_scorer_calls_total",
		Help:      "Total calls issued to the remote scoring endpoint",
	})

	m.remoteFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_scorer_failures_total",
		Help:      "Remote scoring calls that timed out, errored, or returned garbage",
	})

	m.remoteFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_scorer_fallbacks_total",
		Help:      "Ranking calls that fell back to local scoring entirely",
	})

	m.remoteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_scorer_latency_milliseconds",
		Help:      "Histogram of remote scoring call latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.remotePartial = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_scorer_partial_results_total",
		Help:      "Remote responses that covered only a subset of candidates",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.profilesTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_tracked",
		Help:      "Profiles currently held by the member store",
	})

	m.candidatesTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_tracked",
		Help:      "Candidates currently held by the member store",
	})
}

// RecordRankingServed increments the rankings counter for a use case.
func RecordRankingServed(useCase string) {
	globalManager.rankingsServed.WithLabelValues(useCase).Inc()
}

// RecordRankingLatency records end-to-end ranking latency in milliseconds.
func RecordRankingLatency(useCase string, latencyMs float64) {
	globalManager.rankingLatency.WithLabelValues(useCase).Observe(latencyMs)
}

// RecordCandidatesRanked adds to the ranked-candidates counter.
func RecordCandidatesRanked(n int) {
	globalManager.candidatesRanked.Add(float64(n))
}

// RecordScoringError increments the scoring defects counter.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// RecordRemoteCall increments the remote scorer call counter.
func RecordRemoteCall() {
	globalManager.remoteCalls.Inc()
}

// RecordRemoteFailure increments the remote scorer failure counter.
func RecordRemoteFailure() {
	globalManager.remoteFailures.Inc()
}

// RecordRemoteFallback increments the full-fallback counter.
func RecordRemoteFallback() {
	globalManager.remoteFallbacks.Inc()
}

// RecordRemoteLatency records remote call latency in milliseconds.
func RecordRemoteLatency(latencyMs float64) {
	globalManager.remoteLatency.Observe(latencyMs)
}

// RecordRemotePartialResult increments the partial-coverage counter.
func RecordRemotePartialResult() {
	globalManager.remotePartial.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateProfilesTracked sets the tracked-profiles gauge.
func UpdateProfilesTracked(count int) {
	globalManager.profilesTracked.Set(float64(count))
}

// UpdateCandidatesTracked sets the tracked-candidates gauge.
func UpdateCandidatesTracked(count int) {
	globalManager.candidatesTracked.Set(float64(count))
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
