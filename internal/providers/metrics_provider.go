package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"lifedash/internal/structures"
	"time"
)

const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultRejected = "rejected"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveStoreDuration(op string, duration time.Duration)
	IncPersistenceFailures(op string)
	IncSnapshotOperations(op, result string)
	IncReloads()
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	storeDuration       *prometheus.HistogramVec
	persistenceFailures *prometheus.CounterVec
	snapshotOperations  *prometheus.CounterVec
	reloads             prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveStoreDuration(op string, duration time.Duration) {
	m.storeDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceFailures(op string) {
	m.persistenceFailures.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncSnapshotOperations(op, result string) {
	m.snapshotOperations.WithLabelValues(op, result).Inc()
}

func (m *MetricsProvider) IncReloads() {
	m.reloads.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifedash_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifedash_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifedash_cache_hits_total",
			Help: "Total number of store cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifedash_cache_misses_total",
			Help: "Total number of store cache misses",
		}),

		storeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifedash_store_operation_duration_seconds",
			Help:    "Duration of key-value store operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		persistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifedash_persistence_failures_total",
			Help: "Store writes or removals that failed",
		}, []string{"op"}),

		snapshotOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifedash_snapshot_operations_total",
			Help: "Export, import and clear operations by result",
		}, []string{"op", "result"}),

		reloads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifedash_reloads_total",
			Help: "Number of full state reloads",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncPersistenceFailures(_ string)                  {}
func (n *noopMetrics) IncSnapshotOperations(_, _ string)                {}
func (n *noopMetrics) IncReloads()                                      {}
