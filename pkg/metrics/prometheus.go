// Package metrics exposes Prometheus instrumentation for the ranking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default namespace for all metrics.
const defaultNamespace = "fifa_ranking"

// Manager owns the metric instruments registered on a single registry.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Fetch cycle instruments.
	fetchCycles        prometheus.Counter
	fetchesTotal       prometheus.Counter
	fetchErrors        prometheus.Counter
	emptyHistories     prometheus.Counter
	staleCyclesDropped prometheus.Counter
	fetchLatency       prometheus.Histogram

	// Provider instruments.
	providerRequests        *prometheus.CounterVec
	providerRequestDuration prometheus.Histogram
	malformedTimestamps     prometheus.Counter

	// Export instruments.
	exportsTotal *prometheus.CounterVec

	// State gauges.
	trackedCountries prometheus.Gauge
	axisLength       prometheus.Gauge

	// HTTP instruments.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System gauges.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// NewManager builds a Manager and registers its instruments.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.fetchCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fetch_cycles_total",
		Help:      "Number of fetch cycles started.",
	})
	m.fetchesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "country_fetches_total",
		Help:      "Number of per-country history retrievals attempted.",
	})
	m.fetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "country_fetch_errors_total",
		Help:      "Number of per-country history retrievals that failed.",
	})
	m.emptyHistories = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "country_empty_histories_total",
		Help:      "Number of retrievals that succeeded but carried no records.",
	})
	m.staleCyclesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "stale_cycles_dropped_total",
		Help:      "Number of fetch cycles discarded because a newer cycle completed first.",
	})
	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "country_fetch_latency_ms",
		Help:      "Latency of a single country history retrieval in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	})

	m.providerRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "provider_requests_total",
		Help:      "Upstream provider requests by outcome.",
	}, []string{"outcome"})
	m.providerRequestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "provider_request_duration_ms",
		Help:      "Upstream provider request duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	})
	m.malformedTimestamps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "malformed_timestamps_total",
		Help:      "Provider records dropped because their timestamp did not parse.",
	})

	m.exportsTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "exports_total",
		Help:      "Export documents produced by format.",
	}, []string{"format"})

	m.trackedCountries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "tracked_countries",
		Help:      "Countries present in the current history map.",
	})
	m.axisLength = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "axis_length",
		Help:      "Distinct dates on the most recently built axis.",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"endpoint", "method"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Heap bytes currently allocated.",
	})
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Number of live goroutines.",
	})
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // single registry served on /healthz

var globalManager *Manager //nolint:gochecknoglobals // singleton manager backing package helpers

func init() { //nolint:gochecknoinits // wires the global manager to the custom registry
	globalManager = NewManager(WithRegistry(customRegistry))
}

// GetRegistry returns the registry served by the metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers mirroring the Manager instruments.

func RecordFetchCycle()             { globalManager.fetchCycles.Inc() }
func RecordFetch()                  { globalManager.fetchesTotal.Inc() }
func RecordFetchError()             { globalManager.fetchErrors.Inc() }
func RecordEmptyHistory()           { globalManager.emptyHistories.Inc() }
func RecordStaleCycleDrop()         { globalManager.staleCyclesDropped.Inc() }
func RecordFetchLatency(ms float64) { globalManager.fetchLatency.Observe(ms) }

func RecordProviderRequest(outcome string) {
	globalManager.providerRequests.WithLabelValues(outcome).Inc()
}

func RecordProviderRequestDuration(ms float64) {
	globalManager.providerRequestDuration.Observe(ms)
}

func RecordMalformedTimestamp() { globalManager.malformedTimestamps.Inc() }

func RecordExport(format string) {
	globalManager.exportsTotal.WithLabelValues(format).Inc()
}

func UpdateTrackedCountries(n int) { globalManager.trackedCountries.Set(float64(n)) }
func UpdateAxisLength(n int)       { globalManager.axisLength.Set(float64(n)) }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
