// Package metrics provides Prometheus metrics for the podium aggregation service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Pipeline Metrics - one series per view kind
	pipelineRuns       *prometheus.CounterVec
	pipelineDuration   *prometheus.HistogramVec
	pipelineOutputSize *prometheus.GaugeVec

	// Source Metrics - table loads
	sourceRowsLoaded  *prometheus.CounterVec
	sourceRowsSkipped *prometheus.CounterVec
	sourceLoadErrors  *prometheus.CounterVec
	sourceLoadLatency *prometheus.HistogramVec

	// Snapshot Metrics - published views
	snapshotCount    *prometheus.CounterVec
	snapshotLastUnix *prometheus.GaugeVec

	// Queue Metrics - refresh jobs
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueueRate   prometheus.Counter
	queueDequeueRate   prometheus.Counter
	queueEnqueueErrors prometheus.Counter
	refreshCoalesced   prometheus.Counter

	// Worker Metrics
	workerActiveCount       prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrorRate         prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
		Buckets:     buckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Pipeline Metrics
	m.pipelineRuns = auto.NewCounterVec(
		m.counterOpts("runs_total", "Total number of view computations by view and outcome"),
		[]string{"view", "outcome"},
	)
	m.pipelineDuration = auto.NewHistogramVec(
		m.histogramOpts("duration_milliseconds", "View computation duration in milliseconds, load included", m.histogramBuckets),
		[]string{"view"},
	)
	m.pipelineOutputSize = auto.NewGaugeVec(
		m.gaugeOpts("output_size", "Number of edges, cells or countries in the last computed view"),
		[]string{"view"},
	)

	// Source Metrics
	m.sourceRowsLoaded = auto.NewCounterVec(
		m.counterOpts("source_rows_loaded_total", "Total number of table rows read"),
		[]string{"table"},
	)
	m.sourceRowsSkipped = auto.NewCounterVec(
		m.counterOpts("source_rows_malformed_total", "Total number of malformed CSV rows skipped"),
		[]string{"table"},
	)
	m.sourceLoadErrors = auto.NewCounterVec(
		m.counterOpts("source_load_errors_total", "Total number of failed table loads"),
		[]string{"table"},
	)
	m.sourceLoadLatency = auto.NewHistogramVec(
		m.histogramOpts("source_load_latency_milliseconds", "Table load latency in milliseconds", m.histogramBuckets),
		[]string{"table"},
	)

	// Snapshot Metrics
	m.snapshotCount = auto.NewCounterVec(
		m.counterOpts("snapshot_count_total", "Total number of view snapshots published"),
		[]string{"view"},
	)
	m.snapshotLastUnix = auto.NewGaugeVec(
		m.gaugeOpts("snapshot_last_unix", "Unix timestamp of the last snapshot publish"),
		[]string{"view"},
	)

	// Queue Metrics
	m.queueSize = auto.NewGauge(m.gaugeOpts("queue_size", "Current number of queued refresh jobs"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("queue_capacity", "Maximum refresh queue capacity"))
	m.queueUtilization = auto.NewGauge(m.gaugeOpts("queue_utilization_ratio", "Queue utilization ratio (current size / capacity)"))
	m.queueEnqueueRate = auto.NewCounter(m.counterOpts("queue_enqueue_total", "Total number of refresh jobs enqueued"))
	m.queueDequeueRate = auto.NewCounter(m.counterOpts("queue_dequeue_total", "Total number of refresh jobs dequeued"))
	m.queueEnqueueErrors = auto.NewCounter(m.counterOpts("queue_enqueue_errors_total", "Total number of rejected refresh jobs"))
	m.refreshCoalesced = auto.NewCounter(m.counterOpts("refresh_coalesced_total", "Total number of refresh requests folded into a pending job"))

	// Worker Metrics
	m.workerActiveCount = auto.NewGauge(m.gaugeOpts("worker_active_count", "Number of running refresh workers"))
	m.workerProcessingLatency = auto.NewHistogram(
		m.histogramOpts("worker_processing_latency_milliseconds", "Refresh job processing latency in milliseconds", m.histogramBuckets),
	)
	m.workerErrorRate = auto.NewCounter(m.counterOpts("worker_errors_total", "Total number of failed refresh jobs"))

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// Pipeline Metrics Functions.

// RecordPipelineRun counts one computation of view with outcome "ok" or "error".
func RecordPipelineRun(view, outcome string) {
	globalManager.pipelineRuns.WithLabelValues(view, outcome).Inc()
}

// RecordPipelineDuration records a computation duration in milliseconds.
func RecordPipelineDuration(view string, latencyMs float64) {
	globalManager.pipelineDuration.WithLabelValues(view).Observe(latencyMs)
}

// UpdatePipelineOutputSize sets the size of the last computed view.
func UpdatePipelineOutputSize(view string, size int) {
	globalManager.pipelineOutputSize.WithLabelValues(view).Set(float64(size))
}

// Source Metrics Functions.

// RecordSourceRows adds n rows read from table.
func RecordSourceRows(table string, n int) {
	globalManager.sourceRowsLoaded.WithLabelValues(table).Add(float64(n))
}

// RecordSourceRowsSkipped adds n malformed rows skipped in table.
func RecordSourceRowsSkipped(table string, n int) {
	globalManager.sourceRowsSkipped.WithLabelValues(table).Add(float64(n))
}

// RecordSourceLoadError counts a failed load of table.
func RecordSourceLoadError(table string) {
	globalManager.sourceLoadErrors.WithLabelValues(table).Inc()
}

// RecordSourceLoadLatency records a table load latency in milliseconds.
func RecordSourceLoadLatency(table string, latencyMs float64) {
	globalManager.sourceLoadLatency.WithLabelValues(table).Observe(latencyMs)
}

// Snapshot Metrics Functions.

// RecordSnapshotPublished counts a snapshot publish for view at unix seconds.
func RecordSnapshotPublished(view string, unix int64) {
	globalManager.snapshotCount.WithLabelValues(view).Inc()
	globalManager.snapshotLastUnix.WithLabelValues(view).Set(float64(unix))
}

// Queue Metrics Functions.

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the maximum queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization ratio.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueueRate.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeueRate.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// RecordRefreshCoalesced counts a refresh request absorbed by a pending job.
func RecordRefreshCoalesced() {
	globalManager.refreshCoalesced.Inc()
}

// Worker Metrics Functions.

// UpdateWorkerActiveCount sets the number of running workers.
func UpdateWorkerActiveCount(count int) {
	globalManager.workerActiveCount.Set(float64(count))
}

// RecordWorkerProcessingLatency records worker processing latency.
func RecordWorkerProcessingLatency(latencyMs float64) {
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	globalManager.workerErrorRate.Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Families returns the names of the metric families currently gathered from
// the custom registry.
func Families() ([]string, error) {
	mfs, err := customRegistry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}
	out := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		out = append(out, mf.GetName())
	}
	return out, nil
}
