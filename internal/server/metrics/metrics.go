// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and updates the server metrics. Handlers record
// per-request data through it; Handler serves the scrape endpoint.
type Collector struct {
	registry        *prometheus.Registry
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
	tasksSynced     prometheus.Counter
}

// NewCollector creates a Collector with its own registry, including the
// standard Go and process collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tasksync_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tasksync_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		tasksSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasksync_tasks_synced_total",
			Help: "Tasks persisted through batch sync.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpStatus,
		c.requestDuration,
		c.tasksSynced,
	)

	return c
}

// RecordHTTPStatus counts a response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration observes a request latency.
func (c *Collector) RecordRequestDuration(d time.Duration) {
	c.requestDuration.Observe(d.Seconds())
}

// RecordTasksSynced counts tasks persisted via batch sync.
func (c *Collector) RecordTasksSynced(count int) {
	c.tasksSynced.Add(float64(count))
}

// Handler returns the scrape endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
