// Package metrics exposes application-level Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Metrics holds instruments for document generation and HTTP traffic.
type Metrics struct {
	registry *prometheus.Registry

	documentsGenerated *prometheus.CounterVec
	renderDuration     *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		documentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoicepress_documents_generated_total",
			Help: "Documents generated, labelled by output kind.",
		}, []string{"kind"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "invoicepress_render_duration_seconds",
			Help:    "Time spent assembling or converting documents.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoicepress_http_requests_total",
			Help: "HTTP requests, labelled by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "invoicepress_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.documentsGenerated,
		m.renderDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry returns the underlying registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordDocument counts one generated document of the given kind
// (html, pdf, receipt) and observes how long it took.
func (m *Metrics) RecordDocument(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documentsGenerated.WithLabelValues(kind).Inc()
	m.renderDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// Module wires the Prometheus instruments.
var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)
