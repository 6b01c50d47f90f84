// Package metrics exposes prometheus instrumentation for list operations, HTTP requests
// and operator workspaces.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	operations   *prometheus.CounterVec
	opDuration   *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	workspaces   prometheus.Gauge
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_list_operations_total",
			Help: "Finished list controller operations by entity, operation and outcome.",
		}, []string{"entity", "op", "outcome"}),
		opDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "console_list_operation_duration_seconds",
			Help:    "Duration of list controller operations including the remote call.",
			Buckets: prometheus.DefBuckets,
		}, []string{"entity", "op"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "HTTP requests served by the console.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "Duration of HTTP requests served by the console.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		workspaces: f.NewGauge(prometheus.GaugeOpts{
			Name: "console_active_workspaces",
			Help: "Operator workspaces currently held in memory.",
		}),
	}
}

// ObserveOperation implements listing.Metrics.
func (m *Metrics) ObserveOperation(entity, op string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.operations.WithLabelValues(entity, op, outcome).Inc()
	m.opDuration.WithLabelValues(entity, op).Observe(elapsed.Seconds())
}

func (m *Metrics) WorkspaceOpened() { m.workspaces.Inc() }
func (m *Metrics) WorkspaceClosed() { m.workspaces.Dec() }

// Middleware counts requests per route template so ids never become label values.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
