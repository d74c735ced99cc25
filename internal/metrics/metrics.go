// Package metrics holds the Prometheus instruments of the planner backend.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// deltaApplyTotal counts change-sets by outcome kind ("ok" on success)
	deltaApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_delta_apply_total",
		Help: "Total change-sets processed by result",
	}, []string{"result"})

	// deltaApplyDuration tracks the time spent inside the apply transaction
	deltaApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_delta_apply_duration_seconds",
		Help:    "Change-set transaction duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
	}, []string{"result"})

	// deltaRecords tracks records touched per change-set
	deltaRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_delta_records",
		Help:    "Number of records touched per applied change-set",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})

	// overAllocationWarnings counts over-allocation warnings returned to clients
	overAllocationWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_over_allocation_warnings_total",
		Help: "Total over-allocation warnings reported",
	})

	// staleBaseTotal counts change-sets built on an outdated project version
	staleBaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_stale_base_total",
		Help: "Total change-sets whose base version was behind the stored version",
	}, []string{"rejected"})

	// httpRequestDuration tracks request latency by route
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveApply records the outcome of one change-set
func ObserveApply(result string, txDuration time.Duration, records int) {
	deltaApplyTotal.WithLabelValues(result).Inc()
	deltaApplyDuration.WithLabelValues(result).Observe(txDuration.Seconds())
	if result == "ok" {
		deltaRecords.Observe(float64(records))
	}
}

// ObserveWarnings records over-allocation warnings
func ObserveWarnings(n int) {
	overAllocationWarnings.Add(float64(n))
}

// ObserveStaleBase records a change-set built on an outdated version
func ObserveStaleBase(rejected bool) {
	staleBaseTotal.WithLabelValues(strconv.FormatBool(rejected)).Inc()
}

// Middleware measures request latency per route template
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
