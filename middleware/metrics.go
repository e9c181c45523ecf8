package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ace_api_requests_total",
		Help: "Total number of HTTP requests by route and status.",
	}, []string{"route", "status"})
	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ace_api_request_duration_seconds",
		Help:    "Duration of HTTP request handling.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.Observe(time.Since(start).Seconds())
	}
}
