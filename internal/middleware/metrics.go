package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/uk_books_app/internal/obs"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count, latency and in-flight requests.
// Routes are labelled by their template so path parameters do not explode cardinality.
func MetricsMiddleware(m *obs.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.HTTPInFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPInFlight.Dec()
	}
}
