package middleware

import (
	"strconv"
	"time"

	"majestic-manor/internal/observability"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route template.
// The template (":id" rather than the concrete id) keeps cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		observability.HTTPRequests.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		observability.HTTPLatency.
			WithLabelValues(route, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}
