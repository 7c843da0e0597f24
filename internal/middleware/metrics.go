package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taxihail/internal/observability"
)

// MetricsMiddleware returns middleware that records request latency per
// route. The route template is used rather than the raw path so ride
// and driver ids do not explode the label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		observability.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
