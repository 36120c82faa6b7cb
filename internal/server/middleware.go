package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GurjasChalana/fitness-club/internal/metrics"
)

// MetricsMiddleware records the request counter and latency histogram.
// The route template (not the raw URL) is the path label, so IDs do not
// explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
