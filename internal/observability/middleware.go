package observability

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware returns a gin middleware that records request metrics.
// The route template is used as the label, not the raw path, to keep the
// label cardinality bounded.
func MetricsMiddleware(mp *MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		mp.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
