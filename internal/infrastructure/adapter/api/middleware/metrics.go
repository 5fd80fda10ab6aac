package middleware

import (
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records the count and latency of every request by route pattern
func HTTPMetrics(m *metrics.Metrics, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), timeProvider.Since(start))
	}
}
