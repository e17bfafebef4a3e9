package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/service"
)

// Metrics records every routed request in the console's HTTP histogram.
// Probe and scrape endpoints are skipped so the numbers describe page
// traffic rather than the monitoring loop.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if metricsSvc == nil || path == "/metrics" || path == "/health" || path == "/ready" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
