package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/service"
)

// Metrics records one HTTP observation per request. The route template is
// used as the path label so each form id does not become its own series;
// unmatched routes (404s) collapse into a single label.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
