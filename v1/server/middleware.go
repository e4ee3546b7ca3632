package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// traceRequests continues a trace propagated by the caller and wraps the
// request in a span named after the route.
func (s *Server) traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		carrier := make(map[string]string, len(c.Request.Header))
		for key := range c.Request.Header {
			carrier[key] = c.Request.Header.Get(key)
		}
		ctx := s.tracer.SetCarrierOnContext(c.Request.Context(), carrier)

		ctx, span := s.tracer.StartSpan(ctx, c.Request.Method+" "+route(c))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		s.tracer.SetAttributes(span, map[string]interface{}{
			"http.method":      c.Request.Method,
			"http.route":       route(c),
			"http.status_code": c.Writer.Status(),
		})
	}
}

// observeRequests counts requests and their latency per route, and logs them.
func (s *Server) observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := route(c)
		status := c.Writer.Status()
		s.metrics.IncrementRequests(endpoint, strconv.Itoa(status))
		s.metrics.RecordRequestDuration(start, endpoint)

		s.log.DebugWithContext(c.Request.Context(), "HTTP request", nil, map[string]interface{}{
			"method":   c.Request.Method,
			"path":     endpoint,
			"status":   status,
			"duration": time.Since(start).String(),
		})
	}
}

// route is the matched route pattern, or "unmatched" for 404s so unknown
// paths do not grow the label set.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
