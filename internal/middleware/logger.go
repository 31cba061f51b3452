package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/foliopulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status
// code, request latency, and request ID (if available).
//
// Example log output:
//
//	request_id=123e4567-... method=POST path=/api/v1/portfolio/analyze status=200 latency_ms=420
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
