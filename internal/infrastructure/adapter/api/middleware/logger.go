package middleware

import (
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request id
	RequestIDKey = "request_id"
)

// RequestID assigns every request an id, reusing the caller's when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := timeProvider.Since(start)
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":      method,
			"path":        path,
			"route":       c.FullPath(),
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  c.GetString(RequestIDKey),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if statusCode >= 500 {
			logger.Warn("Request processed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
