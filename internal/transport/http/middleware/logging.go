package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextRequestIDKey = "request_id"
)

// RequestLogger tags every request with an id and writes one log line when it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, "request failed", attrs...)
		case status >= 400:
			logger.WarnContext(ctx, "request rejected", attrs...)
		default:
			logger.InfoContext(ctx, "request handled", attrs...)
		}
	}
}
