package middelware

import (
	"net/http"
	"time"

	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging and panic recovery
type LoggingMiddleware struct {
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewLoggingMiddleware creates a new logging middleware. m may be nil.
func NewLoggingMiddleware(log logger.Logger, m *metrics.Metrics) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger:  log,
		metrics: m,
	}
}

// StructuredLogger logs one entry per request and records it in the request metrics
func (m *LoggingMiddleware) StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		m.metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, latency)

		if path == "/health" || path == "/metrics" {
			return
		}

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
		}
		if userID, ok := c.Get("user_id"); ok {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log := m.logger.WithFields(fields)
		switch {
		case status >= 500:
			log.Error("HTTP request failed")
		case status >= 400:
			log.Warn("HTTP request rejected")
		default:
			log.Info("HTTP request completed")
		}
	}
}

// Recovery turns a panic into a 500 envelope
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		abort(c, http.StatusInternalServerError, "An unexpected error occurred", "InternalError", "")
	})
}
