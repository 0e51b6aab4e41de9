package middleware

import (
	"time"

	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with a request id and logs method, path,
// status and latency after the handler chain completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if userID, exists := c.Get("user_id"); exists {
			log.Info("%s %s %s | %d | %v | user_id=%v | request_id=%s",
				c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency, userID, requestID)
		} else {
			log.Info("%s %s %s | %d | %v | request_id=%s",
				c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency, requestID)
		}
	}
}
