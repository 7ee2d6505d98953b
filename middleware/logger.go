package middleware

import (
	"time"

	"flowdeck/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs one structured entry per request, at a level
// matching the response status class.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"uri":         c.Request.RequestURI,
			"client_ip":   c.ClientIP(),
			"status_code": statusCode,
			"latency_ms":  time.Since(start).Milliseconds(),
		})

		switch {
		case statusCode >= 500:
			entry.Error("request failed")
		case statusCode >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}
