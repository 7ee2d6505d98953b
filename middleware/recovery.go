package middleware

import (
	"net/http"

	"flowdeck/logger"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware isolates a panicking handler to its own request.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithField("panic", err).Error("Recovered from handler panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
