package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/printmart/internal/pkg/ratelimit"
)

// RateLimit limits requests per client IP
func RateLimit(limiter ratelimit.Limiter, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		decision, err := limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// If the limiter backend is down, allow the request
			logger.WithError(err).WithField("client_ip", clientIP).Warn("Rate limiter unavailable")
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(decision.Remaining, 0)))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
