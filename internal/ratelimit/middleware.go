package ratelimit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/projectpulse/project-pulse-backend/internal/api/http"
)

// Middleware gates a route on the limiter, keyed by client IP.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			apihttp.Fail(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
