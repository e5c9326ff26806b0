package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/hazardwatch/internal/pkg/response"
)

// Middleware limits requests per client IP.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed := limiter.Allow(key)

		resetTime := limiter.GetResetTime(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))
		c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			retry := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
