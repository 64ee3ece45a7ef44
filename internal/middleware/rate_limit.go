package middleware

import (
	"net/http"
	"sync"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyedLimiter hands out one token bucket per key (client IP or user id).
type keyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newKeyedLimiter(rps float64, burst int) *keyedLimiter {
	return &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (k *keyedLimiter) allow(key string) bool {
	k.mu.Lock()
	limiter, ok := k.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = limiter
	}
	k.mu.Unlock()

	return limiter.Allow()
}

// RateLimitByIP throttles per client IP.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	limiter := newKeyedLimiter(rps, burst)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser throttles per authenticated user, falling back to the
// client IP when no user is on the context.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	limiter := newKeyedLimiter(rps, burst)

	return func(c *gin.Context) {
		key := c.GetString("user_id_validated")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.allow(key) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
