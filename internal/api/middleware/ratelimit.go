package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const rateLimiterSize = 16384

// RateLimiter counts requests per client IP over a fixed window. Windows
// live in an expiring LRU, so idle clients age out on their own and the
// hottest clients never push memory past the cache bound.
type RateLimiter struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *int]
	limit   int
	message string
}

// NewRateLimiter creates a limiter allowing limit requests per window per IP
func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		windows: expirable.NewLRU[string, *int](rateLimiterSize, nil, window),
		limit:   limit,
		message: message,
	}
}

// Middleware rejects requests over the limit with a 429 envelope
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": rl.message,
			})
			return
		}
		c.Next()
	}
}

// Allow records one request for the key and reports whether it fit the window
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	count, ok := rl.windows.Get(key)
	if !ok {
		initial := 1
		rl.windows.Add(key, &initial)
		return true
	}

	if *count >= rl.limit {
		return false
	}
	*count++
	return true
}

// APIRateLimiter is the general limiter applied to every /api route
func APIRateLimiter(limit int, window time.Duration) *RateLimiter {
	return NewRateLimiter(limit, window, "Too many requests from this IP, please try again later.")
}

// AuthRateLimiter is the stricter limiter applied to credential endpoints
func AuthRateLimiter(limit int, window time.Duration) *RateLimiter {
	return NewRateLimiter(limit, window, "Too many authentication attempts, please try again later.")
}
