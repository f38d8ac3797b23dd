package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

// Counter is the slice of *redis.Client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimiter provides Redis-backed IP rate limiting using a fixed-window counter.
// All instances share the counters, so the limit holds across replicas.
type RateLimiter struct {
	counter Counter
	scope   string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

// NewRateLimiter allows limit requests per client IP and window. scope
// separates the counters of different routes.
func NewRateLimiter(counter Counter, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		scope:   scope,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		windowBucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("prism:ratelimit:%s:%s:%d", rl.scope, clientIP, windowBucket)

		ctx := c.Request.Context()

		count, err := rl.counter.Incr(ctx, key).Result()
		if err != nil {
			// Fail open when Redis is unavailable
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.counter.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
