package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"turfbook/internal/handler/httperr"
	"turfbook/internal/infra/ratelimit"
	"turfbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
	Capacity() int
}

// RateLimit keys on the principal when one is set, otherwise on the client IP.
// It fails open when the limiter backend is unreachable.
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":ip:" + c.ClientIP()
		if p, ok := GetPrincipal(c); ok {
			key = scope + ":user:" + p.ID().String()
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Capacity()))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(decision.Remaining, 0), 10))

		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retry, 1)))
			httperr.Abort(c, errs.ErrRateLimited, gin.H{"retryAfterSeconds": max(retry, 1)})
			return
		}
		c.Next()
	}
}
