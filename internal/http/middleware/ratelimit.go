package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

// CounterStore increments the fixed-window counter for a client key and
// reports the running count plus when the window resets. Implementations:
// the redis counter for multi-process deployments, MemoryCounter otherwise.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, reset time.Time, err error)
}

type RateLimitMiddleware struct {
	log     *logger.Logger
	store   CounterStore
	window  time.Duration
	ceiling int64
}

func NewRateLimitMiddleware(log *logger.Logger, store CounterStore, window time.Duration, ceiling int64) *RateLimitMiddleware {
	middlewareLog := log.With("middleware", "RateLimitMiddleware")
	return &RateLimitMiddleware{log: middlewareLog, store: store, window: window, ceiling: ceiling}
}

// Limit enforces the per-client ceiling. Throttling is best-effort: if the
// counter store is unreachable the request is allowed through.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()
		count, reset, err := m.store.Incr(c.Request.Context(), key, m.window)
		if err != nil {
			m.log.Warn("rate limit counter unavailable, failing open", "error", err)
			c.Next()
			return
		}

		remaining := m.ceiling - count
		if remaining < 0 {
			remaining = 0
		}
		resetSeconds := int64(time.Until(reset).Round(time.Second) / time.Second)
		if resetSeconds < 0 {
			resetSeconds = 0
		}
		c.Writer.Header().Set("RateLimit-Limit", strconv.FormatInt(m.ceiling, 10))
		c.Writer.Header().Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Writer.Header().Set("RateLimit-Reset", strconv.FormatInt(resetSeconds, 10))

		if count > m.ceiling {
			c.Writer.Header().Set("Retry-After", strconv.FormatInt(resetSeconds, 10))
			response.RespondError(c, http.StatusTooManyRequests, "rate_limited",
				fmt.Sprintf("request quota exceeded, retry in %ds", resetSeconds))
			c.Abort()
			return
		}
		c.Next()
	}
}
