package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

// Counter keeps fixed-window request counts in redis so the cap holds across
// processes. Keys live for exactly one window and roll over by expiring.
type Counter struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewCounter(log *logger.Logger) (*Counter, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Counter{log: log.With("service", "RedisCounter"), rdb: rdb}, nil
}

func (c *Counter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if c == nil || c.rdb == nil {
		return 0, time.Time{}, fmt.Errorf("redis counter not initialized")
	}

	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	if count == 1 {
		if err := c.rdb.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
	}

	ttl, err := c.rdb.PTTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, time.Now().Add(ttl), nil
}

func (c *Counter) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
