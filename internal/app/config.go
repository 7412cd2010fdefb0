package app

import (
	"time"

	"github.com/yunkbaza/Softtek/internal/platform/envutil"
)

type Config struct {
	Port             string
	APIKey           string
	RateLimitWindow  time.Duration
	RateLimitCeiling int64
	Environment      string
}

func LoadConfig() Config {
	windowMs := envutil.Int("RATE_LIMIT_WINDOW_MS", 60_000)
	ceiling := envutil.Int("RATE_LIMIT_MAX", 60)
	return Config{
		Port:             envutil.String("PORT", "8080"),
		APIKey:           envutil.String("API_KEY", ""),
		RateLimitWindow:  time.Duration(windowMs) * time.Millisecond,
		RateLimitCeiling: int64(ceiling),
		Environment:      envutil.String("ENVIRONMENT", "development"),
	}
}
