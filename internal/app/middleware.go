package app

import (
	redisclient "github.com/yunkbaza/Softtek/internal/clients/redis"
	httpMW "github.com/yunkbaza/Softtek/internal/http/middleware"
	"github.com/yunkbaza/Softtek/internal/platform/envutil"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

type Middleware struct {
	APIKey    *httpMW.APIKeyMiddleware
	RateLimit *httpMW.RateLimitMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")

	var store httpMW.CounterStore
	if envutil.String("REDIS_ADDR", "") != "" {
		counter, err := redisclient.NewCounter(log)
		if err != nil {
			log.Warn("redis counter init failed, using in-process counters", "error", err)
		} else {
			store = counter
		}
	}
	if store == nil {
		store = httpMW.NewMemoryCounter()
	}

	return Middleware{
		APIKey:    httpMW.NewAPIKeyMiddleware(log, cfg.APIKey),
		RateLimit: httpMW.NewRateLimitMiddleware(log, store, cfg.RateLimitWindow, cfg.RateLimitCeiling),
	}
}
