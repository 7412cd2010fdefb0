package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yunkbaza/Softtek/internal/http/handlers"
	httpMW "github.com/yunkbaza/Softtek/internal/http/middleware"
	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	APIKeyMiddleware    *httpMW.APIKeyMiddleware
	RateLimitMiddleware *httpMW.RateLimitMiddleware

	CheckinHandler *httpH.CheckinHandler
	SupportHandler *httpH.SupportHandler
	LegacyHandler  *httpH.LegacyHandler
	HealthHandler  *httpH.HealthHandler
}

// NewRouter builds the full pipeline: recovery, trace context, CORS, request
// logging and tracing first, then the API-key gate, then the rate limiter,
// then dispatch. The gate runs before the limiter so unauthorized traffic
// never consumes quota.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(otelgin.Middleware("wellness-api"))

	if cfg.APIKeyMiddleware != nil {
		r.Use(cfg.APIKeyMiddleware.RequireKey())
	}
	if cfg.RateLimitMiddleware != nil {
		r.Use(cfg.RateLimitMiddleware.Limit())
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, nethttp.StatusNotFound, "not_found", "no such route")
	})

	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.CheckinHandler != nil {
		r.POST("/assessments", cfg.CheckinHandler.SubmitAssessment)
		r.POST("/mood-checkins", cfg.CheckinHandler.SubmitMood)
		r.GET("/history/:sessionId", cfg.CheckinHandler.History)
	}

	if cfg.SupportHandler != nil {
		r.GET("/support/resources", cfg.SupportHandler.ListResources)
		r.POST("/support/resources", cfg.SupportHandler.CreateResource)
	}

	// Legacy mobile routes
	if cfg.LegacyHandler != nil {
		r.POST("/emotions", cfg.LegacyHandler.RecordEmotion)
		r.GET("/emotions", cfg.LegacyHandler.ListEmotions)
		r.POST("/risks", cfg.LegacyHandler.RecordRisk)
	}

	return r
}
