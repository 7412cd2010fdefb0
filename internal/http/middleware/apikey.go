package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

const apiKeyHeader = "X-API-Key"

type APIKeyMiddleware struct {
	log    *logger.Logger
	secret string
}

func NewAPIKeyMiddleware(log *logger.Logger, secret string) *APIKeyMiddleware {
	middlewareLog := log.With("middleware", "APIKeyMiddleware")
	return &APIKeyMiddleware{log: middlewareLog, secret: strings.TrimSpace(secret)}
}

// RequireKey is the perimeter gate: a single shared secret in X-API-Key,
// checked before anything else touches the request. An unset server secret
// rejects everyone rather than letting everyone in.
func (m *APIKeyMiddleware) RequireKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(apiKeyHeader))
		if m.secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.secret)) != 1 {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
