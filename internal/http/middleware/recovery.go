package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

// Recovery converts handler panics into the generic internal_error envelope.
// The panic value and stack stay in the logs, never in the response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("handler panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		}
		response.RespondError(c, http.StatusInternalServerError, "internal_error", "unexpected failure")
		c.Abort()
	})
}
