package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/apierr"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

// respondServiceError maps a service failure onto the wire. Client-class
// apierr values keep their status, code and message; anything else is an
// internal_error and only the fallback text leaves the process.
func respondServiceError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	var ae *apierr.Error
	if errors.As(err, &ae) && ae.Status != 0 && ae.Status < http.StatusInternalServerError {
		response.RespondError(c, ae.Status, ae.Code, ae.Error())
		return
	}
	if log != nil {
		log.Error("request failed", "path", c.Request.URL.Path, "error", err)
	}
	response.RespondError(c, http.StatusInternalServerError, "internal_error", fallback)
}
