package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/services"
)

type SupportHandler struct {
	log     *logger.Logger
	support services.SupportService
}

func NewSupportHandler(log *logger.Logger, support services.SupportService) *SupportHandler {
	return &SupportHandler{log: log.With("handler", "SupportHandler"), support: support}
}

// GET /support/resources
func (h *SupportHandler) ListResources(c *gin.Context) {
	items, err := h.support.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, "could not load resources")
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

// POST /support/resources
func (h *SupportHandler) CreateResource(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in services.SupportResourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondInvalid(c, "invalid_payload", map[string]string{"body": "malformed JSON body"})
		return
	}
	if details := in.Validate(); len(details) > 0 {
		response.RespondInvalid(c, "invalid_payload", details)
		return
	}

	created, err := h.support.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err, "could not persist resource")
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID})
}
