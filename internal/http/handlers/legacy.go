package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/services"
)

// LegacyHandler keeps the original mobile builds working. Routes and field
// names match the old client exactly; GET /emotions returns a bare array,
// not an envelope.
type LegacyHandler struct {
	log    *logger.Logger
	legacy services.LegacyService
}

func NewLegacyHandler(log *logger.Logger, legacy services.LegacyService) *LegacyHandler {
	return &LegacyHandler{log: log.With("handler", "LegacyHandler"), legacy: legacy}
}

// POST /emotions
func (h *LegacyHandler) RecordEmotion(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in services.EmotionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondInvalid(c, "invalid_payload", map[string]string{"body": "malformed JSON body"})
		return
	}
	if details := in.Validate(); len(details) > 0 {
		response.RespondInvalid(c, "invalid_payload", details)
		return
	}

	created, err := h.legacy.RecordEmotion(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err, "could not persist emotion")
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID})
}

// GET /emotions
func (h *LegacyHandler) ListEmotions(c *gin.Context) {
	records, err := h.legacy.ListEmotions(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, "could not load emotions")
		return
	}
	response.RespondOK(c, records)
}

// POST /risks
func (h *LegacyHandler) RecordRisk(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in services.RiskAnswerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondInvalid(c, "invalid_payload", map[string]string{"body": "malformed JSON body"})
		return
	}
	if details := in.Validate(); len(details) > 0 {
		response.RespondInvalid(c, "invalid_payload", details)
		return
	}

	created, err := h.legacy.RecordRisk(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err, "could not persist risk answer")
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID})
}
