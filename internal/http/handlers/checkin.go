package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunkbaza/Softtek/internal/http/response"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/services"
)

// maxBodyBytes caps POST bodies before binding; the payloads here are a few
// hundred bytes at most.
const maxBodyBytes = 100 << 10

type CheckinHandler struct {
	log     *logger.Logger
	checkin services.CheckinService
}

func NewCheckinHandler(log *logger.Logger, checkin services.CheckinService) *CheckinHandler {
	return &CheckinHandler{log: log.With("handler", "CheckinHandler"), checkin: checkin}
}

// POST /assessments
func (h *CheckinHandler) SubmitAssessment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in services.AssessmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondInvalid(c, "invalid_payload", map[string]string{"body": "malformed JSON body"})
		return
	}
	if details := in.Validate(); len(details) > 0 {
		response.RespondInvalid(c, "invalid_payload", details)
		return
	}

	created, err := h.checkin.SubmitAssessment(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err, "could not persist assessment")
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID})
}

// POST /mood-checkins
func (h *CheckinHandler) SubmitMood(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in services.MoodCheckinInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondInvalid(c, "invalid_payload", map[string]string{"body": "malformed JSON body"})
		return
	}
	if details := in.Validate(); len(details) > 0 {
		response.RespondInvalid(c, "invalid_payload", details)
		return
	}

	created, err := h.checkin.SubmitMood(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err, "could not persist mood check-in")
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID})
}

// GET /history/:sessionId
func (h *CheckinHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if !services.ValidSessionID(sessionID) {
		response.RespondError(c, http.StatusBadRequest, "invalid_session", "session id must be 8 to 128 characters")
		return
	}

	history, err := h.checkin.History(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, h.log, err, "could not load history")
		return
	}
	response.RespondOK(c, history)
}
