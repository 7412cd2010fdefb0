package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yunkbaza/Softtek/internal/platform/apierr"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, rec.Body.String())
	}
	return envelope.Error.Code, envelope.Error.Message
}

func newErrorTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/assessments", nil)
	return c, rec
}

func TestRespondServiceErrorKeepsClientClassMessage(t *testing.T) {
	t.Parallel()
	c, rec := newErrorTestContext(t)

	err := apierr.New(http.StatusBadRequest, "invalid_payload", errors.New("score is required"))
	respondServiceError(c, testLogger(), err, "could not persist assessment")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	code, message := decodeEnvelope(t, rec)
	if code != "invalid_payload" {
		t.Fatalf("unexpected code: got=%q want=%q", code, "invalid_payload")
	}
	if message != "score is required" {
		t.Fatalf("unexpected message: got=%q want=%q", message, "score is required")
	}
}

func TestRespondServiceErrorHidesInternalDetail(t *testing.T) {
	t.Parallel()
	c, rec := newErrorTestContext(t)

	respondServiceError(c, testLogger(), errors.New("pq: connection refused"), "could not persist assessment")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	code, message := decodeEnvelope(t, rec)
	if code != "internal_error" {
		t.Fatalf("unexpected code: got=%q want=%q", code, "internal_error")
	}
	if message != "could not persist assessment" {
		t.Fatalf("driver error must not leak: got=%q", message)
	}
}
