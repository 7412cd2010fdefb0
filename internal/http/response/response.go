package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the only error shape clients ever see. Code is the stable
// machine-readable kind; Details carries field-level validation messages.
// Internal error values are logged server-side and never serialized here.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorEnvelope{Error: APIError{Code: code, Message: message}})
}

func RespondInvalid(c *gin.Context, code string, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{
		Code:    code,
		Message: "request failed validation",
		Details: details,
	}})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
