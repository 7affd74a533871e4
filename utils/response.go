package utils

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body shape shared by every endpoint.
// Stack is only populated outside release mode.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Stack   string            `json:"stack,omitempty"`
}

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

func SendErrorWithFields(c *gin.Context, status int, message string, errors map[string]string) {
	c.JSON(status, ErrorResponse{Message: message, Errors: errors})
}

// SendValidationError reports per-field 400 validation failures.
func SendValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Bad Request",
		Errors:  errors,
	})
}

func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

func SendForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Message: message})
}

// SendInternalError returns a sanitized 500. The stack trace is attached in
// debug mode only.
func SendInternalError(c *gin.Context, message string) {
	resp := ErrorResponse{Message: message}
	if gin.Mode() == gin.DebugMode {
		resp.Stack = string(debug.Stack())
	}
	c.JSON(http.StatusInternalServerError, resp)
}
