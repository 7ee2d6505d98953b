package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body for every non-2xx reply. Successful replies
// carry the bare entity or array, matching the original wire contract.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func BadRequest(c *gin.Context, message string, details ...FieldError) {
	c.JSON(http.StatusBadRequest, &ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &ErrorResponse{
		Error: message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &ErrorResponse{
		Error: message,
	})
}
