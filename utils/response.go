package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-checkable error kinds carried in the "error" field of every
// failure response.
const (
	KindInsufficientData   = "insufficient_data"
	KindInconsistentData   = "inconsistent_data"
	KindDivisionByZero     = "division_by_zero"
	KindDuplicateName      = "duplicate_name"
	KindNotFound           = "not_found"
	KindCannotDeleteActive = "cannot_delete_active"
	KindConflict           = "conflict"
	KindUnauthorized       = "unauthorized"
	KindInvalidToken       = "invalid_token"
	KindValidation         = "validation_failed"
	KindInternal           = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func SendError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    status,
	})
}

func SendValidationError(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, KindValidation, message)
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, KindInternal, message)
}
