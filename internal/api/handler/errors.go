package handler

import (
	"net/http"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeInvalidVariant    = apierr.CodeInvalidVariant
	CodeVariantNotFound   = apierr.CodeVariantNotFound
	CodeGameNotFound      = apierr.CodeGameNotFound
	CodeIllegalMove       = apierr.CodeIllegalMove
	CodeInvalidState      = apierr.CodeInvalidState
	CodeGameOver          = apierr.CodeGameOver
	CodeMustUseAllDice    = apierr.CodeMustUseAllDice
	CodeStartingPlayerSet = apierr.CodeStartingPlayerSet
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
