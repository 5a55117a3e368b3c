package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError. Explanations is populated for rejected
// moves and carries the per-rule verdicts in evaluation order.
type ErrorResponse struct {
	Error        APIError `json:"error"`
	Explanations []string `json:"explanations,omitempty"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidVariant    = "INVALID_VARIANT"
	CodeVariantNotFound   = "VARIANT_NOT_FOUND"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeIllegalMove       = "ILLEGAL_MOVE"
	CodeInvalidState      = "INVALID_STATE"
	CodeGameOver          = "GAME_OVER"
	CodeMustUseAllDice    = "MUST_USE_ALL_DICE"
	CodeStartingPlayerSet = "STARTING_PLAYER_SET"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status       int
	apiError     APIError
	explanations []string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// newHTTPError builds an httpError without explanations
func newHTTPError(status int, code, message string) *httpError {
	return &httpError{status: status, apiError: APIError{Code: code, Message: message}}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError, Explanations: he.explanations})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// A rejected move keeps its rule explanations so the client can show
	// why it was refused
	var illegal *model.IllegalMoveError
	if errors.As(err, &illegal) {
		return &httpError{
			status: http.StatusBadRequest,
			apiError: APIError{
				Code:    CodeIllegalMove,
				Message: "Invalid move: " + strings.Join(illegal.Explanations, "; "),
			},
			explanations: illegal.Explanations,
		}
	}

	var cfgErr *variant.ConfigError
	if errors.As(err, &cfgErr) {
		return newHTTPError(http.StatusBadRequest, CodeInvalidVariant, cfgErr.Error())
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return newHTTPError(http.StatusNotFound, CodeGameNotFound, "Game not found")
	case errors.Is(err, model.ErrVariantNotFound):
		return newHTTPError(http.StatusNotFound, CodeVariantNotFound, "Variant not found")
	case errors.Is(err, model.ErrGameOver):
		return newHTTPError(http.StatusConflict, CodeGameOver, "Game is already over")
	case errors.Is(err, model.ErrMustUseAllDice):
		return newHTTPError(http.StatusConflict, CodeMustUseAllDice, "A playable die remains and must be used")
	case errors.Is(err, model.ErrStartingPlayerAlreadySet):
		return newHTTPError(http.StatusConflict, CodeStartingPlayerSet, "Starting player can only be set before the first roll")
	case errors.Is(err, model.ErrInvalidStateTransition):
		return newHTTPError(http.StatusConflict, CodeInvalidState, "Operation not valid in the current turn state")
	case errors.Is(err, model.ErrIllegalMove):
		return newHTTPError(http.StatusBadRequest, CodeIllegalMove, "Illegal move")
	case errors.Is(err, model.ErrInvalidColor):
		return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, "Player must be white or black")
	case errors.Is(err, model.ErrInvalidDifficulty):
		return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, "Difficulty must be easy, medium, or hard")

	default:
		return newHTTPError(http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return newHTTPError(http.StatusInternalServerError, CodeInternalError, "Internal server error")
}
