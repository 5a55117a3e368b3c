package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/middleware"
)

// Logging creates logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID creates request id middleware for the API
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
