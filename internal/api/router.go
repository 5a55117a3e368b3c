package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/handler"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/middleware"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/bot"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/game"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	GameController  game.ControllerInterface
	BotService      *bot.Service
	VariantRegistry *variant.Registry
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BotService)
	variantHandler := handler.NewVariantHandler(cfg.VariantRegistry)

	// Create middleware
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(requestIDMiddleware)
	api.Use(loggingMiddleware)

	// Variant catalogue routes
	api.HandleFunc("/variants", variantHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/variants/{name}", variantHandler.Get).Methods(http.MethodGet)

	// Game routes
	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{game_id}/roll", gameHandler.Roll).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/moves", gameHandler.Move).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/legal-moves", gameHandler.LegalMoves).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/set-player", gameHandler.SetPlayer).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/ai-move", gameHandler.AIMove).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
