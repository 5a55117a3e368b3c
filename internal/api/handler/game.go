package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/request"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/response"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/bot"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller game.ControllerInterface
	botService *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface, botService *bot.Service) *GameHandler {
	return &GameHandler{
		controller: controller,
		botService: botService,
	}
}

// gameState assembles the full game payload for a session, including the
// current player's legal moves
func (h *GameHandler) gameState(r *http.Request, gameID model.GameID) (response.GameState, error) {
	session, err := h.controller.GetGame(r.Context(), gameID)
	if err != nil {
		return response.GameState{}, err
	}

	legal, err := h.controller.GetLegalMoves(r.Context(), gameID)
	if err != nil {
		return response.GameState{}, err
	}

	return response.GameStateFromSession(session, legal), nil
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Variant == "" {
		WriteError(w, NewInvalidRequestError("variant is required"))
		return
	}

	session, err := h.controller.CreateGame(r.Context(), req.Variant)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameStateFromSession(session, nil)
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	state, err := h.gameState(r, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, state)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.controller.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	games := make([]response.GameSummary, len(sessions))
	for i, s := range sessions {
		games[i] = response.GameSummaryFromSession(s)
	}

	response.JSON(w, http.StatusOK, response.ListGamesResponse{Games: games})
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	if err := h.controller.DeleteGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Game deleted"})
}

// Roll handles POST /api/v1/games/{game_id}/roll
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	result, err := h.controller.Roll(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.gameState(r, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.RollResponse{
		Dice:       []int{result.Dice[0], result.Dice[1]},
		LegalMoves: response.LegalMovesFromModel(result.LegalMoves),
		GameState:  state,
		Message:    result.Message,
	}
	response.JSON(w, http.StatusOK, resp)
}

// Move handles POST /api/v1/games/{game_id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	moveType := model.MoveType(req.MoveType)
	switch moveType {
	case model.MoveNormal, model.MoveEnter, model.MoveBearOff:
	default:
		WriteError(w, NewInvalidRequestError("move_type must be normal, enter, or bear_off"))
		return
	}

	move := model.Move{
		Type: moveType,
		From: req.FromPoint,
		To:   req.ToPoint,
		Die:  req.DieValue,
	}

	result, err := h.controller.MakeMove(r.Context(), gameID, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.gameState(r, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.MoveResponse{
		Success:      true,
		Explanations: result.Explanations,
		GameState:    state,
		TurnComplete: result.TurnComplete,
		GameOver:     result.GameOver,
		Winner:       string(result.Winner),
	}
	response.JSON(w, http.StatusOK, resp)
}

// LegalMoves handles GET /api/v1/games/{game_id}/legal-moves
func (h *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	session, err := h.controller.GetGame(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if !session.Board.DiceRolled() {
		resp := response.LegalMovesResponse{
			LegalMoves: []response.LegalMove{},
			Message:    "Roll dice first",
		}
		response.JSON(w, http.StatusOK, resp)
		return
	}

	legal, err := h.controller.GetLegalMoves(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.LegalMovesResponse{
		LegalMoves: response.LegalMovesFromModel(legal),
		Dice:       []int{session.Board.Dice[0], session.Board.Dice[1]},
	}
	response.JSON(w, http.StatusOK, resp)
}

// EndTurn handles POST /api/v1/games/{game_id}/end-turn
func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	session, err := h.controller.EndTurn(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.EndTurnResponse{
		Message:   fmt.Sprintf("Turn passed to %s", session.Board.CurrentPlayer),
		GameState: response.GameStateFromSession(session, nil),
	}
	response.JSON(w, http.StatusOK, resp)
}

// SetPlayer handles POST /api/v1/games/{game_id}/set-player
func (h *GameHandler) SetPlayer(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.SetPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := model.ParseColor(req.Player)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.controller.SetStartingPlayer(r.Context(), gameID, player)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SetPlayerResponse{
		Message:   fmt.Sprintf("Starting player set to %s", player),
		GameState: response.GameStateFromSession(session, nil),
	}
	response.JSON(w, http.StatusOK, resp)
}

// AIMove handles POST /api/v1/games/{game_id}/ai-move
func (h *GameHandler) AIMove(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	// The difficulty is optional, so an empty body is allowed
	var req request.AIMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.botService.PlayMove(r.Context(), gameID, req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.gameState(r, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.AIMoveResponse{
		Success:   result.Played,
		GameState: state,
	}
	if result.Played {
		move := response.LegalMoveFromModel(result.Move)
		resp.Move = &move
		resp.Explanations = result.Result.Explanations
	} else {
		resp.Message = result.Message
	}
	response.JSON(w, http.StatusOK, resp)
}
