package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/random"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/game"
)

// Difficulty names accepted by PlayMove
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	// DefaultDifficulty is used when the caller does not name one
	DefaultDifficulty = DifficultyMedium
)

// NoMovesMessage is returned when the bot has nothing to play and passes
const NoMovesMessage = "No legal moves available"

// PlayResult is the outcome of asking the bot to take one move
type PlayResult struct {
	// Played is false when there was no legal move and the turn passed
	Played bool
	Move   model.Move
	Result *game.MoveResult
	// Message is set when the bot passed
	Message string
}

// Service plays moves for the current player using a per-difficulty strategy
type Service struct {
	controller game.ControllerInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(controller game.ControllerInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies builds the standard difficulty table: easy plays
// randomly, medium plays greedily with some slack, hard always plays the
// best-scoring move.
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		DifficultyEasy:   NewRandomStrategy(rnd),
		DifficultyMedium: NewGreedyStrategy(rnd, 30, 3),
		DifficultyHard:   NewGreedyStrategy(rnd, 0, 1),
	}
}

// PlayMove selects and executes one move for the current player. When no
// move is legal the turn is passed instead.
func (s *Service) PlayMove(ctx context.Context, gameID model.GameID, difficulty string) (*PlayResult, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	strategy, ok := s.strategies[difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q: %w", difficulty, model.ErrInvalidDifficulty)
	}

	session, err := s.controller.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	board := session.Board
	if board.GameOver() {
		return nil, model.ErrGameOver
	}
	if board.State != model.TurnStateDiceActive {
		return nil, fmt.Errorf("must roll dice first: %w", model.ErrInvalidStateTransition)
	}

	legal, err := s.controller.GetLegalMoves(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if len(legal) == 0 {
		if _, err := s.controller.EndTurn(ctx, gameID); err != nil {
			return nil, err
		}
		s.logger.Info("bot passed",
			slog.String("game_id", string(gameID)),
			slog.String("difficulty", difficulty),
		)
		return &PlayResult{Message: NoMovesMessage}, nil
	}

	move := strategy.ChooseMove(board, session.Rules, legal)
	result, err := s.controller.MakeMove(ctx, gameID, move)
	if err != nil {
		return nil, err
	}

	s.logger.Info("bot move played",
		slog.String("game_id", string(gameID)),
		slog.String("difficulty", difficulty),
		slog.String("move", move.String()),
		slog.Bool("turn_complete", result.TurnComplete),
		slog.Bool("game_over", result.GameOver),
	)

	return &PlayResult{Played: true, Move: move, Result: result}, nil
}
