package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/clock"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/random"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/moves"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/storage"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PassMessage is returned whenever a roll leaves the player without a
// single legal move and the turn passes automatically.
const PassMessage = "No legal moves; turn passed to opponent."

// RollResult is the outcome of rolling the dice.
type RollResult struct {
	Dice          [2]int
	RemainingDice []int
	LegalMoves    []model.Move
	ForcedPass    bool
	Message       string
}

// MoveResult is the outcome of a successfully executed move.
type MoveResult struct {
	Explanations  []string
	RemainingDice []int
	// LegalMoves holds the mover's follow-up moves; empty once the turn
	// has passed to the opponent.
	LegalMoves   []model.Move
	TurnComplete bool
	GameOver     bool
	Winner       model.Color
}

// Controller manages game sessions and turn flow
type Controller struct {
	storage  storage.Storage
	variants *variant.Registry
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	// Turn operations on the same game are serialized through a per-game
	// mutex so concurrent requests cannot interleave roll/move/save.
	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	variants *variant.Registry,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		variants: variants,
		clock:    clock,
		random:   random,
		logger:   logger,
		locks:    make(map[model.GameID]*sync.Mutex),
	}
}

// CreateGame starts a new game of the named variant. White moves first
// unless SetStartingPlayer changes that before the first roll.
func (c *Controller) CreateGame(ctx context.Context, variantName string) (*model.GameSession, error) {
	rules, err := c.variants.Get(variantName)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.GameSession{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		Variant:   rules.Name,
		Board:     variant.InitialBoard(rules),
		Rules:     rules,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(session.ID)),
		slog.String("variant", rules.Name),
	)

	return session, nil
}

// GetGame retrieves a game session by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, gameID)
}

// ListGames retrieves every stored game session
func (c *Controller) ListGames(ctx context.Context) ([]*model.GameSession, error) {
	return c.storage.ListSessions(ctx)
}

// DeleteGame removes a game session
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if err := c.storage.DeleteSession(ctx, gameID); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.locks, gameID)
	c.mu.Unlock()

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// Roll rolls the dice for the current player and computes their legal
// moves. A roll with no legal move passes the turn immediately.
func (c *Controller) Roll(ctx context.Context, gameID model.GameID) (*RollResult, error) {
	unlock := c.lockGame(gameID)
	defer unlock()

	session, err := c.storage.GetSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	board := session.Board
	if board.GameOver() {
		return nil, model.ErrGameOver
	}
	if board.State != model.TurnStateAwaitingRoll {
		return nil, fmt.Errorf("dice already rolled this turn: %w", model.ErrInvalidStateTransition)
	}

	d1, d2 := c.random.Intn(6)+1, c.random.Intn(6)+1
	board.Dice = [2]int{d1, d2}
	board.ConsumedDice = nil
	board.RemainingDice = nil
	uses := 2
	if d1 == d2 {
		uses = session.Rules.DoublesUses
	}
	for i := 0; i < uses; i++ {
		die := d1
		if i == 1 && d1 != d2 {
			die = d2
		}
		board.RemainingDice = append(board.RemainingDice, die)
	}
	board.State = model.TurnStateDiceActive
	board.Turn++

	result := &RollResult{Dice: board.Dice}
	result.LegalMoves = moves.Legal(board, session.Rules, board.CurrentPlayer)

	if len(result.LegalMoves) == 0 {
		c.switchPlayer(board)
		result.ForcedPass = true
		result.Message = PassMessage
	}
	result.RemainingDice = append([]int(nil), board.RemainingDice...)

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("dice rolled",
		slog.String("game_id", string(gameID)),
		slog.Int("die1", d1),
		slog.Int("die2", d2),
		slog.Int("legal_moves", len(result.LegalMoves)),
		slog.Bool("forced_pass", result.ForcedPass),
	)

	return result, nil
}

// GetLegalMoves computes the current player's legal moves without
// changing any state.
func (c *Controller) GetLegalMoves(ctx context.Context, gameID model.GameID) ([]model.Move, error) {
	session, err := c.storage.GetSession(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return moves.Legal(session.Board, session.Rules, session.Board.CurrentPlayer), nil
}

// MakeMove validates and executes one move for the current player. The
// turn passes automatically once no dice remain or nothing can move, and
// the game ends when the mover's last checker is borne off.
func (c *Controller) MakeMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error) {
	unlock := c.lockGame(gameID)
	defer unlock()

	session, err := c.storage.GetSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	board := session.Board
	if board.GameOver() {
		return nil, model.ErrGameOver
	}
	if board.State != model.TurnStateDiceActive {
		return nil, fmt.Errorf("must roll before moving: %w", model.ErrInvalidStateTransition)
	}

	player := board.CurrentPlayer
	valid, explanations := moves.Validate(board, session.Rules, player, move)
	if !valid {
		return nil, &model.IllegalMoveError{Move: move, Explanations: explanations}
	}

	if err := moves.Apply(board, session.Rules, player, move); err != nil {
		return nil, err
	}

	result := &MoveResult{Explanations: explanations}

	if board.BorneOff[player] >= board.Checkers[player] {
		board.State = model.TurnStateGameOver
		board.Winner = player
		board.ClearDice()
		result.GameOver = true
		result.Winner = player

		c.logger.Info("game won",
			slog.String("game_id", string(gameID)),
			slog.String("winner", string(player)),
			slog.Int("turns", board.Turn),
		)
	} else if len(board.RemainingDice) == 0 {
		c.switchPlayer(board)
		result.TurnComplete = true
	} else {
		result.LegalMoves = moves.Legal(board, session.Rules, player)
		if len(result.LegalMoves) == 0 {
			c.switchPlayer(board)
			result.TurnComplete = true
		}
	}
	result.RemainingDice = append([]int(nil), board.RemainingDice...)

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("move made",
		slog.String("game_id", string(gameID)),
		slog.String("player", string(player)),
		slog.String("move", move.String()),
		slog.Bool("turn_complete", result.TurnComplete),
		slog.Bool("game_over", result.GameOver),
	)

	return result, nil
}

// EndTurn passes the turn explicitly. Variants that force full dice use
// reject it while a legal move remains.
func (c *Controller) EndTurn(ctx context.Context, gameID model.GameID) (*model.GameSession, error) {
	unlock := c.lockGame(gameID)
	defer unlock()

	session, err := c.storage.GetSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	board := session.Board
	if board.GameOver() {
		return nil, model.ErrGameOver
	}
	if board.State != model.TurnStateDiceActive {
		return nil, fmt.Errorf("no turn in progress: %w", model.ErrInvalidStateTransition)
	}

	if session.Rules.ForcedMoves.MustUseAllDice {
		if remaining := moves.Legal(board, session.Rules, board.CurrentPlayer); len(remaining) > 0 {
			return nil, model.ErrMustUseAllDice
		}
	}

	c.switchPlayer(board)
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("turn ended",
		slog.String("game_id", string(gameID)),
		slog.String("next_player", string(board.CurrentPlayer)),
	)

	return session, nil
}

// SetStartingPlayer overrides which color moves first. Only allowed
// before the first roll.
func (c *Controller) SetStartingPlayer(ctx context.Context, gameID model.GameID, player model.Color) (*model.GameSession, error) {
	unlock := c.lockGame(gameID)
	defer unlock()

	session, err := c.storage.GetSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	board := session.Board
	if board.GameOver() {
		return nil, model.ErrGameOver
	}
	if board.Turn > 0 || board.DiceRolled() {
		return nil, model.ErrStartingPlayerAlreadySet
	}

	board.CurrentPlayer = player
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("starting player set",
		slog.String("game_id", string(gameID)),
		slog.String("player", string(player)),
	)

	return session, nil
}

// switchPlayer hands the turn to the opponent and resets dice state
func (c *Controller) switchPlayer(board *model.Board) {
	board.CurrentPlayer = board.CurrentPlayer.Opponent()
	board.ClearDice()
	board.State = model.TurnStateAwaitingRoll
}

// lockGame acquires the per-game mutex, creating it on first use
func (c *Controller) lockGame(gameID model.GameID) func() {
	c.mu.Lock()
	lock, ok := c.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[gameID] = lock
	}
	c.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, variantName string) (*model.GameSession, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.GameSession, error)
	ListGames(ctx context.Context) ([]*model.GameSession, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	Roll(ctx context.Context, gameID model.GameID) (*RollResult, error)
	GetLegalMoves(ctx context.Context, gameID model.GameID) ([]model.Move, error)
	MakeMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error)
	EndTurn(ctx context.Context, gameID model.GameID) (*model.GameSession, error)
	SetStartingPlayer(ctx context.Context, gameID model.GameID, player model.Color) (*model.GameSession, error)
}

var _ ControllerInterface = (*Controller)(nil)
