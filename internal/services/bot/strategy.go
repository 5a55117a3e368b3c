package bot

import "github.com/mihailDamchevski/TABLA-BAKI/internal/model"

// Strategy defines how a bot chooses among the legal moves of a turn.
// Implementations must treat the board and rules as read-only and are only
// called with a non-empty move list.
type Strategy interface {
	ChooseMove(board *model.Board, rules *model.RuleConfig, legal []model.Move) model.Move
}
