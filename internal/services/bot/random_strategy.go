package bot

import (
	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/random"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// RandomStrategy picks a uniformly random legal move
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseMove returns a random element of the legal move list
func (s *RandomStrategy) ChooseMove(board *model.Board, rules *model.RuleConfig, legal []model.Move) model.Move {
	return legal[s.random.Intn(len(legal))]
}
