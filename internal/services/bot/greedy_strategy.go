package bot

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/random"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/moves"
)

// Feature indices for move scoring
const (
	featBearOff = iota
	featEnter
	featHit
	featProgress
	featPointMade
	featDie
	numFeatures
)

// scoreWeights ranks bearing off above entering from the bar, entering
// above hitting, then raw pip progress, made points and bigger dice.
var scoreWeights = []float64{
	featBearOff:   1000,
	featEnter:     500,
	featHit:       300,
	featProgress:  10,
	featPointMade: 50,
	featDie:       5,
}

// GreedyStrategy scores every legal move against a weight vector and plays
// the best one. A non-zero explore chance makes it occasionally pick among
// its few top candidates instead, which keeps medium bots beatable.
type GreedyStrategy struct {
	random random.Random

	// exploreChance is the percent chance of sampling from the top
	// topMoves candidates rather than playing the single best move
	exploreChance int
	topMoves      int
}

// NewGreedyStrategy creates a GreedyStrategy. exploreChance 0 plays the
// best-scoring move every time.
func NewGreedyStrategy(rnd random.Random, exploreChance, topMoves int) *GreedyStrategy {
	return &GreedyStrategy{
		random:        rnd,
		exploreChance: exploreChance,
		topMoves:      topMoves,
	}
}

var _ Strategy = (*GreedyStrategy)(nil)

// ChooseMove ranks the legal moves and picks the best, or one of the top
// few when exploring
func (s *GreedyStrategy) ChooseMove(board *model.Board, rules *model.RuleConfig, legal []model.Move) model.Move {
	type scoredMove struct {
		move  model.Move
		score float64
	}

	player := board.CurrentPlayer
	ranked := make([]scoredMove, len(legal))
	for i, m := range legal {
		ranked[i] = scoredMove{move: m, score: scoreMove(board, rules, player, m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if s.exploreChance > 0 && s.random.Intn(100) < s.exploreChance {
		top := s.topMoves
		if top > len(ranked) {
			top = len(ranked)
		}
		return ranked[s.random.Intn(top)].move
	}

	return ranked[0].move
}

// scoreMove builds the move's feature vector and weighs it
func scoreMove(board *model.Board, rules *model.RuleConfig, player model.Color, m model.Move) float64 {
	features := make([]float64, numFeatures)

	switch m.Type {
	case model.MoveBearOff:
		features[featBearOff] = 1
	case model.MoveEnter:
		features[featEnter] = 1
	case model.MoveNormal:
		features[featProgress] = float64(rules.Direction[player] * (m.To - m.From))
	}

	if m.Type != model.MoveBearOff {
		if pt := board.Point(m.To); pt != nil {
			switch moves.Resolve(pt, player, rules) {
			case moves.Hit, moves.Pin:
				features[featHit] = 1
			}
			if pt.Count(player) == 1 {
				features[featPointMade] = 1
			}
		}
	}

	features[featDie] = float64(m.Die)

	return floats.Dot(scoreWeights, features)
}
