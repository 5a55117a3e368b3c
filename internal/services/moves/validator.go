package moves

import (
	"fmt"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// Rule names used to prefix explanation lines, in evaluation order.
const (
	ruleMovement   = "movement"
	ruleHitting    = "hitting"
	ruleBearingOff = "bearing_off"
	ruleForced     = "forced_moves"
)

type ruleResult struct {
	valid       bool
	explanation string
}

// Validate checks a proposed move against each of the variant's rules in a
// fixed order (movement, hitting, bearing off, forced moves) and returns
// whether the move is legal along with one "rule: explanation" line per
// rule consulted. Evaluation stops at the first rule that rejects, so the
// last line of a failed validation names the reason.
//
// A move passes Validate exactly when Legal would have produced it.
func Validate(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) (bool, []string) {
	steps := []struct {
		name  string
		check func(*model.Board, *model.RuleConfig, model.Color, model.Move) ruleResult
	}{
		{ruleMovement, checkMovement},
		{ruleHitting, checkHitting},
		{ruleBearingOff, checkBearingOff},
		{ruleForced, checkForcedMoves},
	}

	var explanations []string
	for _, step := range steps {
		res := step.check(b, rules, player, move)
		explanations = append(explanations, step.name+": "+res.explanation)
		if !res.valid {
			return false, explanations
		}
	}
	return true, explanations
}

func checkMovement(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) ruleResult {
	if b.Bar[player] > 0 && move.Type != model.MoveEnter {
		return ruleResult{false, "Checkers on the bar must enter first"}
	}

	if !dieAvailable(b, rules, player, move) {
		return ruleResult{false, fmt.Sprintf("Die value %d is not available", move.Die)}
	}

	switch move.Type {
	case model.MoveEnter:
		if move.From != 0 {
			return ruleResult{false, "Enter moves come from the bar, not a point"}
		}
		if b.Bar[player] == 0 {
			return ruleResult{false, "No checkers on the bar to enter"}
		}
		expected := rules.EntryPoint(player, move.Die)
		if move.To != expected {
			return ruleResult{false, fmt.Sprintf("Move distance doesn't match die value. Expected %d, got %d", expected, move.To)}
		}
		if !b.InRange(move.To) {
			return ruleResult{false, fmt.Sprintf("Point %d is not on the board", move.To)}
		}
		if res := landingResult(b, rules, player, move.To); res != nil {
			return *res
		}

	case model.MoveNormal:
		from := b.Point(move.From)
		if from == nil {
			return ruleResult{false, fmt.Sprintf("Point %d is not on the board", move.From)}
		}
		if from.Count(player) == 0 {
			return ruleResult{false, fmt.Sprintf("No checker on point %d to move", move.From)}
		}
		if from.IsPinnedFor(player) {
			return ruleResult{false, fmt.Sprintf("Checker on point %d is pinned", move.From)}
		}
		expected := move.From + rules.Direction[player]*move.Die
		if move.To != expected {
			return ruleResult{false, fmt.Sprintf("Move distance doesn't match die value. Expected %d, got %d", expected, move.To)}
		}
		if !b.InRange(move.To) {
			return ruleResult{false, fmt.Sprintf("Point %d is not on the board", move.To)}
		}
		if res := landingResult(b, rules, player, move.To); res != nil {
			return *res
		}

	case model.MoveBearOff:
		if move.To != 0 {
			return ruleResult{false, "Bear-off moves have no target point"}
		}
		from := b.Point(move.From)
		if from == nil {
			return ruleResult{false, fmt.Sprintf("Point %d is not on the board", move.From)}
		}
		if from.Count(player) == 0 {
			return ruleResult{false, fmt.Sprintf("No checker on point %d to move", move.From)}
		}
		if from.IsPinnedFor(player) {
			return ruleResult{false, fmt.Sprintf("Checker on point %d is pinned", move.From)}
		}

	default:
		return ruleResult{false, fmt.Sprintf("Unknown move type %q", move.Type)}
	}

	return ruleResult{true, "Move is valid"}
}

// landingResult returns the movement failure for an unlandable target, or
// nil when the landing is allowed.
func landingResult(b *model.Board, rules *model.RuleConfig, player model.Color, target int) *ruleResult {
	if Resolve(b.Point(target), player, rules) != Block {
		return nil
	}
	if b.Point(target).IsPinnedFor(player) {
		return &ruleResult{false, fmt.Sprintf("Point %d is held by an opponent pin", target)}
	}
	return &ruleResult{false, fmt.Sprintf("Point %d is blocked (has 2+ opponent pieces)", target)}
}

func checkHitting(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) ruleResult {
	if move.Type == model.MoveNormal || move.Type == model.MoveEnter {
		opp := player.Opponent()
		pt := b.Point(move.To)
		if pt != nil && pt.IsBlot(opp) && !pt.IsPinnedFor(opp) {
			if rules.Hitting.CanHit {
				return ruleResult{true, fmt.Sprintf("Will hit opponent blot on point %d", move.To)}
			}
			if rules.Hitting.PinInstead {
				return ruleResult{true, fmt.Sprintf("Will pin opponent blot on point %d", move.To)}
			}
		}
	}

	if !rules.Hitting.CanHit {
		return ruleResult{true, "Hitting not applicable"}
	}
	return ruleResult{true, "No hit"}
}

func checkBearingOff(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) ruleResult {
	if move.Type != model.MoveBearOff {
		return ruleResult{true, "Bearing off is valid"}
	}

	if !rules.BearingOff.Enabled {
		return ruleResult{false, "Bearing off not enabled in this variant"}
	}
	if !canBearOff(b, rules, player) {
		return ruleResult{false, "All pieces must be in home board before bearing off"}
	}

	lo, hi := rules.HomeRange(player)
	if move.From < lo || move.From > hi {
		return ruleResult{false, fmt.Sprintf("Can only bear off from points %d-%d", lo, hi)}
	}

	dist := rules.BearingDistance(player, move.From)
	if move.Die != dist && !(move.Die > dist && dist == maxBearingDistance(b, rules, player)) {
		return ruleResult{false, fmt.Sprintf("Die %d cannot bear off from point %d", move.Die, move.From)}
	}

	return ruleResult{true, "Bearing off is valid"}
}

func checkForcedMoves(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) ruleResult {
	passed := ruleResult{true, "Forced move check passed"}

	if !rules.ForcedMoves.MustUseHigherIfOnlyOne {
		return passed
	}
	if len(b.RemainingDice) != 2 || b.RemainingDice[0] == b.RemainingDice[1] {
		return passed
	}

	var unfiltered []model.Move
	for _, die := range distinctDice(b.RemainingDice) {
		unfiltered = append(unfiltered, candidatesForDie(b, rules, player, die)...)
	}
	unfiltered = append(unfiltered, combinedCandidates(b, rules, player)...)

	// A move the earlier rules would reject is not this rule's business.
	if !containsMove(unfiltered, move) {
		return passed
	}

	filtered := applyHigherDieRule(b, rules, player, unfiltered)
	if !containsMove(filtered, move) {
		hi := b.RemainingDice[0]
		if b.RemainingDice[1] > hi {
			hi = b.RemainingDice[1]
		}
		return ruleResult{false, fmt.Sprintf("Must use the higher die (%d) when only one die can be played", hi)}
	}
	return passed
}

func containsMove(moves []model.Move, move model.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}

// dieAvailable reports whether the move's die value can be paid for from
// the remaining dice: either one die shows the value, or both dice together
// sum to it and the variant allows that kind of combined move.
func dieAvailable(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) bool {
	if b.HasDie(move.Die) {
		return true
	}
	if len(b.RemainingDice) != 2 {
		return false
	}
	d1, d2 := b.RemainingDice[0], b.RemainingDice[1]
	if d1 == d2 || d1+d2 != move.Die {
		return false
	}

	switch move.Type {
	case model.MoveNormal:
		return rules.Combined.Normal && !canBearOff(b, rules, player)
	case model.MoveEnter:
		return rules.Combined.Enter
	case model.MoveBearOff:
		return rules.Combined.BearOff
	}
	return false
}

// Apply executes a move against the board: it relocates the checker,
// performs any hit or pin on the landing point, releases a pin when the
// last pinning checker leaves, and consumes the dice the move spends.
// The move must already have passed validation.
func Apply(b *model.Board, rules *model.RuleConfig, player model.Color, move model.Move) error {
	if err := consumeDice(b, move); err != nil {
		return err
	}

	switch move.Type {
	case model.MoveEnter:
		b.Bar[player]--
		land(b, rules, player, move.To)

	case model.MoveNormal:
		liftChecker(b, player, move.From)
		land(b, rules, player, move.To)

	case model.MoveBearOff:
		liftChecker(b, player, move.From)
		b.BorneOff[player]++

	default:
		return fmt.Errorf("unknown move type %q: %w", move.Type, model.ErrIllegalMove)
	}
	return nil
}

// consumeDice pays for the move: one die showing the value, or both
// remaining dice when the move spends their sum.
func consumeDice(b *model.Board, move model.Move) error {
	if b.ConsumeDie(move.Die) {
		return nil
	}
	if len(b.RemainingDice) == 2 {
		d1, d2 := b.RemainingDice[0], b.RemainingDice[1]
		if d1 != d2 && d1+d2 == move.Die {
			b.ConsumeDie(d1)
			b.ConsumeDie(d2)
			return nil
		}
	}
	return fmt.Errorf("no dice available for %s: %w", move, model.ErrIllegalMove)
}

// liftChecker removes one of the player's checkers from the point and
// releases the opponent's trapped blot if this was the last pinning checker.
func liftChecker(b *model.Board, player model.Color, number int) {
	pt := b.Point(number)
	pt.Remove(player, 1)
	if pt.IsPinnedFor(player.Opponent()) && pt.Count(player) == 0 {
		pt.Pinned = ""
	}
}

// land places the player's checker on the point, hitting or pinning an
// opponent blot according to the variant.
func land(b *model.Board, rules *model.RuleConfig, player model.Color, number int) {
	pt := b.Point(number)
	opp := player.Opponent()

	switch Resolve(pt, player, rules) {
	case Hit:
		pt.Remove(opp, 1)
		b.Bar[opp]++
	case Pin:
		pt.Pinned = opp
	}
	pt.Add(player, 1)
}
