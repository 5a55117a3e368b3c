package moves

import (
	"sort"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// Legal computes every move the player may make with the dice still in hand.
// Checkers on the bar must enter before anything else moves, so while any
// are there only entry moves are produced. The result is deterministic:
// moves come back sorted by origin, then target, then die.
func Legal(b *model.Board, rules *model.RuleConfig, player model.Color) []model.Move {
	if b.GameOver() || len(b.RemainingDice) == 0 {
		return nil
	}

	var cands []model.Move
	for _, die := range distinctDice(b.RemainingDice) {
		cands = append(cands, candidatesForDie(b, rules, player, die)...)
	}
	cands = append(cands, combinedCandidates(b, rules, player)...)

	cands = applyHigherDieRule(b, rules, player, cands)
	sortMoves(cands)
	return cands
}

// candidatesForDie produces the single-die moves for one die value.
func candidatesForDie(b *model.Board, rules *model.RuleConfig, player model.Color, die int) []model.Move {
	if b.Bar[player] > 0 {
		var out []model.Move
		target := rules.EntryPoint(player, die)
		if b.InRange(target) && Resolve(b.Point(target), player, rules) != Block {
			out = append(out, model.Move{Type: model.MoveEnter, To: target, Die: die})
		}
		return out
	}

	dir := rules.Direction[player]
	var out []model.Move
	for i := range b.Points {
		from := &b.Points[i]
		if from.Count(player) == 0 || from.IsPinnedFor(player) {
			continue
		}
		to := from.Number + die*dir
		if !b.InRange(to) {
			continue
		}
		if Resolve(b.Point(to), player, rules) == Block {
			continue
		}
		out = append(out, model.Move{Type: model.MoveNormal, From: from.Number, To: to, Die: die})
	}

	if canBearOff(b, rules, player) {
		out = append(out, bearOffCandidates(b, rules, player, die)...)
	}
	return out
}

// combinedCandidates produces moves that spend both dice at once. Only a
// non-doubles roll with both dice still unused can combine, and each move
// type combines only where the variant allows it.
func combinedCandidates(b *model.Board, rules *model.RuleConfig, player model.Color) []model.Move {
	if len(b.RemainingDice) != 2 || b.RemainingDice[0] == b.RemainingDice[1] {
		return nil
	}
	sum := b.RemainingDice[0] + b.RemainingDice[1]

	if b.Bar[player] > 0 {
		if !rules.Combined.Enter {
			return nil
		}
		target := rules.EntryPoint(player, sum)
		if !b.InRange(target) || Resolve(b.Point(target), player, rules) == Block {
			return nil
		}
		return []model.Move{{Type: model.MoveEnter, To: target, Die: sum}}
	}

	var out []model.Move
	bearingOff := canBearOff(b, rules, player)

	if rules.Combined.Normal && !bearingOff {
		dir := rules.Direction[player]
		for i := range b.Points {
			from := &b.Points[i]
			if from.Count(player) == 0 || from.IsPinnedFor(player) {
				continue
			}
			to := from.Number + sum*dir
			if !b.InRange(to) {
				continue
			}
			if Resolve(b.Point(to), player, rules) == Block {
				continue
			}
			out = append(out, model.Move{Type: model.MoveNormal, From: from.Number, To: to, Die: sum})
		}
	}

	if rules.Combined.BearOff && bearingOff {
		out = append(out, bearOffCandidates(b, rules, player, sum)...)
	}
	return out
}

// bearOffCandidates lists the bear-off moves a single die value (or a
// combined sum) permits. A die may overshoot only from the farthest
// occupied home point.
func bearOffCandidates(b *model.Board, rules *model.RuleConfig, player model.Color, die int) []model.Move {
	lo, hi := rules.HomeRange(player)
	maxDist := maxBearingDistance(b, rules, player)

	var out []model.Move
	for n := lo; n <= hi; n++ {
		pt := b.Point(n)
		if pt.Count(player) == 0 || pt.IsPinnedFor(player) {
			continue
		}
		dist := rules.BearingDistance(player, n)
		if die == dist || (die > dist && dist == maxDist) {
			out = append(out, model.Move{Type: model.MoveBearOff, From: n, Die: die})
		}
	}
	return out
}

// canBearOff reports whether the player may bear off at all right now.
func canBearOff(b *model.Board, rules *model.RuleConfig, player model.Color) bool {
	if !rules.BearingOff.Enabled {
		return false
	}
	if !rules.BearingOff.AllInOuterBoard {
		return true
	}
	if b.Bar[player] > 0 {
		return false
	}

	lo, hi := rules.HomeRange(player)
	for i := range b.Points {
		pt := &b.Points[i]
		if pt.Count(player) == 0 {
			continue
		}
		if pt.Number < lo || pt.Number > hi {
			return false
		}
	}
	return true
}

// maxBearingDistance is the farthest occupied distance in the player's home
// board. Pinned checkers still count; they occupy their point even though
// they cannot move.
func maxBearingDistance(b *model.Board, rules *model.RuleConfig, player model.Color) int {
	lo, hi := rules.HomeRange(player)
	maxDist := 0
	for n := lo; n <= hi; n++ {
		if b.Point(n).Count(player) == 0 {
			continue
		}
		if d := rules.BearingDistance(player, n); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// applyHigherDieRule enforces the higher-die priority: when only one of two
// different dice can be played this turn, it must be the higher one. The
// check is a one-move lookahead over every candidate; if any candidate
// leaves the other die playable, both dice can be played and nothing is
// forced.
func applyHigherDieRule(b *model.Board, rules *model.RuleConfig, player model.Color, cands []model.Move) []model.Move {
	if !rules.ForcedMoves.MustUseHigherIfOnlyOne || len(cands) == 0 {
		return cands
	}
	if len(b.RemainingDice) != 2 || b.RemainingDice[0] == b.RemainingDice[1] {
		return cands
	}

	lo, hi := b.RemainingDice[0], b.RemainingDice[1]
	if lo > hi {
		lo, hi = hi, lo
	}

	for _, m := range cands {
		// A combined move spends both dice by itself.
		if m.Die == lo+hi {
			return cands
		}
		other := lo
		if m.Die == lo {
			other = hi
		}
		next := b.Clone()
		if err := Apply(next, rules, player, m); err != nil {
			continue
		}
		if len(candidatesForDie(next, rules, player, other)) > 0 {
			return cands
		}
	}

	var higher []model.Move
	for _, m := range cands {
		if m.Die == hi {
			higher = append(higher, m)
		}
	}
	if len(higher) == 0 {
		return cands
	}
	return higher
}

func distinctDice(dice []int) []int {
	out := make([]int, 0, 2)
	for _, d := range dice {
		seen := false
		for _, v := range out {
			if v == d {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

func sortMoves(ms []model.Move) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].From != ms[j].From {
			return ms[i].From < ms[j].From
		}
		if ms[i].To != ms[j].To {
			return ms[i].To < ms[j].To
		}
		return ms[i].Die < ms[j].Die
	})
}
