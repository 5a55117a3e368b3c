package model

// HittingRules controls what happens when a move lands on an opposing blot
type HittingRules struct {
	// CanHit sends the blot to the bar
	CanHit bool
	// PinInstead traps the blot in place instead of hitting it
	PinInstead bool
}

// CombinedRules controls whether the sum of both dice is usable as a single
// move value for each move kind. Only meaningful when the two dice differ.
type CombinedRules struct {
	Normal  bool
	Enter   bool
	BearOff bool
}

// BearingOffRules controls when checkers may leave the board
type BearingOffRules struct {
	Enabled bool
	// AllInOuterBoard requires every checker in the home quadrant (and none
	// on the bar) before any bear-off is legal
	AllInOuterBoard bool
}

// ForcedMoveRules controls how strictly dice must be used
type ForcedMoveRules struct {
	// MustUseAllDice forbids ending the turn while a die is still playable
	MustUseAllDice bool
	// MustUseHigherIfOnlyOne requires the higher die when only one of the
	// two can be played this turn
	MustUseHigherIfOnlyOne bool
}

// StartingLayout describes where each color's checkers begin
type StartingLayout struct {
	// Points maps point number to checker count per color
	Points map[Color]map[int]int
	// Bar holds checkers that start off the board and must enter first
	Bar map[Color]int
}

// RuleConfig is an immutable, parsed variant description. Loaded once per
// variant and treated as read-only for the lifetime of a game.
type RuleConfig struct {
	Name        string
	Description string

	// Points is the board size, normally 24
	Points int

	// Direction is the movement sign per color (+1 toward higher numbers,
	// -1 toward lower). The same value for both colors produces a
	// same-direction race variant.
	Direction map[Color]int

	Hitting     HittingRules
	DoublesUses int
	Combined    CombinedRules
	BearingOff  BearingOffRules
	ForcedMoves ForcedMoveRules
	Layout      StartingLayout
}

// homeSpan is the size of the home quadrant a player bears off from
const homeSpan = 6

// HomeRange returns the inclusive point range of the color's home quadrant,
// derived from its movement direction: the six points nearest the exit edge.
func (r *RuleConfig) HomeRange(c Color) (lo, hi int) {
	if r.Direction[c] < 0 {
		lo = 1
		hi = homeSpan
		if hi > r.Points {
			hi = r.Points
		}
		return lo, hi
	}
	hi = r.Points
	lo = r.Points - homeSpan + 1
	if lo < 1 {
		lo = 1
	}
	return lo, hi
}

// BearingDistance returns how many pips the point lies from the color's exit
// edge. A die equal to this distance bears the checker off exactly.
func (r *RuleConfig) BearingDistance(c Color, point int) int {
	if r.Direction[c] < 0 {
		return point
	}
	return r.Points + 1 - point
}

// EntryPoint returns the point a bar checker lands on for the given die
func (r *RuleConfig) EntryPoint(c Color, die int) int {
	if r.Direction[c] < 0 {
		return r.Points + 1 - die
	}
	return die
}

// TotalCheckers returns the number of checkers the color starts with
func (r *RuleConfig) TotalCheckers(c Color) int {
	total := r.Layout.Bar[c]
	for _, count := range r.Layout.Points[c] {
		total += count
	}
	return total
}
