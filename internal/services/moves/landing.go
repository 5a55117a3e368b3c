package moves

import "github.com/mihailDamchevski/TABLA-BAKI/internal/model"

// Landing is the outcome of a checker arriving on a point. Exactly one
// outcome applies to any point; which one depends on the variant's hitting
// flags, not on the variant's name.
type Landing int

const (
	// Block means the point cannot be landed on.
	Block Landing = iota
	// LandFree means the point is open; any opponent blot stays put.
	LandFree
	// Hit means an opponent blot on the point is sent to the bar.
	Hit
	// Pin means an opponent blot on the point is trapped beneath the
	// arriving checker until every pinning checker has moved on.
	Pin
)

func (l Landing) String() string {
	switch l {
	case Block:
		return "block"
	case LandFree:
		return "land_free"
	case Hit:
		return "hit"
	case Pin:
		return "pin"
	default:
		return "unknown"
	}
}

// Resolve decides what happens if player lands a checker on the point.
func Resolve(pt *model.Point, player model.Color, rules *model.RuleConfig) Landing {
	opp := player.Opponent()

	// A point where the player's own checker sits pinned belongs to the
	// opponent for as long as the pin holds.
	if pt.IsPinnedFor(player) {
		return Block
	}
	// A point where the player holds the pin is the player's own; the
	// trapped blot underneath does not count against landing.
	if pt.IsPinnedFor(opp) {
		return LandFree
	}

	switch {
	case pt.Count(opp) >= 2:
		return Block
	case pt.IsBlot(opp):
		if rules.Hitting.CanHit {
			return Hit
		}
		if rules.Hitting.PinInstead {
			return Pin
		}
		return LandFree
	default:
		return LandFree
	}
}
