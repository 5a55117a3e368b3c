package model

import "fmt"

// MoveType classifies a single checker transition
type MoveType string

const (
	MoveNormal  MoveType = "normal"   // point to point
	MoveEnter   MoveType = "enter"    // bar to point
	MoveBearOff MoveType = "bear_off" // point off the board
)

// Move is a single proposed or generated checker transition. From is 0 for
// bar entries and To is 0 for bear-offs. Die is the value consumed: 1-6 for
// a single die, or the sum of both dice for a combined move.
type Move struct {
	Type MoveType
	From int
	To   int
	Die  int
}

// String renders the move in match notation, e.g. "24/18", "bar/20", "3/off"
func (m Move) String() string {
	switch m.Type {
	case MoveEnter:
		return fmt.Sprintf("bar/%d (die %d)", m.To, m.Die)
	case MoveBearOff:
		return fmt.Sprintf("%d/off (die %d)", m.From, m.Die)
	default:
		return fmt.Sprintf("%d/%d (die %d)", m.From, m.To, m.Die)
	}
}
