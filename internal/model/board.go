package model

// Point is one numbered position on the board. At most one color occupies a
// point, except under pin variants (a trapped blot shares the point with its
// pinners) and under no-hit race variants where a blot does not block.
type Point struct {
	Number int
	White  int
	Black  int

	// Pinned names the color whose single checker is trapped on this point.
	// Empty when nothing is pinned. Only set under pin_instead variants.
	Pinned Color
}

// Count returns the number of checkers of the given color on the point
func (p *Point) Count(c Color) int {
	if c == ColorWhite {
		return p.White
	}
	return p.Black
}

// Add places n checkers of the given color on the point
func (p *Point) Add(c Color, n int) {
	if c == ColorWhite {
		p.White += n
	} else {
		p.Black += n
	}
}

// Remove takes n checkers of the given color off the point
func (p *Point) Remove(c Color, n int) {
	if c == ColorWhite {
		p.White -= n
	} else {
		p.Black -= n
	}
}

// Total returns the number of checkers on the point regardless of color
func (p *Point) Total() int {
	return p.White + p.Black
}

// IsBlot reports whether the point holds exactly one checker of the color
func (p *Point) IsBlot(c Color) bool {
	return p.Count(c) == 1
}

// IsBlockedFor reports whether the mover cannot land because the opponent
// holds the point with two or more checkers
func (p *Point) IsBlockedFor(mover Color) bool {
	return p.Count(mover.Opponent()) >= 2
}

// IsPinnedFor reports whether the color's checker on this point is trapped
func (p *Point) IsPinnedFor(c Color) bool {
	return p.Pinned == c
}

// TurnState is the turn engine's phase for a board
type TurnState string

const (
	TurnStateAwaitingRoll TurnState = "awaiting_roll" // current player must roll
	TurnStateDiceActive   TurnState = "dice_active"   // dice rolled, moves pending
	TurnStateGameOver     TurnState = "game_over"     // terminal, winner set
)

// Board is the full mutable positional state of one game. It is owned by a
// single session and mutated only through validated moves.
type Board struct {
	NumPoints int
	Points    []Point // Points[0] is point 1

	Bar      map[Color]int
	BorneOff map[Color]int

	// Checkers is the per-player total fixed at setup, including checkers
	// on the bar and borne off. Winning means BorneOff reaches this.
	Checkers map[Color]int

	CurrentPlayer Color

	// Dice state for the active turn. Dice is the rolled pair (zero until a
	// roll happens); RemainingDice has doubles already expanded.
	Dice          [2]int
	RemainingDice []int
	ConsumedDice  []int

	Turn   int // number of rolls taken so far in the game
	State  TurnState
	Winner Color
}

// NewBoard creates an empty board with the given number of points
func NewBoard(numPoints int) *Board {
	points := make([]Point, numPoints)
	for i := range points {
		points[i].Number = i + 1
	}
	return &Board{
		NumPoints: numPoints,
		Points:    points,
		Bar:       map[Color]int{ColorWhite: 0, ColorBlack: 0},
		BorneOff:  map[Color]int{ColorWhite: 0, ColorBlack: 0},
		Checkers:  map[Color]int{ColorWhite: 0, ColorBlack: 0},
		State:     TurnStateAwaitingRoll,
	}
}

// Point returns the point with the given 1-based number, or nil if out of range
func (b *Board) Point(number int) *Point {
	if !b.InRange(number) {
		return nil
	}
	return &b.Points[number-1]
}

// InRange reports whether the number names a point on this board
func (b *Board) InRange(number int) bool {
	return number >= 1 && number <= b.NumPoints
}

// GameOver reports whether the board has reached a terminal state
func (b *Board) GameOver() bool {
	return b.State == TurnStateGameOver
}

// DiceRolled reports whether dice are showing for the active turn
func (b *Board) DiceRolled() bool {
	return b.Dice[0] != 0
}

// HasDie reports whether the value is still unused this turn
func (b *Board) HasDie(value int) bool {
	for _, d := range b.RemainingDice {
		if d == value {
			return true
		}
	}
	return false
}

// ConsumeDie marks one instance of the value as used. Returns false if the
// value is not among the remaining dice.
func (b *Board) ConsumeDie(value int) bool {
	for i, d := range b.RemainingDice {
		if d == value {
			b.RemainingDice = append(b.RemainingDice[:i], b.RemainingDice[i+1:]...)
			b.ConsumedDice = append(b.ConsumedDice, value)
			return true
		}
	}
	return false
}

// ClearDice resets all dice state, ending the turn's move loop
func (b *Board) ClearDice() {
	b.Dice = [2]int{}
	b.RemainingDice = nil
	b.ConsumedDice = nil
}

// OnBoard returns the number of the color's checkers standing on points
func (b *Board) OnBoard(c Color) int {
	total := 0
	for i := range b.Points {
		total += b.Points[i].Count(c)
	}
	return total
}

// TotalCheckers returns bar + borne off + on-board checkers for the color.
// It must equal Checkers[c] at all times (checker conservation).
func (b *Board) TotalCheckers(c Color) int {
	return b.Bar[c] + b.BorneOff[c] + b.OnBoard(c)
}

// Clone returns a deep copy of the board. Used for lookahead during move
// generation and for trial application without touching live state.
func (b *Board) Clone() *Board {
	clone := *b
	clone.Points = make([]Point, len(b.Points))
	copy(clone.Points, b.Points)
	clone.Bar = map[Color]int{ColorWhite: b.Bar[ColorWhite], ColorBlack: b.Bar[ColorBlack]}
	clone.BorneOff = map[Color]int{ColorWhite: b.BorneOff[ColorWhite], ColorBlack: b.BorneOff[ColorBlack]}
	clone.Checkers = map[Color]int{ColorWhite: b.Checkers[ColorWhite], ColorBlack: b.Checkers[ColorBlack]}
	clone.RemainingDice = append([]int(nil), b.RemainingDice...)
	clone.ConsumedDice = append([]int(nil), b.ConsumedDice...)
	return &clone
}
