package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case GameList:
		o.printGameList(v)
	case RollResult:
		o.printRollResult(v)
	case MoveResult:
		o.printMoveResult(v)
	case LegalMovesResult:
		o.printLegalMoves(v)
	case TurnResult:
		o.printTurnResult(v)
	case AIMoveResult:
		o.printAIMoveResult(v)
	case VariantList:
		o.printVariantList(v)
	case VariantInfo:
		o.printVariantInfo(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PointState response type (matches API)
type PointState struct {
	Number      int    `json:"number"`
	WhitePieces int    `json:"white_pieces"`
	BlackPieces int    `json:"black_pieces"`
	Pinned      string `json:"pinned,omitempty"`
}

// BoardState response type
type BoardState struct {
	Points        []PointState `json:"points"`
	BarWhite      int          `json:"bar_white"`
	BarBlack      int          `json:"bar_black"`
	BorneOffWhite int          `json:"borne_off_white"`
	BorneOffBlack int          `json:"borne_off_black"`
	CurrentPlayer string       `json:"current_player"`
	Dice          []int        `json:"dice"`
	RemainingDice []int        `json:"remaining_dice,omitempty"`
	GameOver      bool         `json:"game_over"`
	Winner        string       `json:"winner,omitempty"`
}

// LegalMove response type
type LegalMove struct {
	MoveType  string `json:"move_type"`
	FromPoint int    `json:"from_point,omitempty"`
	ToPoint   int    `json:"to_point,omitempty"`
	DieValue  int    `json:"die_value"`
}

// GameState response type
type GameState struct {
	GameID     string      `json:"game_id"`
	Variant    string      `json:"variant"`
	Board      BoardState  `json:"board"`
	LegalMoves []LegalMove `json:"legal_moves"`
	CanRoll    bool        `json:"can_roll"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// GameSummary response type
type GameSummary struct {
	GameID        string    `json:"game_id"`
	Variant       string    `json:"variant"`
	CurrentPlayer string    `json:"current_player"`
	Turn          int       `json:"turn"`
	GameOver      bool      `json:"game_over"`
	Winner        string    `json:"winner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GameList response type
type GameList struct {
	Games []GameSummary `json:"games"`
}

// RollResult response type
type RollResult struct {
	Dice       []int       `json:"dice"`
	LegalMoves []LegalMove `json:"legal_moves"`
	GameState  GameState   `json:"game_state"`
	Message    string      `json:"message,omitempty"`
}

// MoveResult response type
type MoveResult struct {
	Success      bool      `json:"success"`
	Explanations []string  `json:"explanations"`
	GameState    GameState `json:"game_state"`
	TurnComplete bool      `json:"turn_complete"`
	GameOver     bool      `json:"game_over"`
	Winner       string    `json:"winner,omitempty"`
}

// LegalMovesResult response type
type LegalMovesResult struct {
	LegalMoves []LegalMove `json:"legal_moves"`
	Dice       []int       `json:"dice,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// TurnResult response type, shared by end-turn and set-player
type TurnResult struct {
	Message   string    `json:"message"`
	GameState GameState `json:"game_state"`
}

// AIMoveResult response type
type AIMoveResult struct {
	Success      bool       `json:"success"`
	Move         *LegalMove `json:"move,omitempty"`
	Explanations []string   `json:"explanations,omitempty"`
	Message      string     `json:"message,omitempty"`
	GameState    GameState  `json:"game_state"`
}

// VariantList response type
type VariantList struct {
	Variants []string `json:"variants"`
}

// VariantInfo response type
type VariantInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Points      int            `json:"points"`
	Direction   map[string]int `json:"direction"`
	Hitting     struct {
		CanHit     bool `json:"can_hit"`
		PinInstead bool `json:"pin_instead"`
	} `json:"hitting"`
	DoublesUses int `json:"doubles_uses"`
	Combined    struct {
		Normal  bool `json:"normal"`
		Enter   bool `json:"enter"`
		BearOff bool `json:"bear_off"`
	} `json:"combined_moves"`
	BearingOff struct {
		Enabled         bool `json:"enabled"`
		AllInOuterBoard bool `json:"all_in_outer_board"`
	} `json:"bearing_off"`
	ForcedMoves struct {
		MustUseAllDice         bool `json:"must_use_all_dice"`
		MustUseHigherIfOnlyOne bool `json:"must_use_higher_if_only_one"`
	} `json:"forced_moves"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// formatMove renders a move in match notation, e.g. "24/18 (die 6)"
func formatMove(m LegalMove) string {
	switch m.MoveType {
	case "enter":
		return fmt.Sprintf("bar/%d (die %d)", m.ToPoint, m.DieValue)
	case "bear_off":
		return fmt.Sprintf("%d/off (die %d)", m.FromPoint, m.DieValue)
	default:
		return fmt.Sprintf("%d/%d (die %d)", m.FromPoint, m.ToPoint, m.DieValue)
	}
}

func formatDice(dice []int) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " ")
}

// printBoard renders the board as two halves, high points on top running
// down to the midpoint, low points below
func (o *Output) printBoard(b BoardState) {
	n := len(b.Points)
	if n == 0 {
		return
	}
	half := n / 2
	width := half * 8

	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("Bar - White: %d, Black: %d\n", b.BarWhite, b.BarBlack)
	fmt.Printf("Borne Off - White: %d, Black: %d\n", b.BorneOffWhite, b.BorneOffBlack)
	fmt.Println(strings.Repeat("-", width))

	top := make([]string, 0, n-half)
	for i := n; i > half; i-- {
		p := b.Points[i-1]
		top = append(top, fmt.Sprintf("%2d:W%dB%d", p.Number, p.WhitePieces, p.BlackPieces))
	}
	fmt.Println(strings.Join(top, " "))

	bottom := make([]string, 0, half)
	for i := 1; i <= half; i++ {
		p := b.Points[i-1]
		bottom = append(bottom, fmt.Sprintf("%2d:W%dB%d", p.Number, p.WhitePieces, p.BlackPieces))
	}
	fmt.Println(strings.Join(bottom, " "))
	fmt.Println(strings.Repeat("=", width))

	var pinned []string
	for _, p := range b.Points {
		if p.Pinned != "" {
			pinned = append(pinned, fmt.Sprintf("point %d (%s)", p.Number, p.Pinned))
		}
	}
	if len(pinned) > 0 {
		fmt.Printf("Pinned: %s\n", strings.Join(pinned, ", "))
	}
}

func (o *Output) printLegalMoveLines(moves []LegalMove) {
	fmt.Printf("Legal moves (%d):\n", len(moves))
	for _, m := range moves {
		fmt.Printf("  - %s\n", formatMove(m))
	}
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.GameID)
	fmt.Printf("Variant: %s\n", g.Variant)
	fmt.Printf("Current player: %s\n", g.Board.CurrentPlayer)

	if g.Board.GameOver {
		fmt.Printf("Game over! Winner: %s\n", g.Board.Winner)
	} else if g.CanRoll {
		fmt.Println("Waiting for roll")
	} else if len(g.Board.Dice) == 2 {
		fmt.Printf("Dice: %s (remaining: %s)\n", formatDice(g.Board.Dice), formatDice(g.Board.RemainingDice))
	}

	fmt.Println()
	o.printBoard(g.Board)

	if len(g.LegalMoves) > 0 {
		fmt.Println()
		o.printLegalMoveLines(g.LegalMoves)
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		status := fmt.Sprintf("turn %d, %s to play", g.Turn, g.CurrentPlayer)
		if g.GameOver {
			status = fmt.Sprintf("finished, %s won", g.Winner)
		}
		fmt.Printf("  %s  %-14s %s\n", g.GameID, g.Variant, status)
	}
}

func (o *Output) printRollResult(r RollResult) {
	if len(r.Dice) == 2 {
		fmt.Printf("Rolled: %d and %d\n", r.Dice[0], r.Dice[1])
	}
	if r.Message != "" {
		fmt.Println(r.Message)
	}

	fmt.Println()
	o.printBoard(r.GameState.Board)

	if len(r.LegalMoves) > 0 {
		fmt.Println()
		o.printLegalMoveLines(r.LegalMoves)
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	if m.Success {
		fmt.Println("Move executed:")
		for _, exp := range m.Explanations {
			fmt.Printf("  -> %s\n", exp)
		}
	}

	if m.GameOver {
		fmt.Printf("\nGame over! Winner: %s\n", m.Winner)
	} else if m.TurnComplete {
		fmt.Printf("\nTurn complete. %s to play.\n", m.GameState.Board.CurrentPlayer)
	} else if len(m.GameState.Board.RemainingDice) > 0 {
		fmt.Printf("\nRemaining dice: %s\n", formatDice(m.GameState.Board.RemainingDice))
	}

	fmt.Println()
	o.printBoard(m.GameState.Board)
}

func (o *Output) printLegalMoves(l LegalMovesResult) {
	if l.Message != "" {
		fmt.Println(l.Message)
		return
	}
	if len(l.Dice) == 2 {
		fmt.Printf("Dice: %s\n", formatDice(l.Dice))
	}
	o.printLegalMoveLines(l.LegalMoves)
}

func (o *Output) printTurnResult(t TurnResult) {
	fmt.Println(t.Message)
	fmt.Println()
	o.printBoard(t.GameState.Board)
}

func (o *Output) printAIMoveResult(a AIMoveResult) {
	if a.Success && a.Move != nil {
		fmt.Printf("Bot played %s\n", formatMove(*a.Move))
		for _, exp := range a.Explanations {
			fmt.Printf("  -> %s\n", exp)
		}
	} else if a.Message != "" {
		fmt.Println(a.Message)
	}

	fmt.Println()
	o.printBoard(a.GameState.Board)

	if a.GameState.Board.GameOver {
		fmt.Printf("Game over! Winner: %s\n", a.GameState.Board.Winner)
	}
}

func (o *Output) printVariantList(v VariantList) {
	fmt.Printf("Available variants (%d):\n", len(v.Variants))
	for _, name := range v.Variants {
		fmt.Printf("  - %s\n", name)
	}
}

func (o *Output) printVariantInfo(v VariantInfo) {
	fmt.Printf("Variant: %s\n", v.Name)
	if v.Description != "" {
		fmt.Printf("%s\n", v.Description)
	}
	fmt.Printf("Points: %d\n", v.Points)
	fmt.Printf("Direction: white %+d, black %+d\n", v.Direction["white"], v.Direction["black"])
	fmt.Printf("Doubles give %d moves\n", v.DoublesUses)

	switch {
	case v.Hitting.PinInstead:
		fmt.Println("Hitting: landing on a lone enemy checker pins it")
	case v.Hitting.CanHit:
		fmt.Println("Hitting: lone enemy checkers are sent to the bar")
	default:
		fmt.Println("Hitting: none")
	}

	var combined []string
	if v.Combined.Normal {
		combined = append(combined, "normal moves")
	}
	if v.Combined.Enter {
		combined = append(combined, "bar entries")
	}
	if v.Combined.BearOff {
		combined = append(combined, "bear-offs")
	}
	if len(combined) > 0 {
		fmt.Printf("Combined dice allowed for: %s\n", strings.Join(combined, ", "))
	} else {
		fmt.Println("Combined dice: not allowed")
	}

	if v.BearingOff.Enabled {
		if v.BearingOff.AllInOuterBoard {
			fmt.Println("Bearing off: once all checkers are home")
		} else {
			fmt.Println("Bearing off: allowed")
		}
	} else {
		fmt.Println("Bearing off: disabled")
	}

	if v.ForcedMoves.MustUseAllDice {
		fmt.Println("All playable dice must be used")
	}
	if v.ForcedMoves.MustUseHigherIfOnlyOne {
		fmt.Println("When only one die can be played, it must be the higher")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
