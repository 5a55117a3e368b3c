package response

import (
	"time"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// PointState is one numbered point in a board response
type PointState struct {
	Number      int    `json:"number"`
	WhitePieces int    `json:"white_pieces"`
	BlackPieces int    `json:"black_pieces"`
	Pinned      string `json:"pinned,omitempty"`
}

// BoardState is the positional state of a game. Dice is null until the
// current player rolls.
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

// BoardStateFromModel converts a model.Board to a response BoardState
func BoardStateFromModel(b *model.Board) BoardState {
	points := make([]PointState, len(b.Points))
	for i := range b.Points {
		p := &b.Points[i]
		points[i] = PointState{
			Number:      p.Number,
			WhitePieces: p.White,
			BlackPieces: p.Black,
			Pinned:      string(p.Pinned),
		}
	}

	var dice []int
	if b.DiceRolled() {
		dice = []int{b.Dice[0], b.Dice[1]}
	}

	return BoardState{
		Points:        points,
		BarWhite:      b.Bar[model.ColorWhite],
		BarBlack:      b.Bar[model.ColorBlack],
		BorneOffWhite: b.BorneOff[model.ColorWhite],
		BorneOffBlack: b.BorneOff[model.ColorBlack],
		CurrentPlayer: string(b.CurrentPlayer),
		Dice:          dice,
		RemainingDice: append([]int(nil), b.RemainingDice...),
		GameOver:      b.GameOver(),
		Winner:        string(b.Winner),
	}
}

// LegalMove is one playable move candidate
type LegalMove struct {
	MoveType  string `json:"move_type"`
	FromPoint int    `json:"from_point,omitempty"`
	ToPoint   int    `json:"to_point,omitempty"`
	DieValue  int    `json:"die_value"`
}

// LegalMoveFromModel converts a model.Move to a response LegalMove
func LegalMoveFromModel(m model.Move) LegalMove {
	return LegalMove{
		MoveType:  string(m.Type),
		FromPoint: m.From,
		ToPoint:   m.To,
		DieValue:  m.Die,
	}
}

// LegalMovesFromModel converts a move list, never returning nil so the
// JSON field encodes as an empty array rather than null
func LegalMovesFromModel(ms []model.Move) []LegalMove {
	out := make([]LegalMove, len(ms))
	for i, m := range ms {
		out[i] = LegalMoveFromModel(m)
	}
	return out
}

// GameState is the full game payload returned by most game endpoints
type GameState struct {
	GameID     string      `json:"game_id"`
	Variant    string      `json:"variant"`
	Board      BoardState  `json:"board"`
	LegalMoves []LegalMove `json:"legal_moves"`
	CanRoll    bool        `json:"can_roll"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// GameStateFromSession converts a session and its current legal moves
func GameStateFromSession(s *model.GameSession, legal []model.Move) GameState {
	return GameState{
		GameID:     string(s.ID),
		Variant:    s.Variant,
		Board:      BoardStateFromModel(s.Board),
		LegalMoves: LegalMovesFromModel(legal),
		CanRoll:    s.Board.State == model.TurnStateAwaitingRoll,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// GameSummary is the compact game listing entry
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

// GameSummaryFromSession converts a session to a listing entry
func GameSummaryFromSession(s *model.GameSession) GameSummary {
	return GameSummary{
		GameID:        string(s.ID),
		Variant:       s.Variant,
		CurrentPlayer: string(s.Board.CurrentPlayer),
		Turn:          s.Board.Turn,
		GameOver:      s.Board.GameOver(),
		Winner:        string(s.Board.Winner),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ListGamesResponse is the response for listing games
type ListGamesResponse struct {
	Games []GameSummary `json:"games"`
}

// RollResponse is the response after rolling the dice
type RollResponse struct {
	Dice       []int       `json:"dice"`
	LegalMoves []LegalMove `json:"legal_moves"`
	GameState  GameState   `json:"game_state"`
	Message    string      `json:"message,omitempty"`
}

// MoveResponse is the response after a successfully executed move
type MoveResponse struct {
	Success      bool      `json:"success"`
	Explanations []string  `json:"explanations"`
	GameState    GameState `json:"game_state"`
	TurnComplete bool      `json:"turn_complete"`
	GameOver     bool      `json:"game_over"`
	Winner       string    `json:"winner,omitempty"`
}

// LegalMovesResponse is the response for querying legal moves
type LegalMovesResponse struct {
	LegalMoves []LegalMove `json:"legal_moves"`
	Dice       []int       `json:"dice,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// SetPlayerResponse is the response after choosing the starting player
type SetPlayerResponse struct {
	Message   string    `json:"message"`
	GameState GameState `json:"game_state"`
}

// EndTurnResponse is the response after voluntarily ending a turn
type EndTurnResponse struct {
	Message   string    `json:"message"`
	GameState GameState `json:"game_state"`
}

// AIMoveResponse is the response after the bot takes its turn. Move is null
// when the bot had no legal move and passed.
type AIMoveResponse struct {
	Success      bool       `json:"success"`
	Move         *LegalMove `json:"move,omitempty"`
	Explanations []string   `json:"explanations,omitempty"`
	Message      string     `json:"message,omitempty"`
	GameState    GameState  `json:"game_state"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ListVariantsResponse is the response for listing variants
type ListVariantsResponse struct {
	Variants []string `json:"variants"`
}

// HittingRules mirrors the variant hitting section
type HittingRules struct {
	CanHit     bool `json:"can_hit"`
	PinInstead bool `json:"pin_instead"`
}

// CombinedRules mirrors the variant combined-moves section
type CombinedRules struct {
	Normal  bool `json:"normal"`
	Enter   bool `json:"enter"`
	BearOff bool `json:"bear_off"`
}

// BearingOffRules mirrors the variant bearing-off section
type BearingOffRules struct {
	Enabled         bool `json:"enabled"`
	AllInOuterBoard bool `json:"all_in_outer_board"`
}

// ForcedMoveRules mirrors the variant forced-moves section
type ForcedMoveRules struct {
	MustUseAllDice         bool `json:"must_use_all_dice"`
	MustUseHigherIfOnlyOne bool `json:"must_use_higher_if_only_one"`
}

// StartingLayout mirrors the variant starting layout
type StartingLayout struct {
	Points map[string]map[int]int `json:"points"`
	Bar    map[string]int         `json:"bar"`
}

// VariantRules is the full rule set of one variant
type VariantRules struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Points      int             `json:"points"`
	Direction   map[string]int  `json:"direction"`
	Hitting     HittingRules    `json:"hitting"`
	DoublesUses int             `json:"doubles_uses"`
	Combined    CombinedRules   `json:"combined_moves"`
	BearingOff  BearingOffRules `json:"bearing_off"`
	ForcedMoves ForcedMoveRules `json:"forced_moves"`
	Layout      StartingLayout  `json:"starting_layout"`
}

// VariantRulesFromModel converts a model.RuleConfig to a response VariantRules
func VariantRulesFromModel(r *model.RuleConfig) VariantRules {
	direction := make(map[string]int, len(r.Direction))
	for c, d := range r.Direction {
		direction[string(c)] = d
	}

	layoutPoints := make(map[string]map[int]int, len(r.Layout.Points))
	for c, counts := range r.Layout.Points {
		points := make(map[int]int, len(counts))
		for number, count := range counts {
			points[number] = count
		}
		layoutPoints[string(c)] = points
	}

	layoutBar := make(map[string]int, len(r.Layout.Bar))
	for c, count := range r.Layout.Bar {
		layoutBar[string(c)] = count
	}

	return VariantRules{
		Name:        r.Name,
		Description: r.Description,
		Points:      r.Points,
		Direction:   direction,
		Hitting: HittingRules{
			CanHit:     r.Hitting.CanHit,
			PinInstead: r.Hitting.PinInstead,
		},
		DoublesUses: r.DoublesUses,
		Combined: CombinedRules{
			Normal:  r.Combined.Normal,
			Enter:   r.Combined.Enter,
			BearOff: r.Combined.BearOff,
		},
		BearingOff: BearingOffRules{
			Enabled:         r.BearingOff.Enabled,
			AllInOuterBoard: r.BearingOff.AllInOuterBoard,
		},
		ForcedMoves: ForcedMoveRules{
			MustUseAllDice:         r.ForcedMoves.MustUseAllDice,
			MustUseHigherIfOnlyOne: r.ForcedMoves.MustUseHigherIfOnlyOne,
		},
		Layout: StartingLayout{
			Points: layoutPoints,
			Bar:    layoutBar,
		},
	}
}
