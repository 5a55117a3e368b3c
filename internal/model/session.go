package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameSession associates a game with its board and the rule snapshot it was
// created under. The rules are snapshotted so a running game is unaffected
// by later edits to the variant files.
type GameSession struct {
	ID      GameID
	Variant string
	Board   *Board
	Rules   *RuleConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}
