package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Variant string `json:"variant"`
}

// MoveRequest is the request body for playing a single checker move.
// FromPoint is omitted for bar entries and ToPoint for bear-offs.
type MoveRequest struct {
	MoveType  string `json:"move_type"`
	FromPoint int    `json:"from_point,omitempty"`
	ToPoint   int    `json:"to_point,omitempty"`
	DieValue  int    `json:"die_value,omitempty"`
}

// SetPlayerRequest is the request body for choosing the starting player
type SetPlayerRequest struct {
	Player string `json:"player"`
}

// AIMoveRequest is the request body for letting the bot play one move
type AIMoveRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}
