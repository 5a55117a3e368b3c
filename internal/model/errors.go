package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Session errors
	ErrGameNotFound    = errors.New("game not found")
	ErrVariantNotFound = errors.New("variant not found")

	// Turn engine errors
	ErrInvalidStateTransition   = errors.New("operation not valid in the current turn state")
	ErrGameOver                 = errors.New("game is already over")
	ErrStartingPlayerAlreadySet = errors.New("starting player can only be set before the first roll")
	ErrMustUseAllDice           = errors.New("a playable die remains and must be used")

	// Move errors
	ErrIllegalMove = errors.New("illegal move")

	// Input errors
	ErrInvalidColor      = errors.New("color must be white or black")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium, or hard")
)

// IllegalMoveError is a validator rejection. It carries the ordered rule
// explanations so callers can show why the move was refused. The board is
// never mutated when this error is returned.
type IllegalMoveError struct {
	Move         Move
	Explanations []string
}

// Error implements the error interface
func (e *IllegalMoveError) Error() string {
	if len(e.Explanations) == 0 {
		return fmt.Sprintf("illegal move %s", e.Move)
	}
	return fmt.Sprintf("illegal move %s: %s", e.Move, strings.Join(e.Explanations, "; "))
}

// Unwrap lets errors.Is match ErrIllegalMove
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
