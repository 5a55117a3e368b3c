package storage

import (
	"context"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// Storage defines the interface for game session persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.GameID) (*model.GameSession, error)
	DeleteSession(ctx context.Context, id model.GameID) error
	ListSessions(ctx context.Context) ([]*model.GameSession, error)
}
