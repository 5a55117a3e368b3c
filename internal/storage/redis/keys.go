package redis

import (
	"fmt"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "tabla"

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.GameID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session keys
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
