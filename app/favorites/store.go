package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/storage"
)

// Store keeps one favorite team per guild for the lifetime of the process.
// Concurrent writers for the same guild resolve last writer wins.
type Store struct {
	teams storage.Store[string]
}

// NewStore creates a Store on top of the given backing store.
func NewStore(teams storage.Store[string]) *Store {
	return &Store{teams: teams}
}

// NewMemoryStore creates a Store whose entries never expire.
func NewMemoryStore(ctx context.Context) *Store {
	return NewStore(storage.NewMemoryStore[string](ctx, 0))
}

// SetFavorite records teamNumber as the favorite of guildID.
func (s *Store) SetFavorite(ctx context.Context, guildID, teamNumber string) error {
	if guildID == "" {
		return errors.New("guild id is empty")
	}
	if err := s.teams.Set(ctx, guildID, teamNumber); err != nil {
		return fmt.Errorf("failed to store favorite team: %w", err)
	}
	return nil
}

// Favorite returns the favorite team of guildID, if any.
func (s *Store) Favorite(ctx context.Context, guildID string) (string, bool) {
	team, err := s.teams.Get(ctx, guildID)
	if err != nil {
		return "", false
	}
	return team, true
}
