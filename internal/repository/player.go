package repository

import (
	"context"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// EnsurePlayer inserts a player record if none exists. Existing records
	// are left untouched (the display name is not refreshed).
	EnsurePlayer(ctx context.Context, id, username string, maxStamina int) error
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)

	// RegenerablePlayers returns players below max stamina that have a
	// recorded last regeneration timestamp.
	RegenerablePlayers(ctx context.Context) ([]domain.Player, error)

	// CreditStamina adds the credit relative to the stored stamina, capped
	// at max stamina, and advances the regeneration timestamp. The write is
	// guarded on the timestamp the caller read; false means another writer
	// advanced the clock first and the credit must be skipped.
	CreditStamina(ctx context.Context, id string, credit int, newTime, expectedTime time.Time) (bool, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for player transactions. A unit of work is
// one GetPlayerForUpdate / UpdatePlayer pair between Begin and Commit.
type PlayerTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error
}
