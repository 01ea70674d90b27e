package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Dungeon defines the interface for dungeon run persistence
type Dungeon interface {
	// CreateRun atomically inserts the run, deducts the committed stamina
	// and writes the active-dungeon pointer on the player row.
	CreateRun(ctx context.Context, run *domain.DungeonRun) error

	GetRun(ctx context.Context, id uuid.UUID) (*domain.DungeonRun, error)
	GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error)

	// DueRuns returns active runs whose end time has passed
	DueRuns(ctx context.Context, now time.Time) ([]domain.DungeonRun, error)

	// ClaimRun opens a transaction and locks the run row if it is still
	// active. Returns domain.ErrDungeonResolved when the run was already
	// resolved or is being resolved by another worker; the returned
	// transaction is nil in that case.
	ClaimRun(ctx context.Context, id uuid.UUID) (ResolutionTx, *domain.DungeonRun, error)
}

// ResolutionTx is the unit of work for resolving one dungeon run. All reward
// writes happen inside it; FinalizeRun freezes the status and reward summary
// and clears the player's active pointer. Nothing is visible until Commit.
type ResolutionTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error
	GetRandomItemID(ctx context.Context) (int, error)
	AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error
	FinalizeRun(ctx context.Context, status domain.DungeonStatus, reward domain.Reward) error
}
