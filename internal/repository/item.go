package repository

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Item defines the interface for item definition and inventory persistence
type Item interface {
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetAllItems(ctx context.Context) ([]domain.Item, error)

	// GetRandomItemID draws one item definition uniformly at random
	GetRandomItemID(ctx context.Context) (int, error)

	AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error
	RemoveFromInventory(ctx context.Context, playerID string, itemID, quantity int) error
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)
}
