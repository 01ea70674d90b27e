package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool := setupTestDB(t)
	repo := NewItemRepository(pool)
	players := NewPlayerRepository(pool)

	require.NoError(t, players.EnsurePlayer(ctx, "p1", "alice", 5))

	t.Run("Seeded catalog", func(t *testing.T) {
		items, err := repo.GetAllItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 12)

		sword, err := repo.GetItemByName(ctx, "Wooden Sword")
		require.NoError(t, err)
		assert.Equal(t, domain.RarityCommon, sword.Rarity)
		assert.Equal(t, int64(10), sword.Value)

		byID, err := repo.GetItemByID(ctx, sword.ID)
		require.NoError(t, err)
		assert.Equal(t, sword.Name, byID.Name)
	})

	t.Run("Unknown item", func(t *testing.T) {
		_, err := repo.GetItemByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = repo.GetItemByName(ctx, "Sword of Nonexistence")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("InsertItem", func(t *testing.T) {
		item := &domain.Item{
			Name:        "Test Relic",
			Description: "For tests only",
			Value:       42,
			Rarity:      domain.RarityRare,
			DropRate:    0.05,
			MinLevel:    3,
		}
		id, err := repo.InsertItem(ctx, item)
		require.NoError(t, err)
		assert.Positive(t, id)
		assert.Equal(t, id, item.ID)
	})

	t.Run("Inventory lifecycle", func(t *testing.T) {
		potion, err := repo.GetItemByName(ctx, "Health Potion")
		require.NoError(t, err)

		require.NoError(t, repo.AddToInventory(ctx, "p1", potion.ID, 3))
		require.NoError(t, repo.AddToInventory(ctx, "p1", potion.ID, 2))

		inv, err := repo.GetInventory(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, inv, 1)
		assert.Equal(t, 5, inv[0].Quantity)
		assert.Equal(t, "Health Potion", inv[0].Item.Name)

		// Partial removal decrements
		require.NoError(t, repo.RemoveFromInventory(ctx, "p1", potion.ID, 2))
		inv, err = repo.GetInventory(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, inv, 1)
		assert.Equal(t, 3, inv[0].Quantity)

		// Overdraw is rejected and leaves the entry untouched
		err = repo.RemoveFromInventory(ctx, "p1", potion.ID, 4)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

		// Removal to zero deletes the row
		require.NoError(t, repo.RemoveFromInventory(ctx, "p1", potion.ID, 3))
		inv, err = repo.GetInventory(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, inv)

		err = repo.RemoveFromInventory(ctx, "p1", potion.ID, 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})

	t.Run("Quantity validation", func(t *testing.T) {
		err := repo.AddToInventory(ctx, "p1", 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = repo.RemoveFromInventory(ctx, "p1", 1, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("GetRandomItemID", func(t *testing.T) {
		id, err := repo.GetRandomItemID(ctx)
		require.NoError(t, err)
		assert.Positive(t, id)
	})
}
