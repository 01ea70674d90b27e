package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestPlayerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool := setupTestDB(t)
	repo := NewPlayerRepository(pool)

	t.Run("EnsurePlayer creates with full stamina", func(t *testing.T) {
		err := repo.EnsurePlayer(ctx, "p1", "alice", 5)
		require.NoError(t, err)

		player, err := repo.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", player.Username)
		assert.Equal(t, 5, player.Stamina)
		assert.Equal(t, 5, player.MaxStamina)
		assert.Equal(t, 1, player.Level)
		assert.Equal(t, domain.TierBeginner, player.Tier)
		require.NotNil(t, player.LastStaminaTime)
		assert.False(t, player.HasActiveDungeon())
	})

	t.Run("EnsurePlayer is idempotent", func(t *testing.T) {
		err := repo.EnsurePlayer(ctx, "p1", "renamed", 5)
		require.NoError(t, err)

		player, err := repo.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", player.Username, "existing record should be untouched")
	})

	t.Run("GetPlayer unknown id", func(t *testing.T) {
		_, err := repo.GetPlayer(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("CreditStamina and RegenerablePlayers", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)

		// Drop the player below max with a stale clock via the tx path
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		player, err := tx.GetPlayerForUpdate(ctx, "p1")
		require.NoError(t, err)
		player.Stamina = 2
		player.LastStaminaTime = &past
		require.NoError(t, tx.UpdatePlayer(ctx, *player))
		require.NoError(t, tx.Commit(ctx))

		players, err := repo.RegenerablePlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "p1", players[0].ID)
		assert.Equal(t, 2, players[0].Stamina)

		// Guard mismatch leaves the row untouched
		applied, err := repo.CreditStamina(ctx, "p1", 1, time.Now().UTC(), past.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, applied)

		// Guarded credit applies relatively and is capped at max stamina
		now := time.Now().UTC().Truncate(time.Microsecond)
		applied, err = repo.CreditStamina(ctx, "p1", 10, now, past)
		require.NoError(t, err)
		assert.True(t, applied)

		capped, err := repo.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 5, capped.Stamina)

		// Back at max, the player drops out of the sweep set
		players, err = repo.RegenerablePlayers(ctx)
		require.NoError(t, err)
		assert.Empty(t, players)
	})

	t.Run("CreditStamina unknown id", func(t *testing.T) {
		applied, err := repo.CreditStamina(ctx, "missing", 1, time.Now(), time.Now())
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Transactional update", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		player, err := tx.GetPlayerForUpdate(ctx, "p1")
		require.NoError(t, err)

		player.XP = 250
		player.Level = 3
		player.Coins = 100
		player.Wins = 1
		require.NoError(t, tx.UpdatePlayer(ctx, *player))
		require.NoError(t, tx.Commit(ctx))

		updated, err := repo.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(250), updated.XP)
		assert.Equal(t, 3, updated.Level)
		assert.Equal(t, int64(100), updated.Coins)
		assert.Equal(t, 1, updated.Wins)
	})

	t.Run("Rollback discards changes", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		player, err := tx.GetPlayerForUpdate(ctx, "p1")
		require.NoError(t, err)

		player.Coins = 999999
		require.NoError(t, tx.UpdatePlayer(ctx, *player))
		require.NoError(t, tx.Rollback(ctx))

		unchanged, err := repo.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), unchanged.Coins)
	})
}
