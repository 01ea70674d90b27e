package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so row helpers can be
// shared between pooled and transactional paths
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// playerColumns is the column list every player scan uses, in scanPlayer order
const playerColumns = `player_id, username, xp, level, tier, coins, stamina, max_stamina,
	last_stamina_time, wins, losses, current_dungeon_end, current_dungeon_stamina, created_at`

// scanPlayer scans one player row, folding the nullable active-dungeon
// columns into the denormalized pointer
func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var lastStamina *time.Time
	var dungeonEnd *time.Time
	var dungeonStamina *int

	err := row.Scan(
		&p.ID, &p.Username, &p.XP, &p.Level, &p.Tier, &p.Coins, &p.Stamina, &p.MaxStamina,
		&lastStamina, &p.Wins, &p.Losses, &dungeonEnd, &dungeonStamina, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.LastStaminaTime = lastStamina
	if dungeonEnd != nil && dungeonStamina != nil {
		p.ActiveDungeon = &domain.ActiveDungeon{
			EndTime:          *dungeonEnd,
			StaminaCommitted: *dungeonStamina,
		}
	}
	return &p, nil
}

// updatePlayer writes every mutable player field. The active-dungeon pointer
// columns are written from the struct so callers can set or clear it.
func updatePlayer(ctx context.Context, q querier, p domain.Player) error {
	var dungeonEnd *time.Time
	var dungeonStamina *int
	if p.ActiveDungeon != nil {
		dungeonEnd = &p.ActiveDungeon.EndTime
		dungeonStamina = &p.ActiveDungeon.StaminaCommitted
	}

	query := `
		UPDATE players
		SET xp = $2, level = $3, tier = $4, coins = $5, stamina = $6,
		    last_stamina_time = $7, wins = $8, losses = $9,
		    current_dungeon_end = $10, current_dungeon_stamina = $11
		WHERE player_id = $1
	`
	tag, err := q.Exec(ctx, query,
		p.ID, p.XP, p.Level, p.Tier, p.Coins, p.Stamina,
		p.LastStaminaTime, p.Wins, p.Losses, dungeonEnd, dungeonStamina,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// addToInventory upserts the (player, item) row, accumulating quantity
func addToInventory(ctx context.Context, q querier, playerID string, itemID, quantity int) error {
	query := `
		INSERT INTO inventory (player_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id) DO UPDATE
		SET quantity = inventory.quantity + EXCLUDED.quantity
	`
	_, err := q.Exec(ctx, query, playerID, itemID, quantity)
	return err
}

// randomItemID draws one item definition uniformly
func randomItemID(ctx context.Context, q querier) (int, error) {
	var id int
	err := q.QueryRow(ctx, `SELECT item_id FROM items ORDER BY RANDOM() LIMIT 1`).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrItemNotFound
		}
		return 0, err
	}
	return id, nil
}
