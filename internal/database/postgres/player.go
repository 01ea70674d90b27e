package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// EnsurePlayer inserts the player if absent. An existing record is left
// untouched, including the stored username.
func (r *PlayerRepository) EnsurePlayer(ctx context.Context, id, username string, maxStamina int) error {
	query := `
		INSERT INTO players (player_id, username, stamina, max_stamina, last_stamina_time)
		VALUES ($1, $2, $3, $3, NOW())
		ON CONFLICT (player_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, id, username, maxStamina); err != nil {
		return fmt.Errorf("failed to ensure player: %w", err)
	}
	return nil
}

// GetPlayer returns the full player record
func (r *PlayerRepository) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	player, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// RegenerablePlayers returns players eligible for the stamina sweep:
// below max stamina with a recorded regeneration timestamp.
func (r *PlayerRepository) RegenerablePlayers(ctx context.Context) ([]domain.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE stamina < max_stamina AND last_stamina_time IS NOT NULL
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query regenerable players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// CreditStamina applies a relative stamina credit and advances the
// regeneration timestamp. The relative add keeps a commit deduction or
// resolution refund that landed after the sweep's snapshot intact; the
// timestamp guard keeps overlapping sweeps from double-crediting.
func (r *PlayerRepository) CreditStamina(ctx context.Context, id string, credit int, newTime, expectedTime time.Time) (bool, error) {
	query := `
		UPDATE players
		SET stamina = LEAST(stamina + $2, max_stamina), last_stamina_time = $3
		WHERE player_id = $1 AND last_stamina_time = $4
	`
	tag, err := r.db.Exec(ctx, query, id, credit, newTime, expectedTime)
	if err != nil {
		return false, fmt.Errorf("failed to credit stamina: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// BeginTx starts a player unit of work
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &playerTx{tx: tx}, nil
}

type playerTx struct {
	tx pgx.Tx
}

func (t *playerTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`
	player, err := scanPlayer(t.tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player for update: %w", err)
	}
	return player, nil
}

func (t *playerTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	if err := updatePlayer(ctx, t.tx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

func (t *playerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *playerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
