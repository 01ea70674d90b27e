package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

const runColumns = `dungeon_id, player_id, tier, start_time, end_time, stamina_committed, status, rewards, created_at`

// DungeonRepository implements dungeon run persistence for PostgreSQL
type DungeonRepository struct {
	db *pgxpool.Pool
}

// NewDungeonRepository creates a new DungeonRepository
func NewDungeonRepository(db *pgxpool.Pool) *DungeonRepository {
	return &DungeonRepository{db: db}
}

func scanRun(row pgx.Row) (*domain.DungeonRun, error) {
	var run domain.DungeonRun
	var rewards []byte
	err := row.Scan(
		&run.ID, &run.PlayerID, &run.Tier, &run.StartTime, &run.EndTime,
		&run.StaminaCommitted, &run.Status, &rewards, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(rewards) > 0 {
		var r domain.Reward
		if err := json.Unmarshal(rewards, &r); err != nil {
			return nil, fmt.Errorf("failed to decode rewards: %w", err)
		}
		run.Rewards = &r
	}
	return &run, nil
}

// CreateRun atomically inserts the run, deducts the committed stamina and
// writes the active-dungeon pointer on the player row. The deduction re-checks
// stamina under lock so two racing commits cannot overdraw.
func (r *DungeonRepository) CreateRun(ctx context.Context, run *domain.DungeonRun) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var stamina int
	var dungeonEnd *time.Time
	err = tx.QueryRow(ctx,
		`SELECT stamina, current_dungeon_end FROM players WHERE player_id = $1 FOR UPDATE`,
		run.PlayerID,
	).Scan(&stamina, &dungeonEnd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to lock player: %w", err)
	}

	if dungeonEnd != nil {
		return domain.ErrDungeonActive
	}
	if stamina < run.StaminaCommitted {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientStamina, stamina, run.StaminaCommitted)
	}

	_, err = tx.Exec(ctx,
		`UPDATE players
		 SET stamina = stamina - $2, current_dungeon_end = $3, current_dungeon_stamina = $2
		 WHERE player_id = $1`,
		run.PlayerID, run.StaminaCommitted, run.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to deduct stamina: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO dungeon_runs (player_id, tier, start_time, end_time, stamina_committed, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING dungeon_id, created_at`,
		run.PlayerID, run.Tier, run.StartTime, run.EndTime, run.StaminaCommitted, domain.DungeonStatusActive,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dungeon run: %w", err)
	}
	run.Status = domain.DungeonStatusActive

	return tx.Commit(ctx)
}

// GetRun returns one dungeon run by id
func (r *DungeonRepository) GetRun(ctx context.Context, id uuid.UUID) (*domain.DungeonRun, error) {
	run, err := scanRun(r.db.QueryRow(ctx, `SELECT `+runColumns+` FROM dungeon_runs WHERE dungeon_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDungeonNotFound
		}
		return nil, fmt.Errorf("failed to get dungeon run: %w", err)
	}
	return run, nil
}

// GetActiveRun returns the player's active run, or nil when none is active
func (r *DungeonRepository) GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error) {
	query := `SELECT ` + runColumns + ` FROM dungeon_runs WHERE player_id = $1 AND status = $2`
	run, err := scanRun(r.db.QueryRow(ctx, query, playerID, domain.DungeonStatusActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active run: %w", err)
	}
	return run, nil
}

// DueRuns returns active runs whose end time has passed
func (r *DungeonRepository) DueRuns(ctx context.Context, now time.Time) ([]domain.DungeonRun, error) {
	query := `
		SELECT ` + runColumns + `
		FROM dungeon_runs
		WHERE status = $1 AND end_time <= $2
		ORDER BY end_time
	`
	rows, err := r.db.Query(ctx, query, domain.DungeonStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.DungeonRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dungeon run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// ClaimRun opens the resolution transaction and locks the run row if it is
// still active. SKIP LOCKED makes concurrent sweep workers pass over runs
// another worker is already resolving instead of blocking on them.
func (r *DungeonRepository) ClaimRun(ctx context.Context, id uuid.UUID) (repository.ResolutionTx, *domain.DungeonRun, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		SELECT ` + runColumns + `
		FROM dungeon_runs
		WHERE dungeon_id = $1 AND status = $2
		FOR UPDATE SKIP LOCKED
	`
	run, err := scanRun(tx.QueryRow(ctx, query, id, domain.DungeonStatusActive))
	if err != nil {
		_ = tx.Rollback(ctx)
		if err == pgx.ErrNoRows {
			return nil, nil, domain.ErrDungeonResolved
		}
		return nil, nil, fmt.Errorf("failed to claim run: %w", err)
	}

	return &resolutionTx{tx: tx, run: *run}, run, nil
}

type resolutionTx struct {
	tx  pgx.Tx
	run domain.DungeonRun
}

func (t *resolutionTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
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

func (t *resolutionTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	if err := updatePlayer(ctx, t.tx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

func (t *resolutionTx) GetRandomItemID(ctx context.Context) (int, error) {
	return randomItemID(ctx, t.tx)
}

func (t *resolutionTx) AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	if err := addToInventory(ctx, t.tx, playerID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to add to inventory: %w", err)
	}
	return nil
}

// FinalizeRun freezes the run's terminal status and reward summary and
// clears the player's active-dungeon pointer
func (t *resolutionTx) FinalizeRun(ctx context.Context, status domain.DungeonStatus, reward domain.Reward) error {
	if !status.Terminal() {
		return fmt.Errorf("%w: status %q is not terminal", domain.ErrInvalidInput, status)
	}

	rewards, err := json.Marshal(reward)
	if err != nil {
		return fmt.Errorf("failed to encode rewards: %w", err)
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE dungeon_runs SET status = $2, rewards = $3 WHERE dungeon_id = $1 AND status = $4`,
		t.run.ID, status, rewards, domain.DungeonStatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDungeonResolved
	}

	_, err = t.tx.Exec(ctx,
		`UPDATE players SET current_dungeon_end = NULL, current_dungeon_stamina = NULL WHERE player_id = $1`,
		t.run.PlayerID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear active dungeon pointer: %w", err)
	}
	return nil
}

func (t *resolutionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *resolutionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
