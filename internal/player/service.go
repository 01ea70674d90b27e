package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/leveling"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/metrics"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// SweepResult summarizes one stamina regeneration sweep
type SweepResult struct {
	PlayersScanned  int `json:"players_scanned"`
	PlayersUpdated  int `json:"players_updated"`
	StaminaCredited int `json:"stamina_credited"`
	Errors          int `json:"errors"`
}

// Service defines the interface for player operations
type Service interface {
	// EnsurePlayer registers the player if they are not known yet.
	// Safe to call on every interaction.
	EnsurePlayer(ctx context.Context, playerID, username string) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// GrantXP adds experience and applies any level-ups atomically,
	// including the per-level coin reward. Negative amounts are rejected.
	GrantXP(ctx context.Context, playerID string, amount int64, source string) (*domain.XPGrant, error)

	// GrantCoins adjusts the player's balance and returns the new total.
	// Negative deltas that would take the balance below zero are rejected.
	GrantCoins(ctx context.Context, playerID string, amount int64) (int64, error)

	// RunStaminaSweep credits regenerated stamina to every eligible player.
	// One failing player does not stop the sweep.
	RunStaminaSweep(ctx context.Context) (*SweepResult, error)
}

type service struct {
	repo            repository.Player
	curve           leveling.Curve
	bus             event.Bus
	maxStamina      int
	staminaInterval time.Duration
}

// NewService creates a new player service
func NewService(repo repository.Player, curve leveling.Curve, bus event.Bus, maxStamina int, staminaInterval time.Duration) Service {
	return &service{
		repo:            repo,
		curve:           curve,
		bus:             bus,
		maxStamina:      maxStamina,
		staminaInterval: staminaInterval,
	}
}

func (s *service) EnsurePlayer(ctx context.Context, playerID, username string) error {
	if playerID == "" || username == "" {
		return fmt.Errorf("%w: player id and username are required", domain.ErrInvalidInput)
	}
	if err := s.repo.EnsurePlayer(ctx, playerID, username, s.maxStamina); err != nil {
		return fmt.Errorf("failed to ensure player: %w", err)
	}
	return nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.repo.GetPlayer(ctx, playerID)
}

func (s *service) GrantXP(ctx context.Context, playerID string, amount int64, source string) (*domain.XPGrant, error) {
	log := logger.FromContext(ctx)

	if amount < 0 {
		return nil, fmt.Errorf("%w: xp amount must not be negative", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	oldLevel := player.Level
	grant := ApplyXP(&s.curve, player, amount)

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit xp grant: %w", err)
	}

	metrics.XPGranted.WithLabelValues(source).Add(float64(amount))
	if grant.LeveledUp() {
		metrics.LevelUps.Add(float64(grant.LevelsGained))
		log.Info("Player leveled up",
			"player_id", playerID, "old_level", oldLevel, "new_level", grant.NewLevel)
		if s.bus != nil {
			evt := event.NewPlayerLeveledUpEvent(playerID, oldLevel, grant.NewLevel, string(grant.NewTier))
			if err := s.bus.Publish(ctx, evt); err != nil {
				log.Warn("Failed to publish level-up event", "error", err)
			}
		}
	}

	return grant, nil
}

// ApplyXP mutates the player in place with the new XP total, recomputed
// level and tier, and the coin reward for any levels gained. Exported for
// the dungeon resolution path, which folds XP into its own transaction.
func ApplyXP(curve *leveling.Curve, player *domain.Player, amount int64) *domain.XPGrant {
	oldLevel := player.Level

	player.XP += amount
	player.Level = curve.Level(player.XP)
	player.Tier = leveling.TierFor(player.Level)

	levelsGained := player.Level - oldLevel
	if levelsGained < 0 {
		// Stored level ahead of the curve (config change); never demote
		player.Level = oldLevel
		player.Tier = leveling.TierFor(oldLevel)
		levelsGained = 0
	}

	coins := int64(levelsGained) * curve.LevelCoinReward
	player.Coins += coins

	return &domain.XPGrant{
		NewXP:        player.XP,
		NewLevel:     player.Level,
		LevelsGained: levelsGained,
		CoinsAwarded: coins,
		NewTier:      player.Tier,
	}
}

func (s *service) GrantCoins(ctx context.Context, playerID string, amount int64) (int64, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return 0, err
	}

	if player.Coins+amount < 0 {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, player.Coins, -amount)
	}
	player.Coins += amount

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit coin grant: %w", err)
	}

	return player.Coins, nil
}

func (s *service) RunStaminaSweep(ctx context.Context) (*SweepResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	players, err := s.repo.RegenerablePlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regenerable players: %w", err)
	}

	result := &SweepResult{PlayersScanned: len(players)}
	now := time.Now().UTC()

	for _, p := range players {
		credited, newTime := regenerate(p, now, s.staminaInterval)
		if credited == 0 {
			continue
		}

		applied, err := s.repo.CreditStamina(ctx, p.ID, credited, newTime, *p.LastStaminaTime)
		if err != nil {
			log.Error("Failed to credit stamina", "player_id", p.ID, "error", err)
			metrics.SweepErrors.WithLabelValues("stamina").Inc()
			result.Errors++
			continue
		}
		if !applied {
			// Another sweep advanced this player's clock first
			continue
		}

		result.PlayersUpdated++
		result.StaminaCredited += credited
	}

	metrics.StaminaRegenerated.Add(float64(result.StaminaCredited))
	metrics.SweepDuration.WithLabelValues("stamina").Observe(time.Since(start).Seconds())
	log.Debug("Stamina sweep complete",
		"scanned", result.PlayersScanned,
		"updated", result.PlayersUpdated,
		"credited", result.StaminaCredited,
		"errors", result.Errors)

	return result, nil
}

// regenerate computes the stamina credit for one player. The timestamp
// advances by exactly one interval per point credited so partial intervals
// are never lost between sweeps.
func regenerate(p domain.Player, now time.Time, interval time.Duration) (credited int, newTime time.Time) {
	if p.LastStaminaTime == nil || p.Stamina >= p.MaxStamina {
		return 0, now
	}

	elapsed := now.Sub(*p.LastStaminaTime)
	if elapsed < interval {
		return 0, *p.LastStaminaTime
	}

	credited = int(elapsed / interval)
	if room := p.MaxStamina - p.Stamina; credited > room {
		credited = room
	}

	newTime = p.LastStaminaTime.Add(interval * time.Duration(credited))
	return credited, newTime
}
