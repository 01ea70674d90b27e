package dungeon

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/leveling"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/metrics"
	"github.com/osse101/DungeonBot_Go/internal/player"
	"github.com/osse101/DungeonBot_Go/internal/repository"
	"github.com/osse101/DungeonBot_Go/internal/utils"
)

// Service defines the interface for dungeon operations
type Service interface {
	// Commit starts a dungeon run for the player, spending the given
	// stamina. The tier is rolled uniformly and decides both the run
	// duration (one hour per tier) and the odds: a run succeeds when the
	// committed stamina meets or beats the rolled tier.
	Commit(ctx context.Context, playerID string, stamina int) (*domain.DungeonRun, error)

	// GetActiveRun returns the player's in-flight run, or nil
	GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error)

	// RunResolutionSweep resolves every due run exactly once and returns
	// the outcomes. Runs claimed by another worker are skipped silently;
	// one failing run does not stop the sweep.
	RunResolutionSweep(ctx context.Context) ([]domain.ResolvedRun, error)
}

type service struct {
	repo         repository.Dungeon
	curve        leveling.Curve
	bus          event.Bus
	tierDuration time.Duration
	rollTier     func() int
}

// NewService creates a new dungeon service
func NewService(repo repository.Dungeon, curve leveling.Curve, bus event.Bus, tierDuration time.Duration) Service {
	if tierDuration <= 0 {
		tierDuration = time.Hour
	}
	return &service{
		repo:         repo,
		curve:        curve,
		bus:          bus,
		tierDuration: tierDuration,
		rollTier: func() int {
			return utils.RandomInt(domain.DungeonTierMin, domain.DungeonTierMax)
		},
	}
}

func (s *service) Commit(ctx context.Context, playerID string, stamina int) (*domain.DungeonRun, error) {
	log := logger.FromContext(ctx)

	if stamina < 1 {
		return nil, fmt.Errorf("%w: must commit at least 1 stamina", domain.ErrInvalidInput)
	}

	tier := s.rollTier()
	now := time.Now().UTC()
	run := &domain.DungeonRun{
		PlayerID:         playerID,
		Tier:             tier,
		StartTime:        now,
		EndTime:          now.Add(time.Duration(tier) * s.tierDuration),
		StaminaCommitted: stamina,
	}

	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	metrics.DungeonsCommitted.WithLabelValues(strconv.Itoa(tier)).Inc()
	log.Info("Dungeon committed",
		"player_id", playerID, "dungeon_id", run.ID, "tier", tier,
		"stamina", stamina, "ends_at", run.EndTime)

	return run, nil
}

func (s *service) GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error) {
	return s.repo.GetActiveRun(ctx, playerID)
}

func (s *service) RunResolutionSweep(ctx context.Context) ([]domain.ResolvedRun, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	due, err := s.repo.DueRuns(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list due runs: %w", err)
	}

	var resolved []domain.ResolvedRun
	for _, run := range due {
		outcome, err := s.resolveRun(ctx, run.ID)
		if err != nil {
			log.Error("Failed to resolve dungeon run", "dungeon_id", run.ID, "error", err)
			metrics.SweepErrors.WithLabelValues("dungeon").Inc()
			continue
		}
		if outcome == nil {
			// Another worker claimed it first
			continue
		}

		resolved = append(resolved, *outcome)
		s.publishResolved(ctx, outcome)
	}

	metrics.SweepDuration.WithLabelValues("dungeon").Observe(time.Since(start).Seconds())
	if len(due) > 0 {
		log.Info("Dungeon sweep complete", "due", len(due), "resolved", len(resolved))
	}

	return resolved, nil
}

// resolveRun settles one run inside its claim transaction. Returns
// (nil, nil) when the run was already claimed elsewhere.
func (s *service) resolveRun(ctx context.Context, id uuid.UUID) (*domain.ResolvedRun, error) {
	tx, run, err := s.repo.ClaimRun(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDungeonResolved) {
			return nil, nil
		}
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayerForUpdate(ctx, run.PlayerID)
	if err != nil {
		return nil, err
	}

	success := run.StaminaCommitted >= run.Tier
	reward, refund := s.settle(ctx, tx, run, p, success)

	grant := player.ApplyXP(&s.curve, p, reward.XP)
	p.Coins += reward.Coins

	if err := tx.UpdatePlayer(ctx, *p); err != nil {
		return nil, err
	}

	status := domain.DungeonStatusFailed
	if success {
		status = domain.DungeonStatusSuccess
	}
	if err := tx.FinalizeRun(ctx, status, reward); err != nil {
		if errors.Is(err, domain.ErrDungeonResolved) {
			return nil, nil
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}

	outcome := "failed"
	if success {
		outcome = "success"
	}
	metrics.DungeonsResolved.WithLabelValues(strconv.Itoa(run.Tier), outcome).Inc()
	metrics.ItemsDropped.WithLabelValues("dungeon").Add(float64(len(reward.Items)))

	run.Status = status
	run.Rewards = &reward
	return &domain.ResolvedRun{
		Run:             *run,
		Success:         success,
		Reward:          reward,
		StaminaRefunded: refund,
		LevelUp:         grant,
	}, nil
}

// settle computes the reward for the run and applies its side effects
// (item drops, stamina refund, win/loss counters) to the locked player.
func (s *service) settle(ctx context.Context, tx repository.ResolutionTx, run *domain.DungeonRun, p *domain.Player, success bool) (domain.Reward, int) {
	log := logger.FromContext(ctx)
	tier, stamina := run.Tier, run.StaminaCommitted

	if !success {
		p.Losses++
		refund := stamina / 2
		if room := p.MaxStamina - p.Stamina; refund > room {
			refund = room
		}
		p.Stamina += refund

		return domain.Reward{
			XP:    int64(tier*FailureXPPerTier*stamina) / 2,
			Coins: int64(FailureCoinsPerTier * tier * stamina),
		}, refund
	}

	p.Wins++
	reward := domain.Reward{
		XP:    int64(SuccessXPPerTier * tier * stamina),
		Coins: int64(SuccessCoinsPerTier * tier * stamina),
	}

	drops := tier / 2
	if drops < 1 {
		drops = 1
	}
	for i := 0; i < drops; i++ {
		itemID, err := tx.GetRandomItemID(ctx)
		if err != nil {
			log.Warn("Failed to roll item drop", "dungeon_id", run.ID, "error", err)
			break
		}
		if err := tx.AddToInventory(ctx, p.ID, itemID, 1); err != nil {
			log.Warn("Failed to award item drop", "dungeon_id", run.ID, "item_id", itemID, "error", err)
			break
		}
		reward.Items = append(reward.Items, itemID)
	}

	return reward, 0
}

func (s *service) publishResolved(ctx context.Context, r *domain.ResolvedRun) {
	if s.bus == nil {
		return
	}
	evt := event.NewDungeonResolvedEvent(
		r.Run.ID.String(), r.Run.PlayerID, r.Run.Tier, r.Success,
		r.Reward.XP, r.Reward.Coins, r.Reward.Items, r.StaminaRefunded,
	)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish dungeon resolved event", "error", err)
	}
}
