package dungeon_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/dungeon"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/leveling"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubRepository struct {
	due []domain.DungeonRun
}

func (s *StubRepository) CreateRun(ctx context.Context, run *domain.DungeonRun) error { return nil }

func (s *StubRepository) GetRun(ctx context.Context, id uuid.UUID) (*domain.DungeonRun, error) {
	return nil, domain.ErrDungeonNotFound
}

func (s *StubRepository) GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error) {
	return nil, nil
}

func (s *StubRepository) DueRuns(ctx context.Context, now time.Time) ([]domain.DungeonRun, error) {
	return s.due, nil
}

func (s *StubRepository) ClaimRun(ctx context.Context, id uuid.UUID) (repository.ResolutionTx, *domain.DungeonRun, error) {
	for i := range s.due {
		if s.due[i].ID == id {
			// Fresh copy so the resolution can mutate state safely
			run := s.due[i]
			return &StubTx{}, &run, nil
		}
	}
	return nil, nil, domain.ErrDungeonResolved
}

type StubTx struct{}

func (t *StubTx) Commit(ctx context.Context) error   { return nil }
func (t *StubTx) Rollback(ctx context.Context) error { return nil }

func (t *StubTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	return &domain.Player{
		ID:         id,
		Username:   "bench",
		XP:         1000,
		Level:      5,
		Tier:       domain.TierApprentice,
		Stamina:    0,
		MaxStamina: 5,
	}, nil
}

func (t *StubTx) UpdatePlayer(ctx context.Context, player domain.Player) error { return nil }

func (t *StubTx) GetRandomItemID(ctx context.Context) (int, error) { return 1, nil }

func (t *StubTx) AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	return nil
}

func (t *StubTx) FinalizeRun(ctx context.Context, status domain.DungeonStatus, reward domain.Reward) error {
	return nil
}

// dueRuns builds a backlog of resolvable runs across the tier range
func dueRuns(n int) []domain.DungeonRun {
	now := time.Now()
	runs := make([]domain.DungeonRun, n)
	for i := 0; i < n; i++ {
		tier := i%5 + 1
		runs[i] = domain.DungeonRun{
			ID:               uuid.New(),
			PlayerID:         uuid.NewString(),
			Tier:             tier,
			StaminaCommitted: (i % 5) + 1,
			StartTime:        now.Add(-time.Duration(tier) * time.Hour),
			EndTime:          now.Add(-time.Minute),
			Status:           domain.DungeonStatusActive,
		}
	}
	return runs
}

// BenchmarkResolutionSweep measures resolving a backlog of due runs end to
// end against stub persistence, isolating the settlement logic itself.
func BenchmarkResolutionSweep(b *testing.B) {
	for _, backlog := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("backlog%d", backlog), func(b *testing.B) {
			repo := &StubRepository{due: dueRuns(backlog)}
			svc := dungeon.NewService(repo, leveling.DefaultCurve(), event.NewMemoryBus(), time.Hour)
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := svc.RunResolutionSweep(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCommit measures starting a run, which rolls the tier and prices
// the duration but writes through stub persistence.
func BenchmarkCommit(b *testing.B) {
	svc := dungeon.NewService(&StubRepository{}, leveling.DefaultCurve(), event.NewMemoryBus(), time.Hour)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Commit(ctx, "bench-player", 3); err != nil {
			b.Fatal(err)
		}
	}
}
