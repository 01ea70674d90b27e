package dungeon

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// MockRepository implements repository.Dungeon for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRun(ctx context.Context, run *domain.DungeonRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRepository) GetRun(ctx context.Context, id uuid.UUID) (*domain.DungeonRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonRun), args.Error(1)
}

func (m *MockRepository) GetActiveRun(ctx context.Context, playerID string) (*domain.DungeonRun, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonRun), args.Error(1)
}

func (m *MockRepository) DueRuns(ctx context.Context, now time.Time) ([]domain.DungeonRun, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DungeonRun), args.Error(1)
}

func (m *MockRepository) ClaimRun(ctx context.Context, id uuid.UUID) (repository.ResolutionTx, *domain.DungeonRun, error) {
	args := m.Called(ctx, id)
	var tx repository.ResolutionTx
	if args.Get(0) != nil {
		tx = args.Get(0).(repository.ResolutionTx)
	}
	var run *domain.DungeonRun
	if args.Get(1) != nil {
		run = args.Get(1).(*domain.DungeonRun)
	}
	return tx, run, args.Error(2)
}

// MockResolutionTx implements repository.ResolutionTx for testing
type MockResolutionTx struct {
	mock.Mock
}

func (m *MockResolutionTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockResolutionTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockResolutionTx) GetRandomItemID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockResolutionTx) AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	args := m.Called(ctx, playerID, itemID, quantity)
	return args.Error(0)
}

func (m *MockResolutionTx) FinalizeRun(ctx context.Context, status domain.DungeonStatus, reward domain.Reward) error {
	args := m.Called(ctx, status, reward)
	return args.Error(0)
}

func (m *MockResolutionTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResolutionTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
