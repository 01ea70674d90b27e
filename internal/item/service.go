package item

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/metrics"
	"github.com/osse101/DungeonBot_Go/internal/repository"
	"github.com/osse101/DungeonBot_Go/internal/utils"
)

// CacheSize is the number of item definitions kept in memory. Definitions
// are immutable once created, so cached entries never go stale.
const CacheSize = 256

// Service defines the interface for item and inventory operations
type Service interface {
	// CreateItem registers a new item definition
	CreateItem(ctx context.Context, item *domain.Item) (int, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetRandomItem draws one item definition uniformly at random
	GetRandomItem(ctx context.Context) (*domain.Item, error)

	// RollDrop rolls each eligible item's drop rate once and awards the
	// first hit to the player. Items above the player's level never drop.
	// Returns nil when nothing dropped.
	RollDrop(ctx context.Context, playerID string, playerLevel int) (*domain.Item, error)

	AddItem(ctx context.Context, playerID string, itemID, quantity int) error
	RemoveItem(ctx context.Context, playerID string, itemID, quantity int) error
	ListInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)
}

type service struct {
	repo  repository.Item
	bus   event.Bus
	cache *lru.Cache[int, *domain.Item]
	rnd   func() float64
}

// NewService creates a new item service
func NewService(repo repository.Item, bus event.Bus) Service {
	// Only errors on a non-positive size
	cache, _ := lru.New[int, *domain.Item](CacheSize)
	return &service{
		repo:  repo,
		bus:   bus,
		cache: cache,
		rnd:   utils.RandomFloat,
	}
}

func (s *service) CreateItem(ctx context.Context, item *domain.Item) (int, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" {
		return 0, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if !item.Rarity.Valid() {
		return 0, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, item.Rarity)
	}
	if item.DropRate < 0 || item.DropRate > 1 {
		return 0, fmt.Errorf("%w: drop rate must be in [0, 1]", domain.ErrInvalidInput)
	}
	if item.MinLevel < 1 {
		item.MinLevel = 1
	}

	id, err := s.repo.InsertItem(ctx, item)
	if err != nil {
		return 0, err
	}

	s.cache.Add(id, item)
	log.Info("Item created", "item_id", id, "name", item.Name, "rarity", item.Rarity)
	return id, nil
}

func (s *service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	if item, ok := s.cache.Get(id); ok {
		return item, nil
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, item)
	return item, nil
}

func (s *service) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return s.repo.GetItemByName(ctx, name)
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.GetAllItems(ctx)
}

func (s *service) GetRandomItem(ctx context.Context) (*domain.Item, error) {
	id, err := s.repo.GetRandomItemID(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

func (s *service) RollDrop(ctx context.Context, playerID string, playerLevel int) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item table: %w", err)
	}

	for i := range items {
		candidate := &items[i]
		if candidate.MinLevel > playerLevel {
			continue
		}
		if s.rnd() >= candidate.DropRate {
			continue
		}

		if err := s.repo.AddToInventory(ctx, playerID, candidate.ID, 1); err != nil {
			return nil, fmt.Errorf("failed to award drop: %w", err)
		}

		metrics.ItemsDropped.WithLabelValues("passive").Inc()
		log.Info("Item dropped", "player_id", playerID, "item", candidate.Name)
		if s.bus != nil {
			if err := s.bus.Publish(ctx, event.NewItemDroppedEvent(playerID, candidate.Name)); err != nil {
				log.Warn("Failed to publish item drop event", "error", err)
			}
		}
		return candidate, nil
	}

	return nil, nil
}

func (s *service) AddItem(ctx context.Context, playerID string, itemID, quantity int) error {
	return s.repo.AddToInventory(ctx, playerID, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, playerID string, itemID, quantity int) error {
	return s.repo.RemoveFromInventory(ctx, playerID, itemID, quantity)
}

func (s *service) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	return s.repo.GetInventory(ctx, playerID)
}
