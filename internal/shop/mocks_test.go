package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// MockRepository implements repository.Shop for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListGlobalShop(ctx context.Context) ([]domain.ShopEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopEntry), args.Error(1)
}

func (m *MockRepository) PurchaseGlobal(ctx context.Context, playerID string, itemID int) (*domain.ShopEntry, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopEntry), args.Error(1)
}

func (m *MockRepository) RestockGlobal(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateListing(ctx context.Context, listing *domain.Listing) (int, error) {
	args := m.Called(ctx, listing)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetListing(ctx context.Context, listingID int) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockRepository) PurchaseListing(ctx context.Context, buyerID string, listingID int) (*domain.Listing, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockRepository) CancelListing(ctx context.Context, sellerID string, listingID int) error {
	args := m.Called(ctx, sellerID, listingID)
	return args.Error(0)
}

// MockItemRepository implements the item lookups the shop needs
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetRandomItemID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	args := m.Called(ctx, playerID, itemID, quantity)
	return args.Error(0)
}

func (m *MockItemRepository) RemoveFromInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	args := m.Called(ctx, playerID, itemID, quantity)
	return args.Error(0)
}

func (m *MockItemRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}
