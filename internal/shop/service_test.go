package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
)

func TestBuy(t *testing.T) {
	potion := &domain.Item{ID: 6, Name: "Health Potion", Value: 30}

	t.Run("unknown item", func(t *testing.T) {
		items := new(MockItemRepository)
		items.On("GetItemByName", mock.Anything, "Nonsense").Return(nil, domain.ErrItemNotFound)

		svc := NewService(new(MockRepository), items, nil)
		_, err := svc.Buy(context.Background(), "p1", "Nonsense")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("successful purchase publishes event", func(t *testing.T) {
		items := new(MockItemRepository)
		items.On("GetItemByName", mock.Anything, "Health Potion").Return(potion, nil)

		repo := new(MockRepository)
		repo.On("PurchaseGlobal", mock.Anything, "p1", 6).Return(&domain.ShopEntry{
			Item: *potion, Price: 30, Stock: 199, RestockTo: 200,
		}, nil)

		bus := event.NewMemoryBus()
		var published event.ShopPurchasePayloadV1
		bus.Subscribe(event.ShopPurchase, func(ctx context.Context, e event.Event) error {
			published = e.Payload.(event.ShopPurchasePayloadV1)
			return nil
		})

		svc := NewService(repo, items, bus)
		entry, err := svc.Buy(context.Background(), "p1", "Health Potion")
		require.NoError(t, err)

		assert.Equal(t, 199, entry.Stock)
		assert.Equal(t, "p1", published.PlayerID)
		assert.Equal(t, "global", published.Source)
		assert.Equal(t, int64(30), published.Price)
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		items := new(MockItemRepository)
		items.On("GetItemByName", mock.Anything, "Health Potion").Return(potion, nil)

		for _, sentinel := range []error{domain.ErrInsufficientFunds, domain.ErrOutOfStock, domain.ErrNotInShop} {
			repo := new(MockRepository)
			repo.On("PurchaseGlobal", mock.Anything, "p1", 6).Return(nil, sentinel)

			svc := NewService(repo, items, nil)
			_, err := svc.Buy(context.Background(), "p1", "Health Potion")
			assert.ErrorIs(t, err, sentinel)
		}
	})
}

func TestRunRestockSweep(t *testing.T) {
	repo := new(MockRepository)
	repo.On("RestockGlobal", mock.Anything).Return(int64(2), nil)

	svc := NewService(repo, new(MockItemRepository), nil)
	touched, err := svc.RunRestockSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), touched)
}

func TestSell(t *testing.T) {
	sword := &domain.Item{ID: 4, Name: "Iron Sword", Value: 50}

	t.Run("validation", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockItemRepository), nil)

		_, err := svc.Sell(context.Background(), "seller", "Iron Sword", 0, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Sell(context.Background(), "seller", "Iron Sword", 1, -5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("creates listing", func(t *testing.T) {
		items := new(MockItemRepository)
		items.On("GetItemByName", mock.Anything, "Iron Sword").Return(sword, nil)

		repo := new(MockRepository)
		repo.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.SellerID == "seller" && l.ItemID == 4 && l.Quantity == 2 && l.Price == 60
		})).Return(1, nil)

		svc := NewService(repo, items, nil)
		listing, err := svc.Sell(context.Background(), "seller", "Iron Sword", 2, 60)
		require.NoError(t, err)
		assert.Equal(t, "Iron Sword", listing.ItemName)
		repo.AssertExpectations(t)
	})

	t.Run("insufficient inventory", func(t *testing.T) {
		items := new(MockItemRepository)
		items.On("GetItemByName", mock.Anything, "Iron Sword").Return(sword, nil)

		repo := new(MockRepository)
		repo.On("CreateListing", mock.Anything, mock.Anything).Return(0, domain.ErrInsufficientQuantity)

		svc := NewService(repo, items, nil)
		_, err := svc.Sell(context.Background(), "seller", "Iron Sword", 99, 60)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})
}

func TestBuyListing(t *testing.T) {
	t.Run("successful purchase publishes marketplace event", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("PurchaseListing", mock.Anything, "buyer", 1).Return(&domain.Listing{
			ID: 1, SellerID: "seller", ItemID: 4, ItemName: "Iron Sword", Quantity: 2, Price: 60,
		}, nil)

		bus := event.NewMemoryBus()
		var published event.ShopPurchasePayloadV1
		bus.Subscribe(event.ShopPurchase, func(ctx context.Context, e event.Event) error {
			published = e.Payload.(event.ShopPurchasePayloadV1)
			return nil
		})

		svc := NewService(repo, new(MockItemRepository), bus)
		listing, err := svc.BuyListing(context.Background(), "buyer", 1)
		require.NoError(t, err)

		assert.Equal(t, "seller", listing.SellerID)
		assert.Equal(t, "marketplace", published.Source)
	})

	t.Run("missing listing", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("PurchaseListing", mock.Anything, "buyer", 7).Return(nil, domain.ErrListingNotFound)

		svc := NewService(repo, new(MockItemRepository), nil)
		_, err := svc.BuyListing(context.Background(), "buyer", 7)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestCancelListing(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CancelListing", mock.Anything, "seller", 1).Return(nil)
	repo.On("CancelListing", mock.Anything, "intruder", 1).Return(domain.ErrListingNotFound)

	svc := NewService(repo, new(MockItemRepository), nil)
	require.NoError(t, svc.CancelListing(context.Background(), "seller", 1))
	assert.ErrorIs(t, svc.CancelListing(context.Background(), "intruder", 1), domain.ErrListingNotFound)
}
