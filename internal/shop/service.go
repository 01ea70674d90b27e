package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/metrics"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// Purchase source labels
const (
	sourceGlobal      = "global"
	sourceMarketplace = "marketplace"
)

// Service defines the interface for the global shop and player marketplace
type Service interface {
	// ListShop returns the global catalog
	ListShop(ctx context.Context) ([]domain.ShopEntry, error)

	// Buy purchases one unit of the item from the global shop
	Buy(ctx context.Context, playerID string, itemName string) (*domain.ShopEntry, error)

	// RunRestockSweep resets depleted global stock to its baseline
	RunRestockSweep(ctx context.Context) (int64, error)

	// Sell lists items from the seller's inventory on the marketplace
	Sell(ctx context.Context, sellerID string, itemName string, quantity int, price int64) (*domain.Listing, error)
	ListMarketplace(ctx context.Context) ([]domain.Listing, error)

	// BuyListing purchases a marketplace listing whole
	BuyListing(ctx context.Context, buyerID string, listingID int) (*domain.Listing, error)
	CancelListing(ctx context.Context, sellerID string, listingID int) error
}

type service struct {
	repo  repository.Shop
	items repository.Item
	bus   event.Bus
}

// NewService creates a new shop service
func NewService(repo repository.Shop, items repository.Item, bus event.Bus) Service {
	return &service{repo: repo, items: items, bus: bus}
}

func (s *service) ListShop(ctx context.Context) ([]domain.ShopEntry, error) {
	return s.repo.ListGlobalShop(ctx)
}

func (s *service) Buy(ctx context.Context, playerID string, itemName string) (*domain.ShopEntry, error) {
	log := logger.FromContext(ctx)

	item, err := s.items.GetItemByName(ctx, itemName)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.PurchaseGlobal(ctx, playerID, item.ID)
	if err != nil {
		return nil, err
	}

	metrics.ShopPurchases.WithLabelValues(sourceGlobal, entry.Item.Name).Inc()
	log.Info("Shop purchase",
		"player_id", playerID, "item", entry.Item.Name, "price", entry.Price)
	s.publishPurchase(ctx, playerID, entry.Item.Name, entry.Price, sourceGlobal)

	return entry, nil
}

func (s *service) RunRestockSweep(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	touched, err := s.repo.RestockGlobal(ctx)
	if err != nil {
		metrics.SweepErrors.WithLabelValues("restock").Inc()
		return 0, fmt.Errorf("failed to restock shop: %w", err)
	}

	metrics.SweepDuration.WithLabelValues("restock").Observe(time.Since(start).Seconds())
	if touched > 0 {
		metrics.ShopRestocks.Add(float64(touched))
		log.Info("Shop restocked", "entries", touched)
	}
	return touched, nil
}

func (s *service) Sell(ctx context.Context, sellerID string, itemName string, quantity int, price int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)

	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	item, err := s.items.GetItemByName(ctx, itemName)
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		SellerID: sellerID,
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: quantity,
		Price:    price,
	}
	if _, err := s.repo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	log.Info("Listing created",
		"listing_id", listing.ID, "seller_id", sellerID,
		"item", item.Name, "quantity", quantity, "price", price)
	return listing, nil
}

func (s *service) ListMarketplace(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.ListListings(ctx)
}

func (s *service) BuyListing(ctx context.Context, buyerID string, listingID int) (*domain.Listing, error) {
	log := logger.FromContext(ctx)

	listing, err := s.repo.PurchaseListing(ctx, buyerID, listingID)
	if err != nil {
		return nil, err
	}

	metrics.ShopPurchases.WithLabelValues(sourceMarketplace, listing.ItemName).Inc()
	log.Info("Marketplace purchase",
		"listing_id", listingID, "buyer_id", buyerID,
		"seller_id", listing.SellerID, "price", listing.Price)
	s.publishPurchase(ctx, buyerID, listing.ItemName, listing.Price, sourceMarketplace)

	return listing, nil
}

func (s *service) CancelListing(ctx context.Context, sellerID string, listingID int) error {
	return s.repo.CancelListing(ctx, sellerID, listingID)
}

func (s *service) publishPurchase(ctx context.Context, playerID, itemName string, price int64, source string) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewShopPurchaseEvent(playerID, itemName, price, source)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish purchase event", "error", err)
	}
}
