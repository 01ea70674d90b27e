package repository

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Shop defines the interface for the global shop and marketplace listings.
// Purchase operations are atomic units: funds, stock and inventory move in
// one transaction or not at all.
type Shop interface {
	ListGlobalShop(ctx context.Context) ([]domain.ShopEntry, error)

	// PurchaseGlobal buys one unit from the global catalog. Returns
	// domain.ErrInsufficientFunds, domain.ErrOutOfStock or
	// domain.ErrNotInShop as appropriate.
	PurchaseGlobal(ctx context.Context, playerID string, itemID int) (*domain.ShopEntry, error)

	// RestockGlobal resets finite stock to each entry's baseline and
	// returns the number of entries touched.
	RestockGlobal(ctx context.Context) (int64, error)

	// CreateListing moves quantity out of the seller's inventory and
	// inserts the listing.
	CreateListing(ctx context.Context, listing *domain.Listing) (int, error)
	GetListing(ctx context.Context, listingID int) (*domain.Listing, error)
	ListListings(ctx context.Context) ([]domain.Listing, error)

	// PurchaseListing transfers coins buyer->seller and items seller->buyer
	// and deletes the listing. Listings are all-or-nothing.
	PurchaseListing(ctx context.Context, buyerID string, listingID int) (*domain.Listing, error)

	// CancelListing returns the listed items to the seller and deletes the
	// listing. Only the seller may cancel.
	CancelListing(ctx context.Context, sellerID string, listingID int) error
}
