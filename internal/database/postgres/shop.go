package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// ShopRepository implements the global shop and marketplace for PostgreSQL.
// Purchases are single transactions: funds, stock and inventory move together
// or not at all.
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// ListGlobalShop returns the global catalog joined with item definitions
func (r *ShopRepository) ListGlobalShop(ctx context.Context) ([]domain.ShopEntry, error) {
	query := `
		SELECT i.item_id, i.item_name, i.item_description, i.base_value,
		       i.image_url, i.rarity, i.drop_rate, i.min_level,
		       gs.price, gs.stock, gs.restock_to
		FROM global_shop gs
		JOIN items i ON gs.item_id = i.item_id
		ORDER BY gs.price
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query global shop: %w", err)
	}
	defer rows.Close()

	var entries []domain.ShopEntry
	for rows.Next() {
		var e domain.ShopEntry
		err := rows.Scan(
			&e.Item.ID, &e.Item.Name, &e.Item.Description, &e.Item.Value,
			&e.Item.ImageURL, &e.Item.Rarity, &e.Item.DropRate, &e.Item.MinLevel,
			&e.Price, &e.Stock, &e.RestockTo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PurchaseGlobal buys one unit from the global catalog
func (r *ShopRepository) PurchaseGlobal(ctx context.Context, playerID string, itemID int) (*domain.ShopEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var entry domain.ShopEntry
	err = tx.QueryRow(ctx, `
		SELECT i.item_id, i.item_name, i.item_description, i.base_value,
		       i.image_url, i.rarity, i.drop_rate, i.min_level,
		       gs.price, gs.stock, gs.restock_to
		FROM global_shop gs
		JOIN items i ON gs.item_id = i.item_id
		WHERE gs.item_id = $1
		FOR UPDATE OF gs`, itemID,
	).Scan(
		&entry.Item.ID, &entry.Item.Name, &entry.Item.Description, &entry.Item.Value,
		&entry.Item.ImageURL, &entry.Item.Rarity, &entry.Item.DropRate, &entry.Item.MinLevel,
		&entry.Price, &entry.Stock, &entry.RestockTo,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: item %d", domain.ErrNotInShop, itemID)
		}
		return nil, fmt.Errorf("failed to lock shop entry: %w", err)
	}

	if !entry.InStock() {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutOfStock, entry.Item.Name)
	}

	var coins int64
	err = tx.QueryRow(ctx, `SELECT coins FROM players WHERE player_id = $1 FOR UPDATE`, playerID).Scan(&coins)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}
	if coins < entry.Price {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, coins, entry.Price)
	}

	if _, err = tx.Exec(ctx, `UPDATE players SET coins = coins - $2 WHERE player_id = $1`, playerID, entry.Price); err != nil {
		return nil, fmt.Errorf("failed to deduct coins: %w", err)
	}

	if entry.Stock != domain.UnlimitedStock {
		if _, err = tx.Exec(ctx, `UPDATE global_shop SET stock = stock - 1 WHERE item_id = $1`, itemID); err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
		entry.Stock--
	}

	if err = addToInventory(ctx, tx, playerID, itemID, 1); err != nil {
		return nil, fmt.Errorf("failed to add to inventory: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RestockGlobal resets finite stock back to each entry's baseline
func (r *ShopRepository) RestockGlobal(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE global_shop
		SET stock = restock_to
		WHERE restock_to <> $1 AND stock < restock_to`, domain.UnlimitedStock)
	if err != nil {
		return 0, fmt.Errorf("failed to restock global shop: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreateListing moves quantity out of the seller's inventory and inserts the listing
func (r *ShopRepository) CreateListing(ctx context.Context, listing *domain.Listing) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var owned int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM inventory WHERE player_id = $1 AND item_id = $2 FOR UPDATE`,
		listing.SellerID, listing.ItemID,
	).Scan(&owned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, fmt.Errorf("%w: item %d", domain.ErrInsufficientQuantity, listing.ItemID)
		}
		return 0, fmt.Errorf("failed to read inventory: %w", err)
	}
	if owned < listing.Quantity {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, owned, listing.Quantity)
	}

	if owned == listing.Quantity {
		_, err = tx.Exec(ctx, `DELETE FROM inventory WHERE player_id = $1 AND item_id = $2`,
			listing.SellerID, listing.ItemID)
	} else {
		_, err = tx.Exec(ctx, `UPDATE inventory SET quantity = quantity - $3 WHERE player_id = $1 AND item_id = $2`,
			listing.SellerID, listing.ItemID, listing.Quantity)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to withdraw listed items: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO marketplace_listings (seller_id, item_id, quantity, price)
		 VALUES ($1, $2, $3, $4)
		 RETURNING listing_id, created_at`,
		listing.SellerID, listing.ItemID, listing.Quantity, listing.Price,
	).Scan(&listing.ID, &listing.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert listing: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return listing.ID, nil
}

const listingColumns = `l.listing_id, l.seller_id, l.item_id, i.item_name, l.quantity, l.price, l.created_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(&l.ID, &l.SellerID, &l.ItemID, &l.ItemName, &l.Quantity, &l.Price, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetListing returns one marketplace listing
func (r *ShopRepository) GetListing(ctx context.Context, listingID int) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM marketplace_listings l
		JOIN items i ON l.item_id = i.item_id
		WHERE l.listing_id = $1`
	listing, err := scanListing(r.db.QueryRow(ctx, query, listingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

// ListListings returns all open marketplace listings
func (r *ShopRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM marketplace_listings l
		JOIN items i ON l.item_id = i.item_id
		ORDER BY l.created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

// PurchaseListing transfers coins buyer->seller and items seller->buyer and
// deletes the listing
func (r *ShopRepository) PurchaseListing(ctx context.Context, buyerID string, listingID int) (*domain.Listing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + listingColumns + `
		FROM marketplace_listings l
		JOIN items i ON l.item_id = i.item_id
		WHERE l.listing_id = $1
		FOR UPDATE OF l`
	listing, err := scanListing(tx.QueryRow(ctx, query, listingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}

	var coins int64
	err = tx.QueryRow(ctx, `SELECT coins FROM players WHERE player_id = $1 FOR UPDATE`, buyerID).Scan(&coins)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to lock buyer: %w", err)
	}
	if coins < listing.Price {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, coins, listing.Price)
	}

	if _, err = tx.Exec(ctx, `UPDATE players SET coins = coins - $2 WHERE player_id = $1`, buyerID, listing.Price); err != nil {
		return nil, fmt.Errorf("failed to deduct buyer coins: %w", err)
	}
	if _, err = tx.Exec(ctx, `UPDATE players SET coins = coins + $2 WHERE player_id = $1`, listing.SellerID, listing.Price); err != nil {
		return nil, fmt.Errorf("failed to credit seller coins: %w", err)
	}

	if err = addToInventory(ctx, tx, buyerID, listing.ItemID, listing.Quantity); err != nil {
		return nil, fmt.Errorf("failed to deliver items: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM marketplace_listings WHERE listing_id = $1`, listingID); err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

// CancelListing returns the listed items to the seller and deletes the listing
func (r *ShopRepository) CancelListing(ctx context.Context, sellerID string, listingID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var itemID, quantity int
	var owner string
	err = tx.QueryRow(ctx,
		`SELECT seller_id, item_id, quantity FROM marketplace_listings WHERE listing_id = $1 FOR UPDATE`,
		listingID,
	).Scan(&owner, &itemID, &quantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("failed to lock listing: %w", err)
	}
	if owner != sellerID {
		return fmt.Errorf("%w: listing %d", domain.ErrListingNotFound, listingID)
	}

	if err = addToInventory(ctx, tx, sellerID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to return listed items: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM marketplace_listings WHERE listing_id = $1`, listingID); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	return tx.Commit(ctx)
}
