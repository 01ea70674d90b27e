package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

const itemColumns = `item_id, item_name, item_description, base_value, image_url, rarity, drop_rate, min_level`

// ItemRepository implements item definition and inventory persistence for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Value,
		&item.ImageURL, &item.Rarity, &item.DropRate, &item.MinLevel,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// InsertItem inserts a new item definition and returns its id
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	query := `
		INSERT INTO items (item_name, item_description, base_value, image_url, rarity, drop_rate, min_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING item_id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Value, item.ImageURL,
		item.Rarity, item.DropRate, item.MinLevel,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	item.ID = id
	return id, nil
}

// GetItemByID returns one item definition
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// GetItemByName returns one item definition by its unique name
func (r *ItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}
	return item, nil
}

// GetAllItems returns every item definition
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetRandomItemID draws one item definition uniformly at random
func (r *ItemRepository) GetRandomItemID(ctx context.Context) (int, error) {
	return randomItemID(ctx, r.db)
}

// AddToInventory creates or increments the (player, item) entry
func (r *ItemRepository) AddToInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if err := addToInventory(ctx, r.db, playerID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to add to inventory: %w", err)
	}
	return nil
}

// RemoveFromInventory decrements the (player, item) entry, deleting it at
// zero. Removing more than owned fails with ErrInsufficientQuantity.
func (r *ItemRepository) RemoveFromInventory(ctx context.Context, playerID string, itemID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var owned int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM inventory WHERE player_id = $1 AND item_id = $2 FOR UPDATE`,
		playerID, itemID,
	).Scan(&owned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("%w: item %d", domain.ErrInsufficientQuantity, itemID)
		}
		return fmt.Errorf("failed to read inventory: %w", err)
	}

	if owned < quantity {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, owned, quantity)
	}

	if owned == quantity {
		_, err = tx.Exec(ctx, `DELETE FROM inventory WHERE player_id = $1 AND item_id = $2`, playerID, itemID)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE inventory SET quantity = quantity - $3 WHERE player_id = $1 AND item_id = $2`,
			playerID, itemID, quantity)
	}
	if err != nil {
		return fmt.Errorf("failed to remove from inventory: %w", err)
	}

	return tx.Commit(ctx)
}

// GetInventory returns the player's inventory joined with item definitions
func (r *ItemRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	query := `
		SELECT i.item_id, i.item_name, i.item_description, i.base_value,
		       i.image_url, i.rarity, i.drop_rate, i.min_level, inv.quantity
		FROM inventory inv
		JOIN items i ON inv.item_id = i.item_id
		WHERE inv.player_id = $1
		ORDER BY i.item_id
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		err := rows.Scan(
			&e.Item.ID, &e.Item.Name, &e.Item.Description, &e.Item.Value,
			&e.Item.ImageURL, &e.Item.Rarity, &e.Item.DropRate, &e.Item.MinLevel,
			&e.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
