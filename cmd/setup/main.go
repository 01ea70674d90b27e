// Command setup provisions the database for local development: it creates
// the database if missing, applies migrations and optionally imports an item
// seed file validated against the embedded schema.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/database"
	"github.com/osse101/DungeonBot_Go/internal/database/postgres"
	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/utils"
	"github.com/osse101/DungeonBot_Go/internal/validation"
)

type seedItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rarity      string  `json:"rarity"`
	Value       int64   `json:"value"`
	DropRate    float64 `json:"drop_rate"`
	MinLevel    int     `json:"min_level"`
	ImageURL    string  `json:"image_url"`
}

type seedShopEntry struct {
	Item      string `json:"item"`
	Price     int64  `json:"price"`
	Stock     *int   `json:"stock"`
	RestockTo *int   `json:"restock_to"`
}

type seedFile struct {
	Items []seedItem      `json:"items"`
	Shop  []seedShopEntry `json:"shop"`
}

func main() {
	seedPath := flag.String("seed", "", "path to an item seed file to import after migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	if *seedPath != "" {
		if err := importSeed(ctx, cfg, *seedPath); err != nil {
			log.Fatalf("Failed to import seed file: %v", err)
		}
	}
}

// ensureDatabase creates the target database if it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}

// importSeed validates the seed file and upserts its items and shop entries
func importSeed(ctx context.Context, cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	validator, err := validation.NewItemValidator()
	if err != nil {
		return err
	}
	if err := validator.Validate(data); err != nil {
		return err
	}

	var seed seedFile
	if err := utils.LoadJSON(path, &seed); err != nil {
		return err
	}

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	items := postgres.NewItemRepository(pool)

	for _, s := range seed.Items {
		if _, err := items.GetItemByName(ctx, s.Name); err == nil {
			fmt.Printf("Item %q already exists, skipping.\n", s.Name)
			continue
		} else if !errors.Is(err, domain.ErrItemNotFound) {
			return err
		}

		minLevel := s.MinLevel
		if minLevel == 0 {
			minLevel = 1
		}

		id, err := items.InsertItem(ctx, &domain.Item{
			Name:        s.Name,
			Description: s.Description,
			Rarity:      domain.Rarity(s.Rarity),
			Value:       s.Value,
			DropRate:    s.DropRate,
			MinLevel:    minLevel,
			ImageURL:    s.ImageURL,
		})
		if err != nil {
			return fmt.Errorf("failed to insert item %q: %w", s.Name, err)
		}
		fmt.Printf("Inserted item %q as #%d.\n", s.Name, id)
	}

	for _, entry := range seed.Shop {
		item, err := items.GetItemByName(ctx, entry.Item)
		if err != nil {
			return fmt.Errorf("shop entry for unknown item %q: %w", entry.Item, err)
		}

		stock := domain.UnlimitedStock
		if entry.Stock != nil {
			stock = *entry.Stock
		}
		restockTo := stock
		if entry.RestockTo != nil {
			restockTo = *entry.RestockTo
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO global_shop (item_id, price, stock, restock_to)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (item_id) DO UPDATE
			SET price = EXCLUDED.price, stock = EXCLUDED.stock, restock_to = EXCLUDED.restock_to`,
			item.ID, entry.Price, stock, restockTo)
		if err != nil {
			return fmt.Errorf("failed to upsert shop entry for %q: %w", entry.Item, err)
		}
		fmt.Printf("Stocked %q at %d coins.\n", entry.Item, entry.Price)
	}

	return nil
}
