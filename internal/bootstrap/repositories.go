package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/database/postgres"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Player  repository.Player
	Item    repository.Item
	Dungeon repository.Dungeon
	Shop    repository.Shop
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:  postgres.NewPlayerRepository(dbPool),
		Item:    postgres.NewItemRepository(dbPool),
		Dungeon: postgres.NewDungeonRepository(dbPool),
		Shop:    postgres.NewShopRepository(dbPool),
	}
}
