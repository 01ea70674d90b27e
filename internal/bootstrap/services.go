package bootstrap

import (
	"time"

	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/dungeon"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/item"
	"github.com/osse101/DungeonBot_Go/internal/leveling"
	"github.com/osse101/DungeonBot_Go/internal/player"
	"github.com/osse101/DungeonBot_Go/internal/shop"
)

// Services holds all game services
type Services struct {
	Player  player.Service
	Dungeon dungeon.Service
	Item    item.Service
	Shop    shop.Service
	Curve   leveling.Curve
}

// InitializeServices builds the XP curve from config and wires every game
// service to its repository and the event bus.
func InitializeServices(repos *Repositories, bus event.Bus, game config.Game) *Services {
	curve := leveling.NewCurve(float64(game.BaseXP), game.XPMultiplier, int64(game.LevelCoinReward))

	return &Services{
		Player:  player.NewService(repos.Player, curve, bus, game.MaxStamina, game.StaminaInterval),
		Dungeon: dungeon.NewService(repos.Dungeon, curve, bus, time.Hour),
		Item:    item.NewService(repos.Item, bus),
		Shop:    shop.NewService(repos.Shop, repos.Item, bus),
		Curve:   curve,
	}
}
