package domain

import "time"

// Tier is the display rank derived from a player's level
type Tier string

const (
	TierBeginner    Tier = "beginner"
	TierApprentice  Tier = "apprentice"
	TierJourneyman  Tier = "journeyman"
	TierAdept       Tier = "adept"
	TierExpert      Tier = "expert"
	TierMaster      Tier = "master"
	TierGrandmaster Tier = "grandmaster"
)

// ActiveDungeon is the denormalized pointer stored on the player row while an
// expedition is in flight. It exists for presentation only; the dungeon_runs
// table is the source of truth during resolution.
type ActiveDungeon struct {
	EndTime          time.Time `json:"end_time"`
	StaminaCommitted int       `json:"stamina_committed"`
}

// Player represents a registered player
type Player struct {
	ID              string         `json:"player_id"`
	Username        string         `json:"username"`
	XP              int64          `json:"xp"`
	Level           int            `json:"level"`
	Tier            Tier           `json:"tier"`
	Coins           int64          `json:"coins"`
	Stamina         int            `json:"stamina"`
	MaxStamina      int            `json:"max_stamina"`
	LastStaminaTime *time.Time     `json:"last_stamina_time,omitempty"`
	Wins            int            `json:"wins"`
	Losses          int            `json:"losses"`
	ActiveDungeon   *ActiveDungeon `json:"active_dungeon,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HasActiveDungeon reports whether the player has an expedition in flight
func (p *Player) HasActiveDungeon() bool {
	return p.ActiveDungeon != nil
}

// XPGrant is the result of granting XP to a player
type XPGrant struct {
	NewXP        int64 `json:"new_xp"`
	NewLevel     int   `json:"new_level"`
	LevelsGained int   `json:"levels_gained"`
	CoinsAwarded int64 `json:"coins_awarded"`
	NewTier      Tier  `json:"new_tier"`
}

// LeveledUp reports whether the grant crossed at least one level threshold
func (g *XPGrant) LeveledUp() bool {
	return g.LevelsGained > 0
}
