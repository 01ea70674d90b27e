package domain

import (
	"time"

	"github.com/google/uuid"
)

// DungeonStatus is the lifecycle state of a dungeon run
type DungeonStatus string

const (
	DungeonStatusActive  DungeonStatus = "active"
	DungeonStatusSuccess DungeonStatus = "success"
	DungeonStatusFailed  DungeonStatus = "failed"
)

// Terminal reports whether the status is final and immutable
func (s DungeonStatus) Terminal() bool {
	return s == DungeonStatusSuccess || s == DungeonStatusFailed
}

// Dungeon tier bounds; a run lasts one hour per tier
const (
	DungeonTierMin = 1
	DungeonTierMax = 5
)

// Reward is the frozen reward summary of a resolved dungeon run
type Reward struct {
	XP    int64 `json:"xp"`
	Coins int64 `json:"coins"`
	Items []int `json:"items,omitempty"`
}

// DungeonRun represents one timed expedition owned by a player
type DungeonRun struct {
	ID               uuid.UUID     `json:"dungeon_id"`
	PlayerID         string        `json:"player_id"`
	Tier             int           `json:"tier"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	StaminaCommitted int           `json:"stamina_committed"`
	Status           DungeonStatus `json:"status"`
	Rewards          *Reward       `json:"rewards,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// ResolvedRun is what the resolution sweep hands back to the adapter so it
// can notify the player. Rewards are already committed by the time one of
// these exists; notification is best-effort.
type ResolvedRun struct {
	Run             DungeonRun `json:"run"`
	Success         bool       `json:"success"`
	Reward          Reward     `json:"reward"`
	StaminaRefunded int        `json:"stamina_refunded"`
	LevelUp         *XPGrant   `json:"level_up,omitempty"`
}
