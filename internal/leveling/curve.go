// Package leveling implements the exponential XP curve and the tier bands
// derived from it. Everything here is pure; persistence lives in the player
// service.
package leveling

import (
	"math"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Default curve parameters
const (
	DefaultBaseXP          = 100
	DefaultMultiplier      = 1.5
	DefaultLevelCoinReward = 50
)

// Curve maps accumulated XP to levels. The cumulative threshold for level L
// is BaseXP * Multiplier^(L-1); a player is the largest level whose
// threshold their XP meets.
type Curve struct {
	BaseXP          float64
	Multiplier      float64
	LevelCoinReward int64
}

// NewCurve returns a curve with the given parameters, falling back to
// defaults for non-positive values.
func NewCurve(baseXP, multiplier float64, levelCoinReward int64) Curve {
	c := Curve{BaseXP: baseXP, Multiplier: multiplier, LevelCoinReward: levelCoinReward}
	if c.BaseXP <= 0 {
		c.BaseXP = DefaultBaseXP
	}
	if c.Multiplier <= 1 {
		c.Multiplier = DefaultMultiplier
	}
	if c.LevelCoinReward <= 0 {
		c.LevelCoinReward = DefaultLevelCoinReward
	}
	return c
}

// DefaultCurve returns the curve with default parameters
func DefaultCurve() Curve {
	return NewCurve(DefaultBaseXP, DefaultMultiplier, DefaultLevelCoinReward)
}

// Threshold returns the cumulative XP required to hold the given level.
// Level 1 requires no XP beyond the base threshold; levels below 2 return
// the base threshold itself.
func (c Curve) Threshold(level int) int64 {
	if level < 1 {
		level = 1
	}
	threshold := c.BaseXP * math.Pow(c.Multiplier, float64(level-1))
	if threshold >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(threshold)
}

// Level returns the largest level >= 1 whose threshold is <= xp.
// Walking the threshold table instead of inverting the curve with a log
// keeps Level(Threshold(l)) == l exact at the boundaries.
func (c Curve) Level(xp int64) int {
	if xp <= 0 {
		return 1
	}
	level := 1
	for {
		next := c.Threshold(level + 1)
		if next == math.MaxInt64 || xp < next {
			return level
		}
		level++
	}
}

// TierFor maps a level to its display tier. Breakpoints are upper-exclusive
// and checked in ascending order.
func TierFor(level int) domain.Tier {
	switch {
	case level < 5:
		return domain.TierBeginner
	case level < 10:
		return domain.TierApprentice
	case level < 20:
		return domain.TierJourneyman
	case level < 30:
		return domain.TierAdept
	case level < 40:
		return domain.TierExpert
	case level < 50:
		return domain.TierMaster
	default:
		return domain.TierGrandmaster
	}
}
