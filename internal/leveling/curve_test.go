package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestCurve_LevelAtThresholds(t *testing.T) {
	c := DefaultCurve()

	for level := 1; level <= 60; level++ {
		threshold := c.Threshold(level)
		assert.Equal(t, level, c.Level(threshold), "level at its own threshold, level=%d threshold=%d", level, threshold)
	}
}

func TestCurve_LevelJustBelowThreshold(t *testing.T) {
	c := DefaultCurve()

	for level := 2; level <= 40; level++ {
		threshold := c.Threshold(level)
		assert.Equal(t, level-1, c.Level(threshold-1), "one XP short of level %d", level)
	}
}

func TestCurve_LevelMonotonic(t *testing.T) {
	c := DefaultCurve()

	prev := 0
	for xp := int64(0); xp <= 500_000; xp += 137 {
		level := c.Level(xp)
		require.GreaterOrEqual(t, level, prev, "level must never decrease as xp grows, xp=%d", xp)
		prev = level
	}
}

func TestCurve_Level(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		name string
		xp   int64
		want int
	}{
		{"zero xp", 0, 1},
		{"negative xp", -50, 1},
		{"below base", 99, 1},
		{"exactly base", 100, 1},
		{"level two threshold", 150, 2},
		{"mid level two", 200, 2},
		{"level three threshold", 225, 3},
		{"large xp", 1_000_000, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Level(tt.xp))
		})
	}
}

func TestNewCurve_Defaults(t *testing.T) {
	c := NewCurve(0, 0, 0)

	assert.Equal(t, float64(DefaultBaseXP), c.BaseXP)
	assert.Equal(t, DefaultMultiplier, c.Multiplier)
	assert.Equal(t, int64(DefaultLevelCoinReward), c.LevelCoinReward)
}

func TestTierFor_Bands(t *testing.T) {
	tests := []struct {
		level int
		want  domain.Tier
	}{
		{1, domain.TierBeginner},
		{4, domain.TierBeginner},
		{5, domain.TierApprentice},
		{9, domain.TierApprentice},
		{10, domain.TierJourneyman},
		{19, domain.TierJourneyman},
		{20, domain.TierAdept},
		{29, domain.TierAdept},
		{30, domain.TierExpert},
		{39, domain.TierExpert},
		{40, domain.TierMaster},
		{49, domain.TierMaster},
		{50, domain.TierGrandmaster},
		{120, domain.TierGrandmaster},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.level), "level %d", tt.level)
	}
}

func TestTierFor_Total(t *testing.T) {
	// Every level maps to exactly one of the seven bands
	seen := map[domain.Tier]bool{}
	for level := 1; level <= 100; level++ {
		seen[TierFor(level)] = true
	}
	assert.Len(t, seen, 7)
}
