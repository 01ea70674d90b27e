package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	textmessage "golang.org/x/text/message"

	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// printer groups digits for display (1234567 -> 1,234,567)
var printer = textmessage.NewPrinter(language.English)

// formatNumber renders an integer with thousands separators
func formatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// formatRemaining renders the time until t as a compact countdown.
// Past deadlines render as "any moment now" since the sweep hasn't caught
// up with the run yet.
func formatRemaining(t time.Time) string {
	remaining := time.Until(t)
	if remaining <= 0 {
		return "any moment now"
	}
	remaining = remaining.Round(time.Minute)
	h := int(remaining.Hours())
	m := int(remaining.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return "under a minute"
}

// staminaBar renders stamina as filled and empty pips, e.g. ⚡⚡⚡▫▫
func staminaBar(current, max int) string {
	if max <= 0 {
		return ""
	}
	if current > max {
		current = max
	}
	bar := ""
	for i := 0; i < current; i++ {
		bar += "⚡"
	}
	for i := current; i < max; i++ {
		bar += "▫"
	}
	return bar
}

// contextOf returns a request-scoped context for an interaction. Discord
// gateway events carry no context of their own.
func contextOf(_ *discordgo.InteractionCreate) context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}
