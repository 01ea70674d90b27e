package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DungeonBot_Go/internal/event"
)

// Notifier announces game events in a Discord channel. Announcements are
// best-effort; a failed send never fails the event handler chain, because
// rewards are already committed by the time an event is published.
type Notifier struct {
	session   messageSender
	channelID string
	currency  string
}

// messageSender is the one session method the notifier uses, extracted so
// tests can capture sends without a gateway connection
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...interface{}) error
}

// sessionSender adapts *discordgo.Session to messageSender
type sessionSender struct {
	bot *Bot
}

func (s sessionSender) ChannelMessageSend(channelID string, content string, _ ...interface{}) error {
	_, err := s.bot.Session.ChannelMessageSend(channelID, content)
	return err
}

// NewNotifier wires announcement handlers onto the bus. A nil notifier is
// returned when no announce channel is configured.
func NewNotifier(b *Bot, bus event.Bus, channelID, currencyIcon string) *Notifier {
	if channelID == "" {
		slog.Info("No announce channel configured, event announcements disabled")
		return nil
	}

	n := &Notifier{
		session:   sessionSender{bot: b},
		channelID: channelID,
		currency:  currencyIcon,
	}

	bus.Subscribe(event.DungeonResolved, n.handleDungeonResolved)
	bus.Subscribe(event.PlayerLeveledUp, n.handlePlayerLeveledUp)

	return n
}

func (n *Notifier) handleDungeonResolved(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.DungeonResolvedPayloadV1)
	if !ok {
		return nil
	}

	var msg string
	if payload.Success {
		msg = fmt.Sprintf("🏆 <@%s> conquered a **tier %d** dungeon! +%s XP, +%s %s",
			payload.PlayerID, payload.Tier,
			formatNumber(payload.XPAwarded), formatNumber(payload.CoinsAwarded), n.currency)
		if len(payload.ItemsDropped) > 0 {
			msg += fmt.Sprintf(", %d item(s) looted", len(payload.ItemsDropped))
		}
	} else {
		msg = fmt.Sprintf("💀 <@%s> was driven out of a **tier %d** dungeon. +%s XP, +%s %s for the effort",
			payload.PlayerID, payload.Tier,
			formatNumber(payload.XPAwarded), formatNumber(payload.CoinsAwarded), n.currency)
		if payload.StaminaRefunded > 0 {
			msg += fmt.Sprintf(", ⚡%d refunded", payload.StaminaRefunded)
		}
	}

	if err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
		slog.Error("Failed to announce dungeon result", "error", err, "dungeon_id", payload.DungeonID)
	}
	return nil
}

func (n *Notifier) handlePlayerLeveledUp(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.PlayerLeveledUpPayloadV1)
	if !ok {
		return nil
	}

	msg := fmt.Sprintf("🎉 <@%s> reached **level %d** (%s)!",
		payload.PlayerID, payload.NewLevel, payload.Tier)

	if err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
		slog.Error("Failed to announce level-up", "error", err, "player_id", payload.PlayerID)
	}
	return nil
}
