package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// messageCreate is the passive progression listener. Every guild message has
// a chance to grant a little XP, and each XP grant also rolls the passive
// item drop table. Both are best-effort; chat must never notice a failure.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if b.rnd() >= b.Services.Game.MessageXPChance {
		return
	}

	ctx := contextOf(nil)
	b.grantMessageXP(ctx, m.Author.ID, m.Author.Username)
}

func (b *Bot) grantMessageXP(ctx context.Context, playerID, username string) {
	if err := b.Services.Player.EnsurePlayer(ctx, playerID, username); err != nil {
		slog.Error("Failed to register player for message XP", "error", err, "player_id", playerID)
		return
	}

	amount := int64(b.rndIntn(b.Services.Game.MessageXPMin, b.Services.Game.MessageXPMax))
	grant, err := b.Services.Player.GrantXP(ctx, playerID, amount, "message")
	if err != nil {
		slog.Error("Failed to grant message XP", "error", err, "player_id", playerID)
		return
	}

	if b.rnd() < b.Services.Game.ItemDropChance {
		if _, err := b.Services.Item.RollDrop(ctx, playerID, grant.NewLevel); err != nil {
			slog.Error("Failed to roll passive drop", "error", err, "player_id", playerID)
		}
	}
}
