package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// titleCaser capitalizes tier names for display ("journeyman" -> "Journeyman")
var titleCaser = cases.Title(language.English)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your adventurer profile",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		if !ensurePlayerRegistered(s, i, svcs, user) {
			return
		}

		ctx := contextOf(i)
		p, err := svcs.Player.GetPlayer(ctx, user.ID)
		if err != nil {
			slog.Error("Failed to get player", "error", err, "player_id", user.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		nextThreshold := svcs.Curve.Threshold(p.Level + 1)
		progress := fmt.Sprintf("%s / %s XP", formatNumber(p.XP), formatNumber(nextThreshold))

		fields := []*discordgo.MessageEmbedField{
			{
				Name:   "Level",
				Value:  fmt.Sprintf("%d (%s)", p.Level, titleCaser.String(string(p.Tier))),
				Inline: true,
			},
			{
				Name:   "Progress",
				Value:  progress,
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("Coins %s", svcs.Game.CurrencyIcon),
				Value:  formatNumber(p.Coins),
				Inline: true,
			},
			{
				Name:   "Stamina",
				Value:  fmt.Sprintf("%s %d/%d", staminaBar(p.Stamina, p.MaxStamina), p.Stamina, p.MaxStamina),
				Inline: true,
			},
			{
				Name:   "Dungeon Record",
				Value:  fmt.Sprintf("%d wins / %d losses", p.Wins, p.Losses),
				Inline: true,
			},
		}

		if p.HasActiveDungeon() {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name: "Active Dungeon",
				Value: fmt.Sprintf("⚡%d committed, returns in %s",
					p.ActiveDungeon.StaminaCommitted,
					formatRemaining(p.ActiveDungeon.EndTime)),
				Inline: false,
			})
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s's Profile", p.Username),
			Color: tierColor(p.Tier),
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL(""),
			},
			Fields: fields,
			Footer: &discordgo.MessageEmbedFooter{
				Text: FooterDungeonBot,
			},
		}

		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		}); err != nil {
			slog.Error("Failed to send profile embed", "error", err)
		}
	}

	return cmd, handler
}

// tierColor maps a display tier to its embed accent color
func tierColor(tier domain.Tier) int {
	switch tier {
	case domain.TierBeginner:
		return 0x95a5a6 // Grey
	case domain.TierApprentice:
		return 0x2ecc71 // Green
	case domain.TierJourneyman:
		return 0x3498db // Blue
	case domain.TierAdept:
		return 0x9b59b6 // Purple
	case domain.TierExpert:
		return 0xe67e22 // Orange
	case domain.TierMaster:
		return 0xe74c3c // Red
	case domain.TierGrandmaster:
		return 0xf1c40f // Gold
	default:
		return 0x95a5a6
	}
}
