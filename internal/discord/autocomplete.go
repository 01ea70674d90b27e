package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleAutocomplete routes autocomplete interactions to the appropriate handler
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "shop":
		b.handleShopItemAutocomplete(s, i)
	case "market":
		b.handleInventoryItemAutocomplete(s, i)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// focusedValue finds the option currently being typed, descending into
// subcommand options
func focusedValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
		if len(opt.Options) > 0 {
			if v := focusedValue(opt.Options); v != "" {
				return v
			}
		}
	}
	return ""
}

// handleShopItemAutocomplete suggests item names from the global catalog
func (b *Bot) handleShopItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	partial := focusedValue(getOptions(i))

	entries, err := b.Services.Shop.ListShop(contextOf(i))
	if err != nil {
		slog.Error("Failed to list shop for autocomplete", "error", err)
		return
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, entry := range entries {
		if partial == "" || strings.Contains(strings.ToLower(entry.Item.Name), partial) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  entry.Item.Name,
				Value: entry.Item.Name,
			})
		}
		if len(choices) >= 25 {
			break
		}
	}

	respondChoices(s, i, choices)
}

// handleInventoryItemAutocomplete suggests item names the player owns
func (b *Bot) handleInventoryItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	partial := focusedValue(getOptions(i))

	entries, err := b.Services.Item.ListInventory(contextOf(i), user.ID)
	if err != nil {
		slog.Error("Failed to list inventory for autocomplete", "error", err)
		return
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, entry := range entries {
		if partial == "" || strings.Contains(strings.ToLower(entry.Item.Name), partial) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  entry.Item.Name,
				Value: entry.Item.Name,
			})
		}
		if len(choices) >= 25 {
			break
		}
	}

	respondChoices(s, i, choices)
}

func respondChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}
