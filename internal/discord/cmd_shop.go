package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse and buy from the global shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Browse the shop catalog",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "buy",
				Description: "Buy one item from the shop",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "item",
						Description:  "Item name to buy",
						Required:     true,
						Autocomplete: true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		if !ensurePlayerRegistered(s, i, svcs, user) {
			return
		}

		sub := getOptions(i)[0]
		switch sub.Name {
		case "list":
			handleShopList(s, i, svcs)
		case "buy":
			handleShopBuy(s, i, svcs, user, sub)
		}
	}

	return cmd, handler
}

func handleShopList(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
	entries, err := svcs.Shop.ListShop(contextOf(i))
	if err != nil {
		slog.Error("Failed to list shop", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	var description string
	if len(entries) == 0 {
		description = "The shelves are bare."
	} else {
		var lines []string
		for _, entry := range entries {
			stock := "∞"
			if entry.Stock != domain.UnlimitedStock {
				stock = fmt.Sprintf("%d", entry.Stock)
			}
			lines = append(lines, fmt.Sprintf("**%s**: %s %s (stock: %s)",
				entry.Item.Name, formatNumber(entry.Price), svcs.Game.CurrencyIcon, stock))
		}
		description = strings.Join(lines, "\n")
	}

	sendEmbed(s, i, createEmbed("🏪 Global Shop", description, 0xf39c12, ""))
}

func handleShopBuy(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	itemName := optionMap(sub.Options)["item"].StringValue()

	entry, err := svcs.Shop.Buy(contextOf(i), user.ID, itemName)
	if err != nil {
		slog.Error("Failed to buy item", "error", err, "player_id", user.ID, "item", itemName)
		respondFriendlyError(s, i, err.Error())
		return
	}

	desc := fmt.Sprintf("You bought **%s** for %s %s.",
		entry.Item.Name, formatNumber(entry.Price), svcs.Game.CurrencyIcon)

	sendEmbed(s, i, createEmbed("💰 Purchase Complete", desc, 0x2ecc71, ""))
}
