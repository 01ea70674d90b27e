package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MarketCommand returns the marketplace command definition and handler
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minQuantity := float64(1)
	minPrice := float64(0)

	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Trade with other players on the marketplace",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Browse open listings",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "sell",
				Description: "List items from your inventory for sale",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "item",
						Description:  "Item name to sell",
						Required:     true,
						Autocomplete: true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "quantity",
						Description: "How many to sell",
						Required:    true,
						MinValue:    &minQuantity,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "price",
						Description: "Asking price for the whole listing",
						Required:    true,
						MinValue:    &minPrice,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "buy",
				Description: "Buy a listing whole",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "listing",
						Description: "Listing ID to buy",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cancel",
				Description: "Cancel one of your listings and reclaim the items",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "listing",
						Description: "Listing ID to cancel",
						Required:    true,
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
			handleMarketList(s, i, svcs)
		case "sell":
			handleMarketSell(s, i, svcs, user, sub)
		case "buy":
			handleMarketBuy(s, i, svcs, user, sub)
		case "cancel":
			handleMarketCancel(s, i, svcs, user, sub)
		}
	}

	return cmd, handler
}

func handleMarketList(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
	listings, err := svcs.Shop.ListMarketplace(contextOf(i))
	if err != nil {
		slog.Error("Failed to list marketplace", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	var description string
	if len(listings) == 0 {
		description = "No open listings. Be the first with `/market sell`!"
	} else {
		var lines []string
		for _, l := range listings {
			lines = append(lines, fmt.Sprintf("`#%d` **%s** x%d for %s %s (seller <@%s>)",
				l.ID, l.ItemName, l.Quantity, formatNumber(l.Price), svcs.Game.CurrencyIcon, l.SellerID))
		}
		description = strings.Join(lines, "\n")
	}

	sendEmbed(s, i, createEmbed("📜 Marketplace", description, 0x1abc9c, ""))
}

func handleMarketSell(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := optionMap(sub.Options)
	itemName := opts["item"].StringValue()
	quantity := int(opts["quantity"].IntValue())
	price := opts["price"].IntValue()

	listing, err := svcs.Shop.Sell(contextOf(i), user.ID, itemName, quantity, price)
	if err != nil {
		slog.Error("Failed to create listing", "error", err, "player_id", user.ID, "item", itemName)
		respondFriendlyError(s, i, err.Error())
		return
	}

	desc := fmt.Sprintf("Listed **%s** x%d for %s %s as listing `#%d`.",
		listing.ItemName, listing.Quantity, formatNumber(listing.Price), svcs.Game.CurrencyIcon, listing.ID)

	sendEmbed(s, i, createEmbed("💵 Listing Created", desc, 0x1abc9c, ""))
}

func handleMarketBuy(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	listingID := int(optionMap(sub.Options)["listing"].IntValue())

	listing, err := svcs.Shop.BuyListing(contextOf(i), user.ID, listingID)
	if err != nil {
		slog.Error("Failed to buy listing", "error", err, "player_id", user.ID, "listing_id", listingID)
		respondFriendlyError(s, i, err.Error())
		return
	}

	desc := fmt.Sprintf("You bought **%s** x%d for %s %s.",
		listing.ItemName, listing.Quantity, formatNumber(listing.Price), svcs.Game.CurrencyIcon)

	sendEmbed(s, i, createEmbed("💰 Purchase Complete", desc, 0x2ecc71, ""))
}

func handleMarketCancel(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	listingID := int(optionMap(sub.Options)["listing"].IntValue())

	if err := svcs.Shop.CancelListing(contextOf(i), user.ID, listingID); err != nil {
		slog.Error("Failed to cancel listing", "error", err, "player_id", user.ID, "listing_id", listingID)
		respondFriendlyError(s, i, err.Error())
		return
	}

	desc := fmt.Sprintf("Listing `#%d` cancelled. The items are back in your inventory.", listingID)
	sendEmbed(s, i, createEmbed("↩️ Listing Cancelled", desc, 0x95a5a6, ""))
}
