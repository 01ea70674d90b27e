package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		if !ensurePlayerRegistered(s, i, svcs, user) {
			return
		}

		entries, err := svcs.Item.ListInventory(contextOf(i), user.ID)
		if err != nil {
			slog.Error("Failed to get inventory", "error", err, "player_id", user.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var description string
		if len(entries) == 0 {
			description = "Your inventory is empty."
		} else {
			var lines []string
			for _, entry := range entries {
				lines = append(lines, fmt.Sprintf("**%s** x%d _(%s)_",
					entry.Item.Name, entry.Quantity, entry.Item.Rarity))
			}
			description = strings.Join(lines, "\n")
		}

		embed := createEmbed(fmt.Sprintf("%s's Inventory", user.Username), description, 0x9b59b6, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
