package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommand returns the register command definition and handler.
// Every game command registers the player implicitly, so this mostly
// exists as the advertised entry point for new players.
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Join the game",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		if !ensurePlayerRegistered(s, i, svcs, user) {
			return
		}

		msg := fmt.Sprintf("Welcome, **%s**! ⚔️\nUse `/profile` to see your stats and `/dungeon commit` to start delving.", user.Username)
		sendEmbed(s, i, createEmbed("🏰 Registered", msg, 0x2ecc71, ""))
	}

	return cmd, handler
}
