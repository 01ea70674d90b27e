package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// DungeonCommand returns the dungeon command definition and handler
func DungeonCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minStamina := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        "dungeon",
		Description: "Delve into a dungeon",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "commit",
				Description: "Commit stamina and set off on a dungeon run",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "stamina",
						Description: "Stamina to commit (more stamina, better odds)",
						Required:    true,
						MinValue:    &minStamina,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Check on your current dungeon run",
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
		case "commit":
			handleDungeonCommit(s, i, svcs, user, sub)
		case "status":
			handleDungeonStatus(s, i, svcs, user)
		}
	}

	return cmd, handler
}

func handleDungeonCommit(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	stamina := int(optionMap(sub.Options)["stamina"].IntValue())

	run, err := svcs.Dungeon.Commit(contextOf(i), user.ID, stamina)
	if err != nil {
		slog.Error("Failed to commit dungeon run", "error", err, "player_id", user.ID)
		respondFriendlyError(s, i, err.Error())
		return
	}

	desc := fmt.Sprintf("You venture into a **tier %d** dungeon with ⚡%d committed.\nYou'll return in **%s**. Good luck!",
		run.Tier, run.StaminaCommitted, formatRemaining(run.EndTime))

	sendEmbed(s, i, createEmbed("🗺️ Expedition Underway", desc, 0x3498db, ""))
}

func handleDungeonStatus(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services, user *discordgo.User) {
	run, err := svcs.Dungeon.GetActiveRun(contextOf(i), user.ID)
	if err != nil {
		slog.Error("Failed to get active run", "error", err, "player_id", user.ID)
		respondFriendlyError(s, i, err.Error())
		return
	}

	if run == nil {
		respondError(s, i, MsgNoActiveDungeon)
		return
	}

	desc := fmt.Sprintf("Exploring a **tier %d** dungeon with ⚡%d committed.\nReturning in **%s**.",
		run.Tier, run.StaminaCommitted, formatRemaining(run.EndTime))

	sendEmbed(s, i, createEmbed("🗺️ Expedition Status", desc, 0x3498db, ""))
}
