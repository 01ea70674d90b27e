package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// AddItemCommand returns the admin item creation command definition and handler
func AddItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minValue := float64(0)
	minLevel := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "additem",
		Description:              "Register a new item definition (admin)",
		DefaultMemberPermissions: &[]int64{discordgo.PermissionAdministrator}[0],
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Item name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "rarity",
				Description: "Item rarity",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Common", Value: string(domain.RarityCommon)},
					{Name: "Uncommon", Value: string(domain.RarityUncommon)},
					{Name: "Rare", Value: string(domain.RarityRare)},
					{Name: "Epic", Value: string(domain.RarityEpic)},
					{Name: "Legendary", Value: string(domain.RarityLegendary)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "value",
				Description: "Base coin value",
				Required:    true,
				MinValue:    &minValue,
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "droprate",
				Description: "Passive drop chance between 0 and 1 (default: 0)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minlevel",
				Description: "Minimum player level to receive drops (default: 1)",
				Required:    false,
				MinValue:    &minLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Flavor text",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svcs *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		item := &domain.Item{
			Name:   opts["name"].StringValue(),
			Rarity: domain.Rarity(opts["rarity"].StringValue()),
			Value:  opts["value"].IntValue(),
		}
		if opt, ok := opts["droprate"]; ok {
			item.DropRate = opt.FloatValue()
		}
		if opt, ok := opts["minlevel"]; ok {
			item.MinLevel = int(opt.IntValue())
		}
		if opt, ok := opts["description"]; ok {
			item.Description = opt.StringValue()
		}

		id, err := svcs.Item.CreateItem(contextOf(i), item)
		if err != nil {
			slog.Error("Failed to create item", "error", err, "item", item.Name)
			respondFriendlyError(s, i, err.Error())
			return
		}

		desc := fmt.Sprintf("Registered **%s** (%s) as item `#%d`.", item.Name, item.Rarity, id)
		sendEmbed(s, i, createEmbed("🛠️ Item Registered", desc, 0x95a5a6, FooterDungeonBotAdmin))
	}

	return cmd, handler
}
