package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/dungeon"
	"github.com/osse101/DungeonBot_Go/internal/item"
	"github.com/osse101/DungeonBot_Go/internal/leveling"
	"github.com/osse101/DungeonBot_Go/internal/player"
	"github.com/osse101/DungeonBot_Go/internal/shop"
	"github.com/osse101/DungeonBot_Go/internal/utils"
)

// Services bundles everything command handlers need. The bot calls the game
// services in-process; there is no intermediate API hop.
type Services struct {
	Player  player.Service
	Dungeon dungeon.Service
	Item    item.Service
	Shop    shop.Service
	Curve   leveling.Curve
	Game    config.Game
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Services *Services
	AppID    string
	Registry *CommandRegistry

	announceChannel string

	// chance rolls for the passive message listener, swappable in tests
	rnd     func() float64
	rndIntn func(min, max int) int
}

// Config holds the bot configuration
type Config struct {
	Token           string
	AppID           string
	AnnounceChannel string
}

// New creates a new Discord bot
func New(cfg Config, svcs *Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Guild message intent is needed for the passive XP listener
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Bot{
		Session:         s,
		Services:        svcs,
		AppID:           cfg.AppID,
		Registry:        NewCommandRegistry(),
		announceChannel: cfg.AnnounceChannel,
		rnd:             utils.RandomFloat,
		rndIntn:         utils.RandomInt,
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i, b.Services)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	}
}
