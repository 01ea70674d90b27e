package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/bootstrap"
	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/database"
	"github.com/osse101/DungeonBot_Go/internal/discord"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/scheduler"
	"github.com/osse101/DungeonBot_Go/internal/server"
	"github.com/osse101/DungeonBot_Go/internal/worker"
)

const (
	workerCount     = 4
	workerQueueSize = 16
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel)

	ctx := context.Background()
	connString := cfg.GetDBConnString()

	if err := database.Migrate(ctx, connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(connString,
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		return err
	}

	eventBus := event.NewMemoryBus()
	repos := bootstrap.InitializeRepositories(dbPool)
	svcs := bootstrap.InitializeServices(repos, eventBus, cfg.Game)

	// Background sweeps
	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	bootstrap.ScheduleSweeps(sched, svcs, cfg.Game.SweepInterval)

	// Ops HTTP surface
	srv := server.NewServer(cfg.HTTPPort, dbPool, svcs.Player, svcs.Item, svcs.Shop)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Discord adapter
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(discord.Config{
			Token:           cfg.DiscordToken,
			AppID:           cfg.DiscordAppID,
			AnnounceChannel: cfg.DiscordAnnounceChannel,
		}, &discord.Services{
			Player:  svcs.Player,
			Dungeon: svcs.Dungeon,
			Item:    svcs.Item,
			Shop:    svcs.Shop,
			Curve:   svcs.Curve,
			Game:    cfg.Game,
		})
		if err != nil {
			return err
		}

		discord.RegisterDefaultCommands(bot.Registry)
		discord.NewNotifier(bot, eventBus, cfg.DiscordAnnounceChannel, cfg.Game.CurrencyIcon)

		if err := bot.Start(); err != nil {
			return err
		}
		if err := bot.RegisterCommands(bot.Registry, os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"); err != nil {
			slog.Error("Command registration failed", "error", err)
		}
	} else {
		slog.Warn("DISCORD_TOKEN not set, running without the Discord adapter")
	}

	// Wait for a term signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Bot:        bot,
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     dbPool,
	})

	return nil
}
