package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/discord"
	"github.com/osse101/DungeonBot_Go/internal/scheduler"
	"github.com/osse101/DungeonBot_Go/internal/server"
	"github.com/osse101/DungeonBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Bot        *discord.Bot
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     *pgxpool.Pool
}

// ScheduleSweeps registers the recurring background jobs: stamina
// regeneration, dungeon resolution and shop restock
func ScheduleSweeps(sched *scheduler.Scheduler, svcs *Services, interval time.Duration) {
	sched.Schedule(interval, &worker.StaminaSweepJob{Sweeper: svcs.Player})
	sched.Schedule(interval, &worker.DungeonSweepJob{Sweeper: svcs.Dungeon})
	sched.Schedule(interval, &worker.RestockSweepJob{Sweeper: svcs.Shop})
	slog.Info(LogMsgSweepsScheduled, "interval", interval)
}

// GracefulShutdown stops all application components in order:
// 1. Discord bot (stop taking player commands)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler, then worker pool (let in-flight sweeps finish)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Bot != nil {
		components.Bot.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
