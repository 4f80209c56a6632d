package bootstrap

import (
	"context"
	"log/slog"

	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/scheduler"
	"github.com/samigvnc/csgo-frontend/internal/server"
	"github.com/samigvnc/csgo-frontend/internal/sse"
	"github.com/samigvnc/csgo-frontend/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any field may be nil.
type ShutdownComponents struct {
	Server             *server.Server
	Hub                *sse.Hub
	BattleService      shutdownableService
	SettleWorker       *worker.RevealSettleWorker
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	DeadLetter         *event.DeadLetterWriter
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server and event streams (stop accepting new requests)
// 2. Playbacks, timers and scheduled jobs
// 3. Event publisher (flush pending retries), then the dead-letter file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Open SSE streams would hold Shutdown until ctx expires
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.BattleService != nil {
		shutdownService(ctx, ComponentNameBattle, c.BattleService)
	}
	if c.SettleWorker != nil {
		shutdownService(ctx, ComponentNameSettleWorker, c.SettleWorker)
	}
	if c.Scheduler != nil {
		shutdownService(ctx, ComponentNameScheduler, c.Scheduler)
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}
	if c.DeadLetter != nil {
		if err := c.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
