package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/event"
)

type stoppableServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             stoppableServer
	Jobs               *BackgroundJobs
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
// the HTTP server, then background jobs, then the event publisher so pending
// retries are flushed while the database is still open, and finally the pool.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Jobs != nil {
		slog.Info(LogMsgStoppingBackgroundJobs)
		components.Jobs.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
