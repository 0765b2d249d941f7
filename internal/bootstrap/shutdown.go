package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Bouquet_Go/internal/server"
)

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Garden save (persist whatever the player did since the last day advance)
// 3. Event publisher (flush pending events to the journal)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence. srv may be
// nil for the headless runner.
func GracefulShutdown(ctx context.Context, app *App, srv *server.Server) {
	if srv != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := srv.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if err := app.Garden.Save(ctx); err != nil {
		slog.Error(LogMsgFinalSaveFailed, "error", err)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := app.Publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	app.Repos.Close()

	if srv != nil {
		slog.Info(LogMsgServerStopped)
	}
}
