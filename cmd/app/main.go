package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Bouquet_Go/internal/bootstrap"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/handler"
	"github.com/osse101/Bouquet_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title Bouquet garden API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, nil)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	app.StartCleanup(ctx)

	deps := server.Deps{
		Garden:   app.Garden,
		EventLog: app.EventLog,
		Saves:    app.Repos.Garden,
		Renderer: app.Renderer,
	}
	if app.Repos.DB != nil {
		deps.Store = app.Repos.DB
	}
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, deps)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, app, srv)
}
