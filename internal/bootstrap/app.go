package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/eventlog"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/narrative"
)

// App is a fully wired garden session with its storage and event plumbing
type App struct {
	Config    *config.Config
	Repos     *Repositories
	Bus       event.Bus
	Publisher *event.ResilientPublisher
	EventLog  eventlog.Service
	Renderer  *narrative.Renderer
	Garden    garden.Service
	Seed      int64
}

// NewApp wires the session described by cfg and loads its save slot. sink receives
// rendered narrative lines as events are published; pass nil to skip rendering.
func NewApp(ctx context.Context, cfg *config.Config, sink narrative.Sink) (*App, error) {
	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app, err := newApp(ctx, cfg, repos, sink)
	if err != nil {
		repos.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, repos *Repositories, sink narrative.Sink) (*App, error) {
	registry, err := InitializeFlora(ctx, cfg, repos.Catalog)
	if err != nil {
		return nil, err
	}

	balance, err := LoadBalance(cfg.BalancePath)
	if err != nil {
		return nil, err
	}

	seed := cfg.SeedOrNow()
	engines, err := BuildEngines(balance, seed)
	if err != nil {
		return nil, err
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}

	eventLog := eventlog.NewService(repos.EventLog, cfg.SaveSlot)
	renderer := narrative.NewRenderer(language.English)
	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: eventLog,
		Renderer:        renderer,
		Sink:            sink,
	}); err != nil {
		_ = publisher.Shutdown(ctx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterEvents, err)
	}

	svc := garden.NewService(balance.Garden, engines, registry, repos.Garden, publisher, cfg.SaveSlot)
	if err := svc.Load(ctx); err != nil {
		_ = publisher.Shutdown(ctx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGarden, err)
	}
	snapshot := svc.Snapshot(ctx)
	slog.Info(LogMsgGardenLoaded, "slot", cfg.SaveSlot, "day", snapshot.Day, "plots", len(snapshot.Plots), "seed", seed)

	return &App{
		Config:    cfg,
		Repos:     repos,
		Bus:       bus,
		Publisher: publisher,
		EventLog:  eventLog,
		Renderer:  renderer,
		Garden:    svc,
		Seed:      seed,
	}, nil
}

// StartCleanup prunes old journal entries on an interval until ctx is done
func (a *App) StartCleanup(ctx context.Context) {
	if a.Config.EventRetentionDays <= 0 {
		return
	}
	job := eventlog.NewCleanupJob(a.EventLog, a.Config.EventRetentionDays)
	go job.Run(ctx, EventLogCleanupInterval)
}
