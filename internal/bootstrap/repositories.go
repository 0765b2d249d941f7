package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/database"
	"github.com/osse101/Bouquet_Go/internal/database/postgres"
	"github.com/osse101/Bouquet_Go/internal/logger"
	"github.com/osse101/Bouquet_Go/internal/repository"
	"github.com/osse101/Bouquet_Go/internal/save"
)

// Repositories holds the storage implementations for the selected save backend.
type Repositories struct {
	Garden   repository.Garden
	EventLog repository.EventLog
	// Catalog is the stored flower table; nil on the file backend, which reads the CSV
	Catalog repository.FlowerCatalog
	// DB is the connection pool; nil on the file backend
	DB database.Pool
}

// InitializeRepositories opens the save backend named by cfg.SaveBackend. The postgres
// backend connects, applies migrations, and serves saves, journal and flower catalog
// from the database; the file backend keeps saves and the journal under cfg.SavePath.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	slog.Info(LogMsgSaveBackendSelected, "backend", cfg.SaveBackend, "slot", cfg.SaveSlot)

	switch cfg.SaveBackend {
	case config.SaveBackendFile:
		return fileRepositories(cfg.SavePath)
	case config.SaveBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), PoolOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		return postgresRepositories(pool), nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownSaveBackend, cfg.SaveBackend)
	}
}

func fileRepositories(dir string) (*Repositories, error) {
	store, err := save.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSaves, err)
	}
	journal, err := save.NewJournal(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenJournal, err)
	}
	return &Repositories{Garden: store, EventLog: journal}, nil
}

func postgresRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Garden:   postgres.NewGardenRepository(pool),
		EventLog: postgres.NewEventLogRepository(pool),
		Catalog:  postgres.NewFlowerCatalog(pool),
		DB:       pool,
	}
}

// Close releases the database pool, if any
func (r *Repositories) Close() {
	if r.DB != nil {
		r.DB.Close()
		slog.Info(LogMsgDatabaseClosed)
	}
}

// PoolOptions maps the DB_* settings onto the pool
func PoolOptions(cfg *config.Config) database.PoolOptions {
	return database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MaxIdle:  cfg.DBMaxConnIdleTime,
		MaxLife:  cfg.DBMaxConnLifetime,
		AppName:  logger.DefaultServiceName + "-" + cfg.SaveSlot,
	}
}
