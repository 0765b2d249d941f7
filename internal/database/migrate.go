package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Bouquet_Go/internal/database/schema"
	"github.com/osse101/Bouquet_Go/internal/logger"
)

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	fsys, err := fs.Sub(schema.Migrations, schema.MigrationsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return provider, db.Close, nil
}

// Migrate applies every pending embedded migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Info(LogMsgSchemaUpToDate)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "file", r.Source.Path, "duration", r.Duration)
	}
	return nil
}

// SchemaVersion reports the highest applied migration version
func SchemaVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return 0, err
	}
	defer closeDB()
	return provider.GetDBVersion(ctx)
}
