package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of the connection pool the app keeps around after startup
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions sizes the connection pool
type PoolOptions struct {
	MaxConns int
	MaxIdle  time.Duration
	MaxLife  time.Duration
	// AppName shows up as application_name in pg_stat_activity
	AppName string
}

// NewPool opens a pgx pool and pings it once before returning
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(max(opts.MaxConns, 1), math.MaxInt32)
	pcfg.MaxConns = int32(maxConns)
	pcfg.MinConns = min(DefaultMinConnections, pcfg.MaxConns)
	pcfg.MaxConnIdleTime = opts.MaxIdle
	pcfg.MaxConnLifetime = opts.MaxLife
	pcfg.HealthCheckPeriod = HealthCheckPeriod

	appName := opts.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	pcfg.ConnConfig.RuntimeParams["application_name"] = appName

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnected, "max_conns", pcfg.MaxConns, "application_name", appName)
	return pool, nil
}
