package database

import "time"

const (
	DefaultMinConnections = 2
	DefaultAppName        = "bouquet"
	HealthCheckPeriod     = 30 * time.Second
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgConnected        = "Connected to garden database"
	LogMsgMigrationApplied = "Applied migration"
	LogMsgSchemaUpToDate   = "Database schema is up to date"
)
