// Package schema holds the goose migrations for the Postgres save backend
package schema

import "embed"

// MigrationsDir is the directory inside Migrations that goose reads
const MigrationsDir = "migrations"

// Migrations contains every versioned migration file
//
//go:embed migrations/*.sql
var Migrations embed.FS
