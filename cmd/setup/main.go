// Command setup prepares the PostgreSQL save backend: it creates the database when it
// is missing (or recreates it with -reset), applies migrations and loads the flower
// catalog from CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Bouquet_Go/internal/bootstrap"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/database"
	"github.com/osse101/Bouquet_Go/internal/database/postgres"
	"github.com/osse101/Bouquet_Go/internal/flora"
)

func main() {
	reset := flag.Bool("reset", false, "Drop and recreate the database first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to manage the garden database
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	dbName := pgx.Identifier{cfg.DBName}.Sanitize()
	if *reset {
		fmt.Printf("Terminating connections to %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx,
			"SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()",
			cfg.DBName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
		fmt.Printf("Database %s dropped.\n", cfg.DBName)
	}

	// 2. Create the database if it does not exist
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}
	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+dbName); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Migrate and seed the flower catalog
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), bootstrap.PoolOptions(cfg))
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	version, err := database.SchemaVersion(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}
	fmt.Printf("Schema at version %d.\n", version)

	table, err := flora.LoadTable(cfg.FlowersCSV)
	if err != nil {
		log.Fatalf("Failed to load flower catalog: %v", err)
	}
	if err := bootstrap.SyncFlowers(ctx, postgres.NewFlowerCatalog(pool), table.Flowers()); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Loaded %d flowers.\n", len(table.Flowers()))
}
