package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Bouquet_Go/internal/database"
)

var (
	testDBConnString string
	testPool         *pgxpool.Pool
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		testDBConnString, terminate = setupContainer(ctx)
		if testDBConnString != "" {
			pool, err := database.NewPool(ctx, testDBConnString, database.PoolOptions{MaxConns: 10, MaxIdle: time.Minute, MaxLife: 5 * time.Minute})
			if err != nil {
				fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
			} else if err := database.Migrate(ctx, pool); err != nil {
				fmt.Printf("WARNING: Failed to migrate test database: %v\n", err)
				pool.Close()
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
			connStr = ""
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", terminate
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// requireDB skips the test when no database is available and empties every table
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), `TRUNCATE garden_saves, garden_events, flowers RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return testPool
}
