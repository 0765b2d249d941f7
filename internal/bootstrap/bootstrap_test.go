package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/repository"
	"github.com/osse101/Bouquet_Go/internal/testing/leaktest"
)

const (
	shippedFlowers = "../../configs/flowers.csv"
	shippedBalance = "../../configs/balance.json"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:           "info",
		LogFormat:          "text",
		LogDir:             filepath.Join(dir, "logs"),
		ServiceName:        "bouquet-test",
		Version:            "test",
		Environment:        "test",
		SaveBackend:        config.SaveBackendFile,
		SavePath:           filepath.Join(dir, "saves"),
		SaveSlot:           "main",
		FlowersCSV:         shippedFlowers,
		BalancePath:        shippedBalance,
		Seed:               42,
		FlowerCacheSize:    16,
		FlowerCacheTTL:     time.Minute,
		EventRetentionDays: 30,
		EventMaxRetries:    1,
		EventRetryDelay:    time.Millisecond,
		DeadLetterPath:     filepath.Join(dir, "logs", "deadletter.jsonl"),
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
		"notes.txt",
	}, names)
}

func TestSetupLogger_WritesStdoutAndFile(t *testing.T) {
	cfg := testConfig(t)
	var stdout bytes.Buffer
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Contains(t, stdout.String(), LogMsgStartingBouquet)
	data, err := os.ReadFile(filepath.Join(cfg.LogDir, "session_2026-03-01_12-00-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingBouquet)
}

func TestLoadBalance(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		b, err := LoadBalance(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultBalance(), b)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balance.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"garden":{"starting_plots":0}}`), 0600))
		_, err := LoadBalance(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("shipped file", func(t *testing.T) {
		b, err := LoadBalance(shippedBalance)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultBalance(), b)
	})
}

func TestBuildEngines_SameSeedSameWeather(t *testing.T) {
	roll := func(seed int64) []domain.WeatherKind {
		engines, err := BuildEngines(config.DefaultBalance(), seed)
		require.NoError(t, err)
		var kinds []domain.WeatherKind
		for range 20 {
			kind, _ := engines.Weather.Roll()
			kinds = append(kinds, kind)
		}
		return kinds
	}
	assert.Equal(t, roll(9), roll(9))
}

type stubCatalog struct {
	flora.Registry
	upserted []flora.Flower
}

func (s *stubCatalog) UpsertFlowers(_ context.Context, flowers []flora.Flower) error {
	s.upserted = flowers
	return nil
}

func TestInitializeFlora(t *testing.T) {
	cfg := testConfig(t)

	t.Run("file backend reads the CSV", func(t *testing.T) {
		reg, err := InitializeFlora(context.Background(), cfg, nil)
		require.NoError(t, err)
		assert.IsType(t, &flora.Table{}, reg)
	})

	t.Run("catalog is seeded and cached", func(t *testing.T) {
		table, err := flora.LoadTable(shippedFlowers)
		require.NoError(t, err)
		catalog := &stubCatalog{Registry: table}

		reg, err := InitializeFlora(context.Background(), cfg, catalog)
		require.NoError(t, err)
		assert.IsType(t, &flora.CachedRegistry{}, reg)
		assert.Len(t, catalog.upserted, len(table.Flowers()))
	})

	t.Run("missing CSV", func(t *testing.T) {
		bad := *cfg
		bad.FlowersCSV = filepath.Join(t.TempDir(), "none.csv")
		_, err := InitializeFlora(context.Background(), &bad, nil)
		assert.Error(t, err)
	})
}

func TestInitializeRepositories_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.SaveBackend = "floppy"
	_, err := InitializeRepositories(context.Background(), cfg)
	assert.ErrorContains(t, err, ErrMsgUnknownSaveBackend)
}

func TestEventSettingsFrom_Defaults(t *testing.T) {
	s := eventSettingsFrom(&config.Config{EventMaxRetries: -1})
	assert.Equal(t, EventDefaultMaxRetries, s.maxRetries)
	assert.Equal(t, EventDefaultRetryDelay, s.retryDelay)
	assert.Equal(t, EventDefaultDeadLetterPath, s.deadLetterPath)

	cfg := testConfig(t)
	s = eventSettingsFrom(cfg)
	assert.Equal(t, 1, s.maxRetries)
	assert.Equal(t, cfg.DeadLetterPath, s.deadLetterPath)
}

func TestPoolOptions_NamesConnectionsAfterSlot(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBMaxConns = 7
	cfg.DBMaxConnIdleTime = time.Minute
	opts := PoolOptions(cfg)
	assert.Equal(t, 7, opts.MaxConns)
	assert.Equal(t, time.Minute, opts.MaxIdle)
	assert.Equal(t, "bouquet-main", opts.AppName)
}

func TestNewApp_FileBackend(t *testing.T) {
	leaktest.Verify(t, 1)
	cfg := testConfig(t)
	ctx := context.Background()

	var mu sync.Mutex
	var narrative []string
	sink := func(_ context.Context, lines []string) {
		mu.Lock()
		defer mu.Unlock()
		narrative = append(narrative, lines...)
	}

	app, err := NewApp(ctx, cfg, sink)
	require.NoError(t, err)
	assert.Nil(t, app.Repos.DB)
	assert.Equal(t, int64(42), app.Seed)

	require.NoError(t, app.Garden.Plant(ctx, 0, "rose"))
	_, err = app.Garden.AdvanceDay(ctx)
	require.NoError(t, err)

	GracefulShutdown(ctx, app, nil)

	mu.Lock()
	assert.Contains(t, narrative, "Day 2 begins.")
	mu.Unlock()

	dayType := string(event.DayAdvanced)
	history, err := app.EventLog.History(ctx, repository.EventLogFilter{EventType: &dayType})
	require.NoError(t, err)
	assert.Len(t, history, 1)

	saves, err := app.Repos.Garden.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, "main", saves[0].Slot)
	assert.Equal(t, 2, saves[0].Day)

	// a second app on the same slot resumes the saved day
	again, err := NewApp(ctx, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Garden.Snapshot(ctx).Day)
	GracefulShutdown(ctx, again, nil)
}
