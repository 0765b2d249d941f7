package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/Bouquet_Go/internal/auction"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/random"
	"github.com/osse101/Bouquet_Go/internal/repository"
	"github.com/osse101/Bouquet_Go/internal/weather"
)

// InitializeFlora returns the flower registry for the session. With a database catalog
// the CSV rows are upserted first and lookups go through an expiring cache; without
// one the CSV table itself is the registry.
func InitializeFlora(ctx context.Context, cfg *config.Config, catalog repository.FlowerCatalog) (flora.Registry, error) {
	table, err := flora.LoadTable(cfg.FlowersCSV)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFlowers, err)
	}
	if catalog == nil {
		return table, nil
	}

	if err := SyncFlowers(ctx, catalog, table.Flowers()); err != nil {
		return nil, err
	}
	return flora.NewCachedRegistry(catalog, cfg.FlowerCacheSize, cfg.FlowerCacheTTL), nil
}

// SyncFlowers writes the CSV catalog into the database catalog
func SyncFlowers(ctx context.Context, catalog repository.FlowerCatalog, flowers []flora.Flower) error {
	slog.Info(LogMsgSyncingFlowers, "count", len(flowers))
	if err := catalog.UpsertFlowers(ctx, flowers); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncFlowers, err)
	}
	slog.Info(LogMsgFlowersSynced, "count", len(flowers))
	return nil
}

// LoadBalance reads the balance file, falling back to the stock tunables when the file
// does not exist. A file that exists but does not validate is an error.
func LoadBalance(path string) (config.Balance, error) {
	balance, err := config.LoadBalance(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgBalanceDefaults, "path", path)
		return config.DefaultBalance(), nil
	}
	if err != nil {
		return config.Balance{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadBalance, err)
	}
	slog.Info(LogMsgBalanceLoaded, "path", path)
	return balance, nil
}

// BuildEngines creates the simulation engines from the balance. All engines draw from
// one seeded source, so a seed replays a whole game.
func BuildEngines(balance config.Balance, seed int64) (garden.Engines, error) {
	rng := random.New(seed)

	plots := plot.NewEngine(balance.Growth, rng)
	w, err := weather.NewEngine(balance.Weather, plots, rng)
	if err != nil {
		return garden.Engines{}, fmt.Errorf("%s: %w", ErrMsgFailedBuildEngines, err)
	}
	rules, err := auction.NewRuleSet(auction.DefaultRules())
	if err != nil {
		return garden.Engines{}, fmt.Errorf("%s: %w", ErrMsgFailedBuildEngines, err)
	}

	return garden.Engines{
		Plots:   plots,
		Weather: w,
		Auction: auction.NewEngine(balance.Auction, rules, rng),
	}, nil
}
