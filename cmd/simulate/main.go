// Command simulate runs a garden headlessly for a number of days and prints the
// narrative of each day. With -tend it plants, waters, weeds and harvests on its own,
// so a seed can be replayed to compare balance changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/Bouquet_Go/internal/bootstrap"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/logger"
)

func main() {
	days := flag.Int("days", 30, "Number of days to advance")
	seed := flag.Int64("seed", 0, "Random seed (0 uses SEED or the clock)")
	slot := flag.String("slot", "", "Save slot (defaults to SAVE_SLOT)")
	flower := flag.String("flower", "rose", "Flower the auto-gardener plants")
	tend := flag.Bool("tend", true, "Plant, water, weed and harvest automatically")
	quiet := flag.Bool("quiet", false, "Only print the final garden summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *slot != "" {
		cfg.SaveSlot = *slot
	}
	initLogger(cfg)

	var out io.Writer = os.Stdout
	if *quiet {
		out = io.Discard
	}

	ctx := context.Background()
	app, err := bootstrap.NewApp(ctx, cfg, printLines(out))
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer bootstrap.GracefulShutdown(ctx, app, nil)

	fmt.Fprintf(out, "Seed %d, starting on day %d\n", app.Seed, app.Garden.Snapshot(ctx).Day)

	gardener := &autoGardener{svc: app.Garden, flower: *flower}
	for range *days {
		if *tend {
			gardener.Tend(ctx)
		}
		if _, err := app.Garden.AdvanceDay(ctx); err != nil {
			log.Printf("Day advance failed: %v", err)
			return
		}
	}

	printSummary(os.Stdout, app.Garden.Snapshot(ctx))
}

// printLines writes each rendered narrative line on its own line
func printLines(w io.Writer) func(ctx context.Context, lines []string) {
	return func(_ context.Context, lines []string) {
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
}

// initLogger keeps logs off stdout so the narrative stays readable
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)
	logger.InitLoggerWithWriter(loggerConfig.AtLeast(logger.LogLevelWarn), os.Stderr)
}
