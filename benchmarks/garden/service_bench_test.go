package garden_bench

import (
	"context"
	"testing"

	"github.com/osse101/Bouquet_Go/internal/bootstrap"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

// --- Stubs (zero-overhead persistence for benchmarking) ---

type StubRepository struct{}

func (StubRepository) LoadGarden(context.Context, string) (*domain.GardenState, error) {
	return nil, domain.ErrSaveNotFound
}
func (StubRepository) SaveGarden(context.Context, string, *domain.GardenState) error { return nil }
func (StubRepository) ListSaves(context.Context) ([]repository.SaveInfo, error)      { return nil, nil }

// --- Benchmarks ---

func newBenchService(b *testing.B, plots int) garden.Service {
	b.Helper()
	balance := config.DefaultBalance()
	balance.Garden.StartingPlots = plots
	balance.Garden.MaxPlots = plots
	balance.Garden.StartingCoins = float64(plots) * 100
	balance.Garden.StartingEnergy = plots * 10

	engines, err := bootstrap.BuildEngines(balance, 1)
	if err != nil {
		b.Fatal(err)
	}
	table, err := flora.LoadTable("../../configs/flowers.csv")
	if err != nil {
		b.Fatal(err)
	}
	return garden.NewService(balance.Garden, engines, table, StubRepository{}, nil, "bench")
}

func BenchmarkAdvanceDay_EmptyGarden(b *testing.B) {
	ctx := context.Background()
	svc := newBenchService(b, 6)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.AdvanceDay(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdvanceDay_FullGarden plants every plot once; later iterations advance a
// garden of growing, withering and mutating flowers.
func BenchmarkAdvanceDay_FullGarden(b *testing.B) {
	ctx := context.Background()
	svc := newBenchService(b, 200)
	for i := range 200 {
		if err := svc.Plant(ctx, i, "rose"); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.AdvanceDay(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	ctx := context.Background()
	svc := newBenchService(b, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.Snapshot(ctx)
	}
}
