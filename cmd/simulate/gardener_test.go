package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/bootstrap"
	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/save"
)

func newTestGarden(t *testing.T, seed int64) garden.Service {
	t.Helper()
	engines, err := bootstrap.BuildEngines(config.DefaultBalance(), seed)
	require.NoError(t, err)
	table, err := flora.LoadTable("../../configs/flowers.csv")
	require.NoError(t, err)
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return garden.NewService(garden.DefaultConfig(), engines, table, store, nil, "sim")
}

func TestAutoGardener_FirstDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestGarden(t, 1)
	g := &autoGardener{svc: svc, flower: "rose"}

	g.Tend(ctx)

	state := svc.Snapshot(ctx)
	planted := 0
	for _, p := range state.Plots {
		if p.Occupied() {
			planted++
			assert.True(t, p.Watered)
			assert.True(t, p.Weeded)
		}
	}
	assert.Positive(t, planted)
	assert.Less(t, state.Coins, garden.DefaultStartingCoins)
}

func TestAutoGardener_SeasonRuns(t *testing.T) {
	ctx := context.Background()
	svc := newTestGarden(t, 7)
	g := &autoGardener{svc: svc, flower: "rose"}

	for range 40 {
		g.Tend(ctx)
		_, err := svc.AdvanceDay(ctx)
		require.NoError(t, err)
	}

	state := svc.Snapshot(ctx)
	assert.Equal(t, 41, state.Day)
	assert.GreaterOrEqual(t, state.Coins, 0.0)
}

func TestAutoGardener_UnknownFlowerPlantsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestGarden(t, 3)
	g := &autoGardener{svc: svc, flower: "triffid"}

	g.Tend(ctx)

	for _, p := range svc.Snapshot(ctx).Plots {
		assert.False(t, p.Occupied())
	}
}

func TestPrintSummary(t *testing.T) {
	state := domain.NewGardenState(2, 20, 30)
	var buf bytes.Buffer
	printSummary(&buf, state)
	assert.Equal(t, "Day 1: 30.00 coins, 20 energy, 0/2 plots planted, 0 items stored, 0 recipes known\n", buf.String())
}
