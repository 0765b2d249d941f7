package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

func fullState(t *testing.T) *domain.GardenState {
	t.Helper()
	s := domain.NewGardenState(3, 12, 40.5)
	s.Day = 9
	s.FertilizerCharges = 2
	s.MulchUsesLeft = 1

	require.NoError(t, s.Plots[0].Plant(&domain.Organism{Name: "tulip", Stage: domain.StageSeed, Durability: 80, NRGRestored: 5, Difficulty: 1}))
	s.Plots[0].Organism.Stage = domain.StageBloomed
	s.Plots[0].Organism.Days = 7
	s.Plots[0].Watered = true
	s.Plots[0].Fertilized = true
	s.Plots[1].Soil = domain.SoilMagic
	s.Plots[1].UnwateredDays = 0
	s.Plots = append(s.Plots, domain.NewPlot(true))

	goods, err := domain.ComposeGoods("b-1", []*domain.Organism{
		{Name: "rose", Stage: domain.StageBloomed},
		{Name: "rose", Stage: domain.StageMatured},
		{Name: "lily", Stage: domain.StageWithered},
	}, "sunset", 6, func(string, domain.Stage) (float64, error) { return 4, nil })
	require.NoError(t, err)

	s.Storage.Add(domain.FlowerItem{Flower: &domain.Organism{Name: "daisy", Stage: domain.StageSeed, Durability: 60, NRGRestored: 3}})
	s.Storage.Add(domain.PlotItem{Plot: domain.NewPlot(false)})
	s.Auction = domain.AuctionState{Active: true, Goods: goods, StartDay: 7, Bid: 24, Applied: []string{"same_stage"}}
	s.Recipes[goods.Signature()] = domain.Recipe{Signature: goods.Signature(), Label: "sunset", FirstDay: 6, TimesComposed: 1}
	return s
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	state := fullState(t)

	data, err := Encode(state, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, state, back)
	assert.InDelta(t, 12.0, back.Auction.Goods.BaseValue(), 1e-9)
}

func TestEncodeDecode_EmptyAuctionAndZeroEarnings(t *testing.T) {
	state := domain.NewGardenState(2, 0, 0)

	data, err := Encode(state, time.Now())
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, state, back)
	assert.False(t, back.Auction.Active)
	assert.False(t, back.Auction.Uncollected)
	assert.Zero(t, back.Auction.Earnings)
}

func TestEncodeDecode_UncollectedEarnings(t *testing.T) {
	state := domain.NewGardenState(1, 0, 0)
	state.Auction = domain.AuctionState{Earnings: 310, Uncollected: true}

	data, err := Encode(state, time.Now())
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, back.Auction.Uncollected)
	assert.InDelta(t, 310.0, back.Auction.Earnings, 1e-9)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", `not json`},
		{"future version", `{"version": 99, "state": {"day": 1, "plots": []}}`},
		{"missing state", `{"version": 1}`},
		{"day zero", `{"version": 1, "state": {"day": 0}}`},
		{"null plot", `{"version": 1, "state": {"day": 2, "plots": [null]}}`},
		{"watered empty plot", `{"version": 1, "state": {"day": 2, "plots": [{"watered": true, "soil": "bad"}]}}`},
		{"active auction without goods", `{"version": 1, "state": {"day": 2, "auction": {"active": true}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDecode_FillsRecipes(t *testing.T) {
	s, err := Decode([]byte(`{"version": 1, "state": {"day": 3, "plots": []}}`))
	require.NoError(t, err)
	assert.NotNil(t, s.Recipes)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "saves"))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.LoadGarden(ctx, "main")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state := fullState(t)
	require.NoError(t, store.SaveGarden(ctx, "main", state))
	back, err := store.LoadGarden(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, state, back)

	state.Day = 10
	require.NoError(t, store.SaveGarden(ctx, "main", state))
	require.NoError(t, store.SaveGarden(ctx, "alt", domain.NewGardenState(1, 0, 0)))

	saves, err := store.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, saves, 2)
	days := map[string]int{}
	for _, s := range saves {
		days[s.Slot] = s.Day
	}
	assert.Equal(t, map[string]int{"main": 10, "alt": 1}, days)

	entries, err := os.ReadDir(filepath.Join(dir, "saves"))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestFileStore_RejectsBadSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	err = store.SaveGarden(context.Background(), "../escape", domain.NewGardenState(1, 0, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
