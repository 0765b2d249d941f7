package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/auction"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/random"
	"github.com/osse101/Bouquet_Go/internal/testing/rngtest"
	"github.com/osse101/Bouquet_Go/internal/weather"
)

func newEngines(t *testing.T, rng random.Source) Engines {
	t.Helper()
	plots := plot.NewEngine(plot.DefaultConfig(), rng)
	w, err := weather.NewEngine(weather.DefaultConfig(), plots, rng)
	require.NoError(t, err)
	rules, err := auction.NewRuleSet(auction.DefaultRules())
	require.NoError(t, err)
	return Engines{Plots: plots, Weather: w, Auction: auction.NewEngine(auction.DefaultConfig(), rules, rng)}
}

func newTestOrchestrator(t *testing.T, rng random.Source) *Orchestrator {
	t.Helper()
	e := newEngines(t, rng)
	return NewOrchestrator(e.Plots, e.Weather, e.Auction, DefaultMulchUsesPerDay)
}

func seedling(name string, durability float64) *domain.Organism {
	return &domain.Organism{Name: name, Stage: domain.StageSeed, Durability: durability, NRGRestored: 2}
}

func TestAdvanceDay_EmptyPlotStaysEmpty(t *testing.T) {
	state := domain.NewGardenState(1, 10, 0)
	state.Plots[0].Weeded = true
	rng := rngtest.New(t).Floats(0.1) // weeds return

	report := newTestOrchestrator(t, rng).AdvanceDay(state)

	assert.Equal(t, 2, report.Day)
	assert.Nil(t, state.Plots[0].Organism)
	assert.False(t, state.Plots[0].Weeded)
	assert.False(t, state.Plots[0].Watered)
	require.Len(t, report.Plots, 1)
	assert.Equal(t, domain.PlotResultEmpty, report.Plots[0].Result)
	assert.False(t, report.Plots[0].NeedsWater)
	assert.False(t, report.Plots[0].NeedsWeeding, "empty plots need nothing")
	assert.Equal(t, domain.WeatherCalm, report.Weather.Kind)
	assert.Nil(t, report.Auction)
	assert.Empty(t, report.Summary)
}

func TestAdvanceDay_ResetsMulcher(t *testing.T) {
	state := domain.NewGardenState(0, 0, 0)
	state.MulchUsesLeft = 0

	newTestOrchestrator(t, rngtest.New(t)).AdvanceDay(state)

	assert.Equal(t, DefaultMulchUsesPerDay, state.MulchUsesLeft)
}

func TestAdvanceDay_SeedlingOnThresholdDay(t *testing.T) {
	state := domain.NewGardenState(1, 10, 0)
	p := state.Plots[0]
	require.NoError(t, p.Plant(seedling("tulip", 80)))
	orch := newTestOrchestrator(t, rngtest.New(t))

	var stages []domain.Stage
	transitions := 0
	for day := 0; day < 3; day++ {
		require.NoError(t, p.Water())
		if !p.Weeded {
			require.NoError(t, p.Weed())
		}
		report := orch.AdvanceDay(state)
		stages = append(stages, p.Organism.Stage)
		if out := report.Plots[0]; out.StageBefore != out.StageAfter {
			transitions++
			assert.Equal(t, domain.StageSeedling, out.StageAfter)
			assert.Equal(t, domain.PlotResultGrew, report.Plots[0].Result)
			assert.Equal(t, []domain.SummaryEvent{
				{Kind: domain.SummaryGrew, Count: 1},
				{Kind: domain.SummaryNeedsWater, Count: 1},
			}, report.Summary)
		}
	}

	// planted on lifecycle day 1; the Seed threshold of 3 is met on the second advance
	assert.Equal(t, []domain.Stage{domain.StageSeed, domain.StageSeedling, domain.StageSeedling}, stages)
	assert.Equal(t, 1, transitions)
}

func TestAdvanceDay_NoGrowthWithoutWeeding(t *testing.T) {
	state := domain.NewGardenState(1, 10, 0)
	p := state.Plots[0]
	require.NoError(t, p.Plant(seedling("tulip", 80)))
	p.Organism.Days = 10
	require.NoError(t, p.Water())

	report := newTestOrchestrator(t, rngtest.New(t)).AdvanceDay(state)

	assert.Equal(t, domain.StageSeed, p.Organism.Stage)
	assert.Equal(t, domain.PlotResultWaiting, report.Plots[0].Result)
	assert.True(t, report.Plots[0].NeedsWeeding)
	assert.True(t, report.Plots[0].NeedsWater)
}

func TestAdvanceDay_EarthquakeHitsEveryOccupiedPlot(t *testing.T) {
	state := domain.NewGardenState(2, 10, 0)
	state.Plots = append(state.Plots, domain.NewPlot(true), domain.NewPlot(true))
	for _, p := range state.Plots {
		require.NoError(t, p.Plant(seedling("daisy", 100)))
		require.NoError(t, p.Water())
		p.Weeded = true
	}
	// two weed rerolls for the field plots, the weather gate, then the earthquake share
	rng := rngtest.New(t).Floats(0.99, 0.99, 0.1, 0.96)

	report := newTestOrchestrator(t, rng).AdvanceDay(state)

	assert.Equal(t, domain.WeatherEarthquake, report.Weather.Kind)
	for i, p := range state.Plots {
		assert.InDelta(t, 10.0, p.Organism.Durability, 1e-9, "plot %d", i)
	}
	assert.Contains(t, report.Summary, domain.SummaryEvent{Kind: domain.SummaryDamaged, Count: 4})
}

func TestAdvanceDay_MolesSaveMaturedFlowerToStorage(t *testing.T) {
	state := domain.NewGardenState(1, 10, 0)
	p := state.Plots[0]
	require.NoError(t, p.Plant(seedling("rose", 90)))
	p.Organism.Stage = domain.StageMatured
	p.Organism.Days = 11
	require.NoError(t, p.Water())
	p.Weeded = true
	// weed reroll, weather gate, mole share
	rng := rngtest.New(t).Floats(0.99, 0.1, 0.992)

	report := newTestOrchestrator(t, rng).AdvanceDay(state)

	assert.Equal(t, domain.WeatherMoleInfestation, report.Weather.Kind)
	assert.False(t, p.Occupied())
	require.Equal(t, 1, state.Storage.Count(domain.ItemKindFlower))
	f, err := state.Storage.FlowerAt(0)
	require.NoError(t, err)
	assert.Equal(t, "rose", f.Name)
	assert.Contains(t, report.Summary, domain.SummaryEvent{Kind: domain.SummaryHarvested, Count: 1})
	for _, s := range report.Summary {
		assert.NotEqual(t, domain.SummaryDamaged, s.Kind)
	}
}

func TestAdvanceDay_RunsAuctionStep(t *testing.T) {
	state := domain.NewGardenState(0, 0, 0)
	state.Day = 3
	goods, err := domain.ComposeGoods("b-1", []*domain.Organism{
		{Name: "daisy", Stage: domain.StageWithered},
		{Name: "daisy", Stage: domain.StageWithered},
		{Name: "daisy", Stage: domain.StageWithered},
	}, "", 3, func(string, domain.Stage) (float64, error) { return 1, nil })
	require.NoError(t, err)
	state.Auction = domain.AuctionState{Active: true, Goods: goods, StartDay: 3, Bid: 3}

	report := newTestOrchestrator(t, rngtest.New(t)).AdvanceDay(state)

	require.NotNil(t, report.Auction)
	assert.Equal(t, 2, report.Auction.AuctionDay)
	assert.Equal(t, domain.BidStepRule, report.Auction.Step)
	assert.Equal(t, []string{auction.RuleAllWithered}, report.Auction.RulesApplied)
	assert.InDelta(t, 150.0, state.Auction.Bid, 1e-9)
	assert.Equal(t, []string{auction.RuleAllWithered}, state.Auction.Applied)
}

func TestAdvanceDay_DeterministicForSeed(t *testing.T) {
	run := func() ([]domain.DayReport, *domain.GardenState) {
		state := domain.NewGardenState(4, 10, 0)
		for _, p := range state.Plots {
			require.NoError(t, p.Plant(seedling("poppy", 50)))
		}
		orch := newTestOrchestrator(t, random.New(42))
		var reports []domain.DayReport
		for i := 0; i < 20; i++ {
			for _, p := range state.Plots {
				_ = p.Water()
				_ = p.Weed()
			}
			reports = append(reports, orch.AdvanceDay(state))
		}
		return reports, state
	}

	r1, s1 := run()
	r2, s2 := run()
	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
}

func TestAdvanceDay_SoilNeverDrops(t *testing.T) {
	state := domain.NewGardenState(5, 10, 0)
	orch := newTestOrchestrator(t, random.New(7))

	soil := make([]domain.SoilQuality, len(state.Plots))
	for day := 0; day < 200; day++ {
		for i, p := range state.Plots {
			if !p.Occupied() {
				_ = p.Plant(seedling("daisy", 60))
			}
			_ = p.Water()
			_ = p.Weed()
			soil[i] = p.Soil
		}
		orch.AdvanceDay(state)
		for i, p := range state.Plots {
			require.GreaterOrEqual(t, p.Soil, soil[i])
		}
		for i := range state.Plots {
			if state.Plots[i].Occupied() && state.Plots[i].Organism.Stage.Terminal() {
				_, _ = state.Plots[i].Harvest()
			}
		}
	}
}
