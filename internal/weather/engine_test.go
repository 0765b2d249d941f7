package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/testing/rngtest"
)

func newEngine(t *testing.T, src *rngtest.Source) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), plot.NewEngine(plot.DefaultConfig(), src), src)
	require.NoError(t, err)
	return e
}

func planted(container bool, stage domain.Stage, durability float64) *domain.Plot {
	p := domain.NewPlot(container)
	p.Organism = &domain.Organism{Name: "tulip", Stage: stage, Days: 1, Durability: durability}
	return p
}

func TestNewEngine_RejectsBadShares(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shares[domain.WeatherRain] = 10

	_, err := NewEngine(cfg, nil, rngtest.New(t))

	assert.ErrorIs(t, err, domain.ErrInvalidWeatherShare)
}

func TestNewEngine_RejectsUnknownWeather(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shares["locusts"] = 0

	_, err := NewEngine(cfg, nil, rngtest.New(t))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoll(t *testing.T) {
	tests := []struct {
		name     string
		gate     float64
		draw     float64
		expected domain.WeatherKind
		occurred bool
	}{
		{"gate closed", 0.5, 0, domain.WeatherCalm, false},
		{"rain", 0.1, 0.10, domain.WeatherRain, true},
		{"clear", 0.1, 0.50, domain.WeatherClear, true},
		{"snow", 0.1, 0.80, domain.WeatherSnow, true},
		{"thunderstorm", 0.1, 0.90, domain.WeatherThunderstorm, true},
		{"earthquake", 0.1, 0.955, domain.WeatherEarthquake, true},
		{"hurricane", 0.1, 0.975, domain.WeatherHurricane, true},
		{"moles", 0.1, 0.992, domain.WeatherMoleInfestation, true},
		{"fairy", 0.1, 0.998, domain.WeatherFairyVisit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, rngtest.New(t).Floats(tt.gate, tt.draw))
			kind, ok := e.Roll()
			assert.Equal(t, tt.occurred, ok)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestResolve_CalmDayStillReports(t *testing.T) {
	e := newEngine(t, rngtest.New(t).Floats(0.9))
	plots := []*domain.Plot{planted(false, domain.StageSeed, 100)}

	out := e.Resolve(plots)

	assert.Equal(t, domain.WeatherCalm, out.Kind)
	assert.False(t, out.Occurred)
	assert.Zero(t, out.Affected)
}

func TestApply_Rain(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	dry := planted(false, domain.StageSeed, 100)
	wet := planted(false, domain.StageSeed, 100)
	wet.Watered = true
	empty := domain.NewPlot(false)

	out := e.Apply(domain.WeatherRain, []*domain.Plot{dry, wet, empty})

	assert.True(t, dry.Watered)
	assert.False(t, empty.Watered)
	assert.Equal(t, 1, out.Affected)
	assert.Equal(t, 0, out.Changes[0].Plot)
}

func TestApply_Clear(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	p := planted(false, domain.StageSeed, 100)

	out := e.Apply(domain.WeatherClear, []*domain.Plot{p})

	assert.True(t, out.Occurred)
	assert.Zero(t, out.Affected)
	assert.InDelta(t, 100.0, p.Organism.Durability, 1e-9)
}

func TestApply_Snow(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	field := planted(false, domain.StageBloomed, 80)
	pot := planted(true, domain.StageBloomed, 80)

	out := e.Apply(domain.WeatherSnow, []*domain.Plot{field, pot})

	assert.InDelta(t, 40.0, field.Organism.Durability, 1e-9)
	assert.True(t, field.Weeded)
	assert.InDelta(t, 80.0, pot.Organism.Durability, 1e-9)
	assert.Equal(t, 1, out.Affected)
	assert.InDelta(t, 80.0, out.Changes[0].DurabilityBefore, 1e-9)
	assert.InDelta(t, 40.0, out.Changes[0].DurabilityAfter, 1e-9)
}

func TestApply_Thunderstorm(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	a := planted(false, domain.StageSeed, 100)
	b := planted(true, domain.StageSeedling, 5)

	out := e.Apply(domain.WeatherThunderstorm, []*domain.Plot{a, b, domain.NewPlot(false)})

	assert.Equal(t, 2, out.Affected)
	assert.True(t, a.Watered)
	assert.True(t, b.Watered)
	assert.InDelta(t, 90.0, a.Organism.Durability, 1e-9)
	assert.Equal(t, domain.StageWithered, b.Organism.Stage)
}

func TestApply_EarthquakeHitsEveryPlot(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	plots := []*domain.Plot{
		planted(false, domain.StageSeed, 100),
		planted(true, domain.StageSeedling, 100),
		planted(false, domain.StageBloomed, 100),
		planted(true, domain.StageMatured, 100),
	}

	out := e.Apply(domain.WeatherEarthquake, plots)

	assert.Equal(t, 4, out.Affected)
	for _, p := range plots {
		assert.InDelta(t, 10.0, p.Organism.Durability, 1e-9)
	}
}

func TestApply_Hurricane(t *testing.T) {
	e := newEngine(t, rngtest.New(t))
	p := planted(false, domain.StageBloomed, 120)

	e.Apply(domain.WeatherHurricane, []*domain.Plot{p})

	assert.True(t, p.Watered)
	assert.InDelta(t, 70.0, p.Organism.Durability, 1e-9)
}

func TestApply_Moles(t *testing.T) {
	t.Run("grown flower goes to storage", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Ints(1))
		seedling := planted(false, domain.StageSeedling, 100)
		grown := planted(false, domain.StageMatured, 100)
		pot := planted(true, domain.StageMutated, 100)

		out := e.Apply(domain.WeatherMoleInfestation, []*domain.Plot{seedling, grown, pot})

		assert.Equal(t, domain.WeatherNoteMoleHarvested, out.Note)
		require.Len(t, out.Harvested, 1)
		assert.Equal(t, domain.StageMatured, out.Harvested[0].Stage)
		assert.False(t, grown.Occupied())
		assert.True(t, seedling.Occupied())
		assert.True(t, pot.Occupied())
		assert.Equal(t, 1, out.Affected)
	})

	t.Run("young flower is destroyed", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Ints(0))
		seedling := planted(false, domain.StageSeedling, 100)

		out := e.Apply(domain.WeatherMoleInfestation, []*domain.Plot{seedling})

		assert.Equal(t, domain.WeatherNoteMoleDestroyed, out.Note)
		assert.Empty(t, out.Harvested)
		assert.Len(t, out.Destroyed, 1)
		assert.False(t, seedling.Occupied())
	})

	t.Run("containers are out of reach", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t))
		pot := planted(true, domain.StageMatured, 100)

		out := e.Apply(domain.WeatherMoleInfestation, []*domain.Plot{pot})

		assert.Equal(t, domain.WeatherNoteNoTarget, out.Note)
		assert.Zero(t, out.Affected)
		assert.True(t, pot.Occupied())
	})
}

func TestApply_Fairy(t *testing.T) {
	t.Run("mutation branch", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Floats(0.1).Ints(1))
		withered := planted(false, domain.StageWithered, 100)
		seedling := planted(false, domain.StageSeedling, 100)
		bloomed := planted(false, domain.StageBloomed, 100)

		out := e.Apply(domain.WeatherFairyVisit, []*domain.Plot{withered, seedling, bloomed})

		assert.Equal(t, domain.WeatherNoteFairyMutation, out.Note)
		assert.Equal(t, domain.StageWithered, withered.Organism.Stage)
		assert.Equal(t, domain.StageSeedling, seedling.Organism.Stage)
		assert.Equal(t, domain.StageMutated, bloomed.Organism.Stage)
	})

	t.Run("mutation with nothing eligible falls back to soil", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Floats(0.1).Ints(0))
		p := planted(false, domain.StageWithered, 100)

		out := e.Apply(domain.WeatherFairyVisit, []*domain.Plot{p})

		assert.Equal(t, domain.WeatherNoteFairySoil, out.Note)
		assert.Equal(t, domain.SoilGood, p.Soil)
	})

	t.Run("soil branch", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Floats(0.9).Ints(0))
		magic := domain.NewPlot(false)
		magic.Soil = domain.SoilMagic
		plain := domain.NewPlot(false)

		out := e.Apply(domain.WeatherFairyVisit, []*domain.Plot{magic, plain})

		assert.Equal(t, domain.WeatherNoteFairySoil, out.Note)
		assert.Equal(t, domain.SoilMagic, magic.Soil)
		assert.Equal(t, domain.SoilGood, plain.Soil)
		assert.Equal(t, domain.SoilAverage, out.Changes[0].SoilBefore)
		assert.Equal(t, domain.SoilGood, out.Changes[0].SoilAfter)
	})

	t.Run("every plot already magic", func(t *testing.T) {
		e := newEngine(t, rngtest.New(t).Floats(0.9))
		magic := domain.NewPlot(false)
		magic.Soil = domain.SoilMagic

		out := e.Apply(domain.WeatherFairyVisit, []*domain.Plot{magic})

		assert.Equal(t, domain.WeatherNoteNoTarget, out.Note)
		assert.True(t, out.Occurred)
		assert.Zero(t, out.Affected)
	})
}
