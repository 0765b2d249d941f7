package narrative

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
)

func TestRender_DayEvents(t *testing.T) {
	r := NewRenderer(language.English)
	report := domain.DayReport{
		Day: 3,
		Plots: []domain.PlotOutcome{
			{Plot: 0, Flower: "wild rose", Result: domain.PlotResultGrew, StageBefore: domain.StageSeed, StageAfter: domain.StageSeedling},
			{Plot: 1, Flower: "tulip", Result: domain.PlotResultWaiting, StageBefore: domain.StageSeed, StageAfter: domain.StageSeed, NeedsWater: true, NeedsWeeding: true},
			{Plot: 2, Flower: "daisy", Result: domain.PlotResultNeglect, DurabilityLost: 12.5},
		},
		Weather: domain.WeatherOutcome{
			Kind:     domain.WeatherThunderstorm,
			Occurred: true,
			Affected: 2,
			Changes:  []domain.PlotChange{{Plot: 0, Flower: "wild rose", DurabilityBefore: 90, DurabilityAfter: 81}},
		},
		Summary: []domain.SummaryEvent{
			{Kind: domain.SummaryGrew, Count: 1},
			{Kind: domain.SummaryNeedsWater, Count: 2},
			{Kind: domain.SummaryWithered, Count: 0},
		},
	}

	var lines []string
	for _, evt := range event.NewDayEvents(report, nil) {
		out, err := r.Render(evt)
		require.NoError(t, err)
		lines = append(lines, out...)
	}

	assert.Equal(t, []string{
		"Plot 1: Wild Rose grew from seed to seedling.",
		"Plot 2: Tulip needs water and weeding.",
		"Plot 3: Daisy lost 12.5 durability from neglect.",
		"Thunderstorm struck 2 plots.",
		"  Plot 1: Wild Rose durability 90.0 -> 81.0.",
		"Day 3 begins.",
		"1 flower grew.",
		"2 flowers need water.",
	}, lines)
}

func TestRender_Weather(t *testing.T) {
	r := NewRenderer(language.English)

	tests := []struct {
		name     string
		outcome  domain.WeatherOutcome
		expected string
	}{
		{"calm", domain.WeatherOutcome{Kind: domain.WeatherCalm}, "The weather stayed calm."},
		{"no target", domain.WeatherOutcome{Kind: domain.WeatherMoleInfestation, Occurred: true, Note: domain.WeatherNoteNoTarget}, "Mole Infestation passed without touching the garden."},
		{"mole harvest", domain.WeatherOutcome{Kind: domain.WeatherMoleInfestation, Occurred: true, Note: domain.WeatherNoteMoleHarvested, Harvested: []*domain.Organism{{Name: "lily"}}}, "Moles dug up 1 flower into storage."},
		{"fairy soil", domain.WeatherOutcome{Kind: domain.WeatherFairyVisit, Occurred: true, Note: domain.WeatherNoteFairySoil}, "A fairy visited and enriched the soil."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := r.Render(event.Event{Type: event.WeatherResolved, Payload: event.WeatherPayloadV1{Day: 1, Outcome: tt.outcome}})
			require.NoError(t, err)
			require.NotEmpty(t, lines)
			assert.Equal(t, tt.expected, lines[0])
		})
	}
}

func TestRender_Auction(t *testing.T) {
	r := NewRenderer(language.English)

	lines, err := r.Render(event.Event{Type: event.AuctionBid, Payload: event.AuctionBidPayloadV1{
		Day: 5, BouquetID: "b-1", Label: "sunset",
		Outcome: domain.BidOutcome{AuctionDay: 2, Step: domain.BidStepRule, RulesApplied: []string{"trio"}, Factor: 1.5, BidBefore: 12, BidAfter: 18},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{`Auction day 2: buyers noticed trio. Bid x1.50 to 18.00 coins.`}, lines)

	lines, err = r.Render(event.Event{Type: event.AuctionBid, Payload: event.AuctionBidPayloadV1{
		Outcome: domain.BidOutcome{AuctionDay: 8, Step: domain.BidStepIdle},
	}})
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = r.Render(event.NewAuctionEndedEvent(9, "b-1", 300, true))
	require.NoError(t, err)
	assert.Equal(t, []string{"You accepted the bid early. 300.00 coins are waiting to be collected."}, lines)
}

func TestRender_PlayerActions(t *testing.T) {
	r := NewRenderer(language.English)

	lines, err := r.Render(event.NewPlotTendedEvent(1, 0, event.ActionPlant, "sunflower"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Planted Sunflower in plot 1."}, lines)

	lines, err = r.Render(event.NewStorageUsedEvent(1, event.ActionEat, &domain.Organism{Name: "poppy", Stage: domain.StageSeed}, 14, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ate a Poppy seed. Energy: 14."}, lines)

	lines, err = r.Render(event.NewPlotPurchasedEvent(2, 4, true, 40))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bought a container for 40.00 coins (plot 5)."}, lines)
}

func TestRender_GroupsLargeNumbers(t *testing.T) {
	r := NewRenderer(language.English)

	lines, err := r.Render(event.Event{Type: event.DayAdvanced, Payload: event.DayAdvancedPayloadV1{Day: 12000}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Day 12,000 begins."}, lines)
}

func TestRender_JournalPayload(t *testing.T) {
	r := NewRenderer(language.English)

	lines, err := r.Render(event.Event{Type: event.EarningsCollected, Payload: map[string]interface{}{
		"day": float64(9), "amount": 31.5, "coins": 80.25,
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Collected 31.50 coins. Purse: 80.25 coins."}, lines)

	_, err = r.Render(event.Event{Type: event.EarningsCollected, Payload: map[string]interface{}{"amount": "lots"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubscribe(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []string
	NewRenderer(language.English).Subscribe(bus, func(_ context.Context, lines []string) {
		got = append(got, lines...)
	})

	require.NoError(t, bus.Publish(context.Background(), event.NewEarningsCollectedEvent(2, 10, 10)))
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: "unrelated"}))

	assert.Equal(t, []string{"Collected 10.00 coins. Purse: 10.00 coins."}, got)
}
