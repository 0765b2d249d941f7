package garden

import (
	"github.com/osse101/Bouquet_Go/internal/auction"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/weather"
)

// Orchestrator runs one day advance over a garden state. It holds the engines and
// nothing else; the state it advances is passed in on every call.
type Orchestrator struct {
	plots           *plot.Engine
	weather         *weather.Engine
	auction         *auction.Engine
	mulchUsesPerDay int
}

// NewOrchestrator wires the engines of a day advance
func NewOrchestrator(plots *plot.Engine, weather *weather.Engine, auction *auction.Engine, mulchUsesPerDay int) *Orchestrator {
	return &Orchestrator{
		plots:           plots,
		weather:         weather,
		auction:         auction,
		mulchUsesPerDay: mulchUsesPerDay,
	}
}

// AdvanceDay moves state forward one day in place: plots first, then the auction bid,
// then weather. Flowers rescued by moles land in storage.
func (o *Orchestrator) AdvanceDay(state *domain.GardenState) domain.DayReport {
	state.MulchUsesLeft = o.mulchUsesPerDay
	state.Day++

	report := domain.DayReport{
		Day:   state.Day,
		Plots: make([]domain.PlotOutcome, 0, len(state.Plots)),
	}
	for i, p := range state.Plots {
		report.Plots = append(report.Plots, o.plots.Advance(i, p))
	}

	if state.Auction.Active {
		o.auction.Restore(state.Auction)
		if bid, ok := o.auction.ProcessDailyBid(state.Day); ok {
			report.Auction = &bid
		}
		state.Auction = o.auction.Snapshot()
	}

	report.Weather = o.weather.Resolve(state.Plots)
	for _, f := range report.Weather.Harvested {
		state.Storage.Add(domain.FlowerItem{Flower: f})
	}

	for i, p := range state.Plots {
		report.Plots[i].NeedsWater = p.Occupied() && !p.Watered && !p.Organism.Stage.Terminal()
		report.Plots[i].NeedsWeeding = p.Occupied() && !p.Weeded
	}
	report.Summary = summarize(report)
	return report
}

// summarize counts the day's notable plot results. Zero counts are left out.
func summarize(report domain.DayReport) []domain.SummaryEvent {
	counts := make(map[domain.SummaryKind]int)
	for _, p := range report.Plots {
		switch p.Result {
		case domain.PlotResultGrew:
			counts[domain.SummaryGrew]++
		case domain.PlotResultMutated:
			counts[domain.SummaryMutated]++
		case domain.PlotResultWithered:
			counts[domain.SummaryWithered]++
		case domain.PlotResultNeglect:
			counts[domain.SummaryDamaged]++
		}
		if p.NeedsWater {
			counts[domain.SummaryNeedsWater]++
		}
		if p.NeedsWeeding {
			counts[domain.SummaryNeedsWeeding]++
		}
	}
	for _, c := range report.Weather.Changes {
		if c.StageAfter == "" {
			continue // dug up by moles
		}
		if c.DurabilityAfter < c.DurabilityBefore {
			counts[domain.SummaryDamaged]++
		}
		if c.StageBefore != domain.StageWithered && c.StageAfter == domain.StageWithered {
			counts[domain.SummaryWithered]++
		}
		if c.StageBefore != domain.StageMutated && c.StageAfter == domain.StageMutated {
			counts[domain.SummaryMutated]++
		}
	}
	counts[domain.SummaryHarvested] += len(report.Weather.Harvested)

	order := []domain.SummaryKind{
		domain.SummaryGrew,
		domain.SummaryMutated,
		domain.SummaryWithered,
		domain.SummaryDamaged,
		domain.SummaryHarvested,
		domain.SummaryNeedsWater,
		domain.SummaryNeedsWeeding,
	}
	summary := make([]domain.SummaryEvent, 0, len(order))
	for _, kind := range order {
		if n := counts[kind]; n > 0 {
			summary = append(summary, domain.SummaryEvent{Kind: kind, Count: n})
		}
	}
	return summary
}
