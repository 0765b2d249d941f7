// Package narrative turns garden events into the lines a player reads at the end of a
// day.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
)

// Sink receives rendered lines
type Sink func(ctx context.Context, lines []string)

// Renderer formats event payloads for one language. Safe for concurrent use.
type Renderer struct {
	mu      sync.Mutex
	title   cases.Caser
	printer *message.Printer
}

// NewRenderer creates a renderer for the given language
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{
		title:   cases.Title(tag),
		printer: message.NewPrinter(tag),
	}
}

// Subscribe renders every garden event published on bus into sink
func (r *Renderer) Subscribe(bus event.Bus, sink Sink) {
	event.SubscribeAll(bus, event.GardenTypes, func(ctx context.Context, evt event.Event) error {
		lines, err := r.Render(evt)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			sink(ctx, lines)
		}
		return nil
	})
}

// Render formats one event. Events with nothing worth telling produce no lines.
func (r *Renderer) Render(evt event.Event) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch evt.Type {
	case event.DayAdvanced:
		p, err := event.DecodePayload[event.DayAdvancedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return r.day(p), nil
	case event.PlotAdvanced:
		p, err := event.DecodePayload[event.PlotAdvancedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return r.plot(p.Outcome), nil
	case event.WeatherResolved:
		p, err := event.DecodePayload[event.WeatherPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return r.weather(p.Outcome), nil
	case event.AuctionBid:
		p, err := event.DecodePayload[event.AuctionBidPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return r.bid(p), nil
	case event.AuctionStarted:
		p, err := event.DecodePayload[event.AuctionStartedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return []string{r.printer.Sprintf("%s goes up for auction, valued at %.2f coins.", r.bouquetName(p.Label, p.BouquetID), p.BaseValue)}, nil
	case event.AuctionEnded:
		p, err := event.DecodePayload[event.AuctionEndedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		how := "The auction closed"
		if p.Early {
			how = "You accepted the bid early"
		}
		return []string{r.printer.Sprintf("%s. %.2f coins are waiting to be collected.", how, p.Earnings)}, nil
	case event.EarningsCollected:
		p, err := event.DecodePayload[event.EarningsCollectedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return []string{r.printer.Sprintf("Collected %.2f coins. Purse: %.2f coins.", p.Amount, p.Coins)}, nil
	case event.BouquetComposed:
		p, err := event.DecodePayload[event.BouquetComposedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		line := r.printer.Sprintf("Composed %s from %d flowers (%.2f coins).", r.bouquetName(p.Label, p.BouquetID), p.Size, p.BaseValue)
		if p.NewRecipe {
			line += " New recipe!"
		}
		return []string{line}, nil
	case event.PlotTended:
		p, err := event.DecodePayload[event.PlotTendedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return []string{r.tended(p)}, nil
	case event.PlotPurchased:
		p, err := event.DecodePayload[event.PlotPurchasedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		kind := "field plot"
		if p.Container {
			kind = "container"
		}
		return []string{r.printer.Sprintf("Bought a %s for %.2f coins (plot %d).", kind, p.Price, p.Plot+1)}, nil
	case event.StorageUsed:
		p, err := event.DecodePayload[event.StorageUsedPayloadV1](evt.Payload)
		if err != nil {
			return nil, decodeErr(evt.Type, err)
		}
		return []string{r.storage(p)}, nil
	default:
		return nil, nil
	}
}

func decodeErr(t event.Type, err error) error {
	return fmt.Errorf("%w: %s payload: %v", domain.ErrInvalidInput, t, err)
}

func (r *Renderer) flower(name string) string {
	return r.title.String(name)
}

func (r *Renderer) bouquetName(label, id string) string {
	if label != "" {
		return fmt.Sprintf("%q", label)
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return "bouquet " + id
}

func (r *Renderer) day(p event.DayAdvancedPayloadV1) []string {
	lines := []string{r.printer.Sprintf("Day %d begins.", p.Day)}
	for _, s := range p.Summary {
		if s.Count == 0 {
			continue
		}
		lines = append(lines, r.summary(s))
	}
	return lines
}

func (r *Renderer) summary(s domain.SummaryEvent) string {
	noun := flowers(s.Count)
	switch s.Kind {
	case domain.SummaryGrew:
		return r.printer.Sprintf("%d %s grew.", s.Count, noun)
	case domain.SummaryMutated:
		return r.printer.Sprintf("%d %s mutated.", s.Count, noun)
	case domain.SummaryWithered:
		return r.printer.Sprintf("%d %s withered.", s.Count, noun)
	case domain.SummaryDamaged:
		return r.printer.Sprintf("%d %s took damage.", s.Count, noun)
	case domain.SummaryNeedsWater:
		return r.printer.Sprintf("%d %s need water.", s.Count, noun)
	case domain.SummaryNeedsWeeding:
		return r.printer.Sprintf("%d %s need weeding.", s.Count, noun)
	case domain.SummaryHarvested:
		return r.printer.Sprintf("%d %s went to storage.", s.Count, noun)
	default:
		return r.printer.Sprintf("%s: %d", string(s.Kind), s.Count)
	}
}

func flowers(n int) string {
	if n == 1 {
		return "flower"
	}
	return "flowers"
}

func (r *Renderer) plot(o domain.PlotOutcome) []string {
	n := o.Plot + 1
	name := r.flower(o.Flower)
	switch o.Result {
	case domain.PlotResultGrew:
		return []string{r.printer.Sprintf("Plot %d: %s grew from %s to %s.", n, name, o.StageBefore, o.StageAfter)}
	case domain.PlotResultMutated:
		return []string{r.printer.Sprintf("Plot %d: %s mutated!", n, name)}
	case domain.PlotResultWithered:
		return []string{r.printer.Sprintf("Plot %d: %s withered.", n, name)}
	case domain.PlotResultNeglect:
		return []string{r.printer.Sprintf("Plot %d: %s lost %.1f durability from neglect.", n, name, o.DurabilityLost)}
	case domain.PlotResultWaiting:
		var needs []string
		if o.NeedsWater {
			needs = append(needs, "water")
		}
		if o.NeedsWeeding {
			needs = append(needs, "weeding")
		}
		if len(needs) == 0 {
			return nil
		}
		return []string{r.printer.Sprintf("Plot %d: %s needs %s.", n, name, strings.Join(needs, " and "))}
	default:
		return nil
	}
}

func (r *Renderer) weather(o domain.WeatherOutcome) []string {
	if !o.Occurred || o.Kind == domain.WeatherCalm {
		return []string{"The weather stayed calm."}
	}
	kind := r.title.String(strings.ReplaceAll(string(o.Kind), "_", " "))
	switch o.Note {
	case domain.WeatherNoteNoTarget:
		return []string{r.printer.Sprintf("%s passed without touching the garden.", kind)}
	case domain.WeatherNoteMoleHarvested:
		return []string{r.printer.Sprintf("Moles dug up %d %s into storage.", len(o.Harvested), flowers(len(o.Harvested)))}
	case domain.WeatherNoteMoleDestroyed:
		return []string{r.printer.Sprintf("Moles destroyed %d %s.", len(o.Destroyed), flowers(len(o.Destroyed)))}
	case domain.WeatherNoteFairyMutation:
		return []string{"A fairy visited and a flower mutated!"}
	case domain.WeatherNoteFairySoil:
		return []string{"A fairy visited and enriched the soil."}
	}

	lines := []string{r.printer.Sprintf("%s struck %d plots.", kind, o.Affected)}
	for _, c := range o.Changes {
		if c.Flower == "" || c.DurabilityBefore == c.DurabilityAfter {
			continue
		}
		lines = append(lines, r.printer.Sprintf("  Plot %d: %s durability %.1f -> %.1f.", c.Plot+1, r.flower(c.Flower), c.DurabilityBefore, c.DurabilityAfter))
	}
	return lines
}

func (r *Renderer) bid(p event.AuctionBidPayloadV1) []string {
	o := p.Outcome
	name := r.bouquetName(p.Label, p.BouquetID)
	switch o.Step {
	case domain.BidStepInformational:
		return []string{r.printer.Sprintf("Auction day %d: bidding on %s opens at %.2f coins.", o.AuctionDay, name, o.BidAfter)}
	case domain.BidStepRule:
		return []string{r.printer.Sprintf("Auction day %d: buyers noticed %s. Bid x%.2f to %.2f coins.", o.AuctionDay, strings.Join(o.RulesApplied, ", "), o.Factor, o.BidAfter)}
	case domain.BidStepFlat:
		return []string{r.printer.Sprintf("Auction day %d: the bid crept up to %.2f coins.", o.AuctionDay, o.BidAfter)}
	case domain.BidStepRoyal:
		return []string{r.printer.Sprintf("Auction day %d: the royal buyer paid %.2f coins for %s.", o.AuctionDay, o.BidAfter, name)}
	default:
		return nil
	}
}

func (r *Renderer) tended(p event.PlotTendedPayloadV1) string {
	n := p.Plot + 1
	name := r.flower(p.Flower)
	switch p.Action {
	case event.ActionWater:
		return r.printer.Sprintf("Watered %s in plot %d.", name, n)
	case event.ActionWeed:
		return r.printer.Sprintf("Weeded plot %d.", n)
	case event.ActionFertilize:
		return r.printer.Sprintf("Fertilized %s in plot %d.", name, n)
	case event.ActionPlant:
		return r.printer.Sprintf("Planted %s in plot %d.", name, n)
	case event.ActionHarvest:
		return r.printer.Sprintf("Harvested %s from plot %d.", name, n)
	default:
		return r.printer.Sprintf("%s plot %d.", r.title.String(p.Action), n)
	}
}

func (r *Renderer) storage(p event.StorageUsedPayloadV1) string {
	name := r.flower(p.Flower)
	switch p.Action {
	case event.ActionMulch:
		return r.printer.Sprintf("Mulched %s. Fertilizer charges: %d.", name, p.FertilizerCharges)
	case event.ActionEat:
		return r.printer.Sprintf("Ate a %s seed. Energy: %d.", name, p.Energy)
	default:
		return r.printer.Sprintf("Used %s.", name)
	}
}
