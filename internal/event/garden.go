package event

import (
	"github.com/osse101/Bouquet_Go/internal/domain"
)

// Garden event types
const (
	DayAdvanced       Type = "garden.day.advanced"
	PlotAdvanced      Type = "garden.plot.advanced"
	WeatherResolved   Type = "garden.weather.resolved"
	AuctionBid        Type = "garden.auction.bid"
	AuctionStarted    Type = "garden.auction.started"
	AuctionEnded      Type = "garden.auction.ended"
	EarningsCollected Type = "garden.earnings.collected"
	BouquetComposed   Type = "garden.bouquet.composed"
	PlotTended        Type = "garden.plot.tended"
	PlotPurchased     Type = "garden.plot.purchased"
	StorageUsed       Type = "garden.storage.used"
)

// GardenTypes lists every garden event type, in the order a day's events are published
var GardenTypes = []Type{
	PlotAdvanced,
	AuctionBid,
	AuctionEnded,
	WeatherResolved,
	DayAdvanced,
	AuctionStarted,
	EarningsCollected,
	BouquetComposed,
	PlotTended,
	PlotPurchased,
	StorageUsed,
}

// Tending actions carried by PlotTendedPayloadV1
const (
	ActionWater     = "water"
	ActionWeed      = "weed"
	ActionFertilize = "fertilize"
	ActionPlant     = "plant"
	ActionHarvest   = "harvest"
)

// Storage actions carried by StorageUsedPayloadV1
const (
	ActionMulch = "mulch"
	ActionEat   = "eat"
)

// DayAdvancedPayloadV1 closes out a day's events with the count summary
type DayAdvancedPayloadV1 struct {
	Day     int                   `json:"day"`
	Weather domain.WeatherKind    `json:"weather"`
	Summary []domain.SummaryEvent `json:"summary"`
}

// PlotAdvancedPayloadV1 carries one plot's daily delta
type PlotAdvancedPayloadV1 struct {
	Day     int                `json:"day"`
	Outcome domain.PlotOutcome `json:"outcome"`
}

// WeatherPayloadV1 carries the day's weather descriptor
type WeatherPayloadV1 struct {
	Day     int                   `json:"day"`
	Outcome domain.WeatherOutcome `json:"outcome"`
}

// AuctionBidPayloadV1 carries one auction step
type AuctionBidPayloadV1 struct {
	Day       int               `json:"day"`
	BouquetID string            `json:"bouquet_id"`
	Label     string            `json:"label,omitempty"`
	Outcome   domain.BidOutcome `json:"outcome"`
}

// AuctionStartedPayloadV1 is published when a bouquet goes up for auction
type AuctionStartedPayloadV1 struct {
	Day       int     `json:"day"`
	BouquetID string  `json:"bouquet_id"`
	Signature string  `json:"signature"`
	Label     string  `json:"label,omitempty"`
	BaseValue float64 `json:"base_value"`
}

// AuctionEndedPayloadV1 is published when an auction closes, at day 7 or accepted early
type AuctionEndedPayloadV1 struct {
	Day       int     `json:"day"`
	BouquetID string  `json:"bouquet_id"`
	Earnings  float64 `json:"earnings"`
	Early     bool    `json:"early"`
}

// EarningsCollectedPayloadV1 is published when auction earnings are paid out
type EarningsCollectedPayloadV1 struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
	Coins  float64 `json:"coins"`
}

// BouquetComposedPayloadV1 is published when flowers are bound into a bouquet
type BouquetComposedPayloadV1 struct {
	Day       int     `json:"day"`
	BouquetID string  `json:"bouquet_id"`
	Signature string  `json:"signature"`
	Label     string  `json:"label,omitempty"`
	Size      int     `json:"size"`
	BaseValue float64 `json:"base_value"`
	NewRecipe bool    `json:"new_recipe"`
}

// PlotTendedPayloadV1 is published for each successful tending action
type PlotTendedPayloadV1 struct {
	Day    int    `json:"day"`
	Plot   int    `json:"plot"`
	Action string `json:"action"`
	Flower string `json:"flower,omitempty"`
}

// PlotPurchasedPayloadV1 is published when the player buys a plot
type PlotPurchasedPayloadV1 struct {
	Day       int     `json:"day"`
	Plot      int     `json:"plot"`
	Container bool    `json:"container"`
	Price     float64 `json:"price"`
}

// StorageUsedPayloadV1 is published when a stored flower is mulched or eaten
type StorageUsedPayloadV1 struct {
	Day               int          `json:"day"`
	Action            string       `json:"action"`
	Flower            string       `json:"flower"`
	Stage             domain.Stage `json:"stage"`
	Energy            int          `json:"energy"`
	FertilizerCharges int          `json:"fertilizer_charges"`
}

func newGardenEvent(t Type, day int, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyDay: day},
	}
}

// NewDayEvents turns a day report into its events: one per occupied plot, the auction
// step and its ending if any, the weather, and finally the day summary.
func NewDayEvents(report domain.DayReport, goods *domain.ComposedGoods) []Event {
	events := make([]Event, 0, len(report.Plots)+4)
	for _, p := range report.Plots {
		if p.Result == domain.PlotResultEmpty {
			continue
		}
		events = append(events, newGardenEvent(PlotAdvanced, report.Day, PlotAdvancedPayloadV1{
			Day:     report.Day,
			Outcome: p,
		}))
	}

	if report.Auction != nil {
		bid := AuctionBidPayloadV1{Day: report.Day, Outcome: *report.Auction}
		if goods != nil {
			bid.BouquetID = goods.ID()
			bid.Label = goods.Label()
		}
		events = append(events, newGardenEvent(AuctionBid, report.Day, bid))
		if report.Auction.Ended {
			events = append(events, NewAuctionEndedEvent(report.Day, bid.BouquetID, report.Auction.BidAfter, false))
		}
	}

	events = append(events,
		newGardenEvent(WeatherResolved, report.Day, WeatherPayloadV1{Day: report.Day, Outcome: report.Weather}),
		newGardenEvent(DayAdvanced, report.Day, DayAdvancedPayloadV1{
			Day:     report.Day,
			Weather: report.Weather.Kind,
			Summary: report.Summary,
		}),
	)
	return events
}

// NewAuctionStartedEvent creates an auction started event
func NewAuctionStartedEvent(day int, goods *domain.ComposedGoods) Event {
	return newGardenEvent(AuctionStarted, day, AuctionStartedPayloadV1{
		Day:       day,
		BouquetID: goods.ID(),
		Signature: goods.Signature(),
		Label:     goods.Label(),
		BaseValue: goods.BaseValue(),
	})
}

// NewAuctionEndedEvent creates an auction ended event
func NewAuctionEndedEvent(day int, bouquetID string, earnings float64, early bool) Event {
	return newGardenEvent(AuctionEnded, day, AuctionEndedPayloadV1{
		Day:       day,
		BouquetID: bouquetID,
		Earnings:  earnings,
		Early:     early,
	})
}

// NewEarningsCollectedEvent creates an earnings collected event
func NewEarningsCollectedEvent(day int, amount, coins float64) Event {
	return newGardenEvent(EarningsCollected, day, EarningsCollectedPayloadV1{Day: day, Amount: amount, Coins: coins})
}

// NewBouquetComposedEvent creates a bouquet composed event
func NewBouquetComposedEvent(day int, goods *domain.ComposedGoods, newRecipe bool) Event {
	return newGardenEvent(BouquetComposed, day, BouquetComposedPayloadV1{
		Day:       day,
		BouquetID: goods.ID(),
		Signature: goods.Signature(),
		Label:     goods.Label(),
		Size:      goods.Size(),
		BaseValue: goods.BaseValue(),
		NewRecipe: newRecipe,
	})
}

// NewPlotTendedEvent creates a plot tended event
func NewPlotTendedEvent(day, plot int, action, flower string) Event {
	return newGardenEvent(PlotTended, day, PlotTendedPayloadV1{Day: day, Plot: plot, Action: action, Flower: flower})
}

// NewPlotPurchasedEvent creates a plot purchased event
func NewPlotPurchasedEvent(day, plot int, container bool, price float64) Event {
	return newGardenEvent(PlotPurchased, day, PlotPurchasedPayloadV1{Day: day, Plot: plot, Container: container, Price: price})
}

// NewStorageUsedEvent creates a storage used event
func NewStorageUsedEvent(day int, action string, flower *domain.Organism, energy, charges int) Event {
	return newGardenEvent(StorageUsed, day, StorageUsedPayloadV1{
		Day:               day,
		Action:            action,
		Flower:            flower.Name,
		Stage:             flower.Stage,
		Energy:            energy,
		FertilizerCharges: charges,
	})
}
