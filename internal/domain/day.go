package domain

// PlotResult names the path a plot took through its daily advance
type PlotResult string

const (
	PlotResultEmpty    PlotResult = "empty"
	PlotResultGrew     PlotResult = "grew"
	PlotResultWaiting  PlotResult = "waiting"
	PlotResultNeglect  PlotResult = "neglected"
	PlotResultWithered PlotResult = "withered"
	PlotResultMutated  PlotResult = "mutated"
	PlotResultDormant  PlotResult = "dormant"
)

// PlotOutcome is the per-plot delta of one daily advance
type PlotOutcome struct {
	Plot           int         `json:"plot"`
	Flower         string      `json:"flower,omitempty"`
	Result         PlotResult  `json:"result"`
	StageBefore    Stage       `json:"stage_before,omitempty"`
	StageAfter     Stage       `json:"stage_after,omitempty"`
	SoilBefore     SoilQuality `json:"soil_before"`
	SoilAfter      SoilQuality `json:"soil_after"`
	DurabilityLost float64     `json:"durability_lost"`
	NeedsWater     bool        `json:"needs_water"`
	NeedsWeeding   bool        `json:"needs_weeding"`
}

// SummaryKind labels a count-based summary line of a day report
type SummaryKind string

const (
	SummaryGrew         SummaryKind = "grew"
	SummaryMutated      SummaryKind = "mutated"
	SummaryWithered     SummaryKind = "withered"
	SummaryDamaged      SummaryKind = "damaged"
	SummaryNeedsWater   SummaryKind = "needs_water"
	SummaryNeedsWeeding SummaryKind = "needs_weeding"
	SummaryHarvested    SummaryKind = "harvested_by_weather"
)

// SummaryEvent is a count-based summary of the day
type SummaryEvent struct {
	Kind  SummaryKind `json:"kind"`
	Count int         `json:"count"`
}

// DayReport aggregates every descriptor produced by one day advance
type DayReport struct {
	Day     int            `json:"day"`
	Plots   []PlotOutcome  `json:"plots"`
	Auction *BidOutcome    `json:"auction,omitempty"`
	Weather WeatherOutcome `json:"weather"`
	Summary []SummaryEvent `json:"summary"`
}
