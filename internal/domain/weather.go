package domain

// WeatherKind identifies a weather event
type WeatherKind string

const (
	WeatherCalm            WeatherKind = "calm"
	WeatherRain            WeatherKind = "rain"
	WeatherClear           WeatherKind = "clear"
	WeatherSnow            WeatherKind = "snow"
	WeatherThunderstorm    WeatherKind = "thunderstorm"
	WeatherEarthquake      WeatherKind = "earthquake"
	WeatherHurricane       WeatherKind = "hurricane"
	WeatherMoleInfestation WeatherKind = "mole_infestation"
	WeatherFairyVisit      WeatherKind = "fairy_visit"
)

// WeatherKinds lists the events that can be drawn once the daily gate passes
var WeatherKinds = []WeatherKind{
	WeatherRain,
	WeatherClear,
	WeatherSnow,
	WeatherThunderstorm,
	WeatherEarthquake,
	WeatherHurricane,
	WeatherMoleInfestation,
	WeatherFairyVisit,
}

// WeatherNote qualifies which sub-branch of an event fired
type WeatherNote string

const (
	WeatherNoteNone          WeatherNote = ""
	WeatherNoteNoTarget      WeatherNote = "no_target"
	WeatherNoteMoleHarvested WeatherNote = "mole_harvested"
	WeatherNoteMoleDestroyed WeatherNote = "mole_destroyed"
	WeatherNoteFairyMutation WeatherNote = "fairy_mutation"
	WeatherNoteFairySoil     WeatherNote = "fairy_soil"
)

// PlotChange records the before/after values of one plot touched by weather
type PlotChange struct {
	Plot             int         `json:"plot"`
	Flower           string      `json:"flower,omitempty"`
	DurabilityBefore float64     `json:"durability_before"`
	DurabilityAfter  float64     `json:"durability_after"`
	StageBefore      Stage       `json:"stage_before,omitempty"`
	StageAfter       Stage       `json:"stage_after,omitempty"`
	SoilBefore       SoilQuality `json:"soil_before"`
	SoilAfter        SoilQuality `json:"soil_after"`
	Watered          bool        `json:"watered"`
}

// WeatherOutcome is the descriptor emitted for a day's weather, even when nothing changed
type WeatherOutcome struct {
	Kind      WeatherKind  `json:"kind"`
	Occurred  bool         `json:"occurred"`
	Note      WeatherNote  `json:"note,omitempty"`
	Affected  int          `json:"affected"`
	Changes   []PlotChange `json:"changes,omitempty"`
	Harvested []*Organism  `json:"harvested,omitempty"`
	Destroyed []*Organism  `json:"destroyed,omitempty"`
}
