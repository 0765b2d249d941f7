package plot

import "github.com/osse101/Bouquet_Go/internal/domain"

// Thresholds holds the cumulative lifecycle days a flower needs before it can leave
// each growing stage
type Thresholds struct {
	Seed     int `json:"seed" validate:"gt=0"`
	Seedling int `json:"seedling" validate:"gtfield=Seed"`
	Bloomed  int `json:"bloomed" validate:"gtfield=Seedling"`
	Matured  int `json:"matured" validate:"gtfield=Bloomed"`
}

// For returns the threshold for leaving stage, false for terminal stages
func (t Thresholds) For(stage domain.Stage) (int, bool) {
	switch stage {
	case domain.StageSeed:
		return t.Seed, true
	case domain.StageSeedling:
		return t.Seedling, true
	case domain.StageBloomed:
		return t.Bloomed, true
	case domain.StageMatured:
		return t.Matured, true
	default:
		return 0, false
	}
}

// Config holds the tunable growth and neglect parameters
type Config struct {
	Thresholds                 Thresholds `json:"thresholds"`
	WeedChance                 float64    `json:"weed_chance" validate:"gte=0,lte=1"`
	MutationChance             float64    `json:"mutation_chance" validate:"gte=0,lte=1"`
	NeglectChance              float64    `json:"neglect_chance" validate:"gte=0,lte=1"`
	NeglectPenalty             float64    `json:"neglect_penalty" validate:"gt=0"`
	ContainerPenaltyMultiplier float64    `json:"container_penalty_multiplier" validate:"gte=1"`
	FertilizerFadeChance       float64    `json:"fertilizer_fade_chance" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the stock growth balance
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			Seed:     DefaultSeedDays,
			Seedling: DefaultSeedlingDays,
			Bloomed:  DefaultBloomedDays,
			Matured:  DefaultMaturedDays,
		},
		WeedChance:                 DefaultWeedChance,
		MutationChance:             DefaultMutationChance,
		NeglectChance:              DefaultNeglectChance,
		NeglectPenalty:             DefaultNeglectPenalty,
		ContainerPenaltyMultiplier: DefaultContainerPenaltyMultiplier,
		FertilizerFadeChance:       DefaultFertilizerFadeChance,
	}
}
