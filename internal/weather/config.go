package weather

import (
	"fmt"
	"math"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// Config is the tunable weather table
type Config struct {
	Chance                 float64                        `json:"chance" validate:"gte=0,lte=1"`
	Shares                 map[domain.WeatherKind]float64 `json:"shares" validate:"required,dive,gte=0"`
	SnowLossFraction       float64                        `json:"snow_loss_fraction" validate:"gte=0,lte=1"`
	ThunderstormDamage     float64                        `json:"thunderstorm_damage" validate:"gte=0"`
	EarthquakeLossFraction float64                        `json:"earthquake_loss_fraction" validate:"gte=0,lte=1"`
	HurricaneDamage        float64                        `json:"hurricane_damage" validate:"gte=0"`
	FairyMutationChance    float64                        `json:"fairy_mutation_chance" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the stock weather table
func DefaultConfig() Config {
	return Config{
		Chance: DefaultChance,
		Shares: map[domain.WeatherKind]float64{
			domain.WeatherRain:            40,
			domain.WeatherClear:           35,
			domain.WeatherSnow:            10,
			domain.WeatherThunderstorm:    10,
			domain.WeatherEarthquake:      2,
			domain.WeatherHurricane:       2,
			domain.WeatherMoleInfestation: 0.5,
			domain.WeatherFairyVisit:      0.5,
		},
		SnowLossFraction:       DefaultSnowLossFraction,
		ThunderstormDamage:     DefaultThunderstormDamage,
		EarthquakeLossFraction: DefaultEarthquakeLossFraction,
		HurricaneDamage:        DefaultHurricaneDamage,
		FairyMutationChance:    DefaultFairyMutationChance,
	}
}

// Validate checks that the share table names only known events and sums to 100
func (c Config) Validate() error {
	known := make(map[domain.WeatherKind]bool, len(domain.WeatherKinds))
	for _, k := range domain.WeatherKinds {
		known[k] = true
	}

	total := 0.0
	for kind, share := range c.Shares {
		if !known[kind] {
			return fmt.Errorf("%w: unknown weather %q", domain.ErrInvalidInput, kind)
		}
		if share < 0 {
			return fmt.Errorf("%w: negative share for %s", domain.ErrInvalidInput, kind)
		}
		total += share
	}
	if math.Abs(total-100) > shareTolerance {
		return fmt.Errorf("%w: got %.3f", domain.ErrInvalidWeatherShare, total)
	}
	return nil
}

// weights lays the share table out in domain.WeatherKinds order
func (c Config) weights() []float64 {
	out := make([]float64, len(domain.WeatherKinds))
	for i, k := range domain.WeatherKinds {
		out[i] = c.Shares[k]
	}
	return out
}
