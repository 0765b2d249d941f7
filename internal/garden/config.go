package garden

import "github.com/osse101/Bouquet_Go/internal/domain"

// Starting garden and economy defaults
const (
	DefaultStartingPlots      = 6
	DefaultStartingEnergy     = 20
	DefaultStartingCoins      = 30.0
	DefaultStartingFertilizer = 0
	DefaultPlotPrice          = 25.0
	DefaultContainerPrice     = 40.0
	DefaultMulchUsesPerDay    = 3
	DefaultMaxPlots           = 24
	DefaultActionEnergyCost   = 1
)

// Config is the garden and economy part of the game balance
type Config struct {
	StartingPlots      int     `json:"starting_plots" validate:"gte=1"`
	StartingEnergy     int     `json:"starting_energy" validate:"gte=0"`
	StartingCoins      float64 `json:"starting_coins" validate:"gte=0"`
	StartingFertilizer int     `json:"starting_fertilizer" validate:"gte=0"`
	PlotPrice          float64 `json:"plot_price" validate:"gt=0"`
	ContainerPrice     float64 `json:"container_price" validate:"gt=0"`
	MulchUsesPerDay    int     `json:"mulch_uses_per_day" validate:"gte=0"`
	MaxPlots           int     `json:"max_plots" validate:"gtefield=StartingPlots"`

	// ContainerMaxDifficulty is the difficulty tier at which containers refuse a seed
	ContainerMaxDifficulty int `json:"container_max_difficulty" validate:"gte=1"`

	// ActionEnergyCost is spent by every tending action. A new day tops energy back up
	// to StartingEnergy; eating seeds can push it higher.
	ActionEnergyCost int `json:"action_energy_cost" validate:"gte=0"`
}

// DefaultConfig returns the stock garden settings
func DefaultConfig() Config {
	return Config{
		StartingPlots:      DefaultStartingPlots,
		StartingEnergy:     DefaultStartingEnergy,
		StartingCoins:      DefaultStartingCoins,
		StartingFertilizer: DefaultStartingFertilizer,
		PlotPrice:          DefaultPlotPrice,
		ContainerPrice:     DefaultContainerPrice,
		MulchUsesPerDay:    DefaultMulchUsesPerDay,
		MaxPlots:           DefaultMaxPlots,
		ActionEnergyCost:   DefaultActionEnergyCost,

		ContainerMaxDifficulty: domain.DefaultContainerMaxDifficulty,
	}
}

// NewGarden creates the day-1 state of a fresh game
func (c Config) NewGarden() *domain.GardenState {
	s := domain.NewGardenState(c.StartingPlots, c.StartingEnergy, c.StartingCoins)
	s.FertilizerCharges = c.StartingFertilizer
	s.MulchUsesLeft = c.MulchUsesPerDay
	return s
}

// PriceOf returns the price of a new field plot or container
func (c Config) PriceOf(container bool) float64 {
	if container {
		return c.ContainerPrice
	}
	return c.PlotPrice
}
