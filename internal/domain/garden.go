package domain

// GardenState is everything a player session owns and everything a save must round-trip
type GardenState struct {
	Day               int               `json:"day"`
	Energy            int               `json:"energy"`
	Coins             float64           `json:"coins"`
	Plots             []*Plot           `json:"plots"`
	Storage           Inventory         `json:"storage"`
	Auction           AuctionState      `json:"auction"`
	Recipes           map[string]Recipe `json:"recipes"`
	FertilizerCharges int               `json:"fertilizer_charges"`
	MulchUsesLeft     int               `json:"mulch_uses_left"`
}

// NewGardenState creates a day-1 garden with the given number of empty field plots
func NewGardenState(plots, energy int, coins float64) *GardenState {
	s := &GardenState{
		Day:     1,
		Energy:  energy,
		Coins:   coins,
		Plots:   make([]*Plot, 0, plots),
		Recipes: make(map[string]Recipe),
	}
	for i := 0; i < plots; i++ {
		s.Plots = append(s.Plots, NewPlot(false))
	}
	return s
}

// Clone returns a deep copy
func (s *GardenState) Clone() *GardenState {
	c := *s
	c.Plots = make([]*Plot, len(s.Plots))
	for i, p := range s.Plots {
		c.Plots[i] = p.Clone()
	}
	c.Storage = s.Storage.Clone()
	c.Auction = s.Auction.Clone()
	c.Recipes = make(map[string]Recipe, len(s.Recipes))
	for k, v := range s.Recipes {
		c.Recipes[k] = v
	}
	return &c
}

// PlotAt returns the plot at index
func (s *GardenState) PlotAt(index int) (*Plot, error) {
	if index < 0 || index >= len(s.Plots) {
		return nil, ErrPlotIndex
	}
	return s.Plots[index], nil
}
