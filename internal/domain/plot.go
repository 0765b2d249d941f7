package domain

import (
	"fmt"
	"strings"
)

// SoilQuality is the ordered soil tier of a plot
type SoilQuality int

const (
	SoilBad SoilQuality = iota
	SoilAverage
	SoilGood
	SoilGreat
	SoilMagic
)

var soilNames = []string{"bad", "average", "good", "great", "magic"}

func (q SoilQuality) String() string {
	if q < SoilBad || q > SoilMagic {
		return fmt.Sprintf("soil(%d)", int(q))
	}
	return soilNames[q]
}

// MarshalText implements encoding.TextMarshaler
func (q SoilQuality) MarshalText() ([]byte, error) {
	if q < SoilBad || q > SoilMagic {
		return nil, fmt.Errorf("%w: soil quality %d out of range", ErrInvalidInput, int(q))
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (q *SoilQuality) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range soilNames {
		if n == name {
			*q = SoilQuality(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown soil quality %q", ErrInvalidInput, name)
}

// DefaultContainerMaxDifficulty is the stock tier at which containers refuse a seed
const DefaultContainerMaxDifficulty = 3

// Plot is a land unit or portable container holding at most one flower
type Plot struct {
	Organism      *Organism   `json:"organism,omitempty"`
	Watered       bool        `json:"watered"`
	Weeded        bool        `json:"weeded"`
	Fertilized    bool        `json:"fertilized"`
	Soil          SoilQuality `json:"soil"`
	Container     bool        `json:"container"`
	UnwateredDays int         `json:"unwatered_days"`
}

// NewPlot creates an empty plot. Containers never need weeding.
func NewPlot(container bool) *Plot {
	return &Plot{
		Weeded:    container,
		Container: container,
		Soil:      SoilAverage,
	}
}

// Occupied reports whether a flower is planted
func (p *Plot) Occupied() bool {
	return p.Organism != nil
}

// Water waters the planted flower once per day
func (p *Plot) Water() error {
	if !p.Occupied() {
		return ErrPlotEmpty
	}
	if p.Watered {
		return ErrAlreadyWatered
	}
	p.Watered = true
	return nil
}

// Weed clears weeds; containers are always considered weeded
func (p *Plot) Weed() error {
	if p.Weeded || p.Container {
		return ErrAlreadyWeeded
	}
	p.Weeded = true
	return nil
}

// Fertilize marks the planted flower as fertilized
func (p *Plot) Fertilize() error {
	if !p.Occupied() {
		return ErrPlotEmpty
	}
	if p.Fertilized {
		return ErrAlreadyFertilized
	}
	p.Fertilized = true
	return nil
}

// Plant puts a seed into an empty plot under the stock container limit
func (p *Plot) Plant(o *Organism) error {
	return p.PlantLimited(o, DefaultContainerMaxDifficulty)
}

// PlantLimited puts a seed into an empty plot and starts its lifecycle at day 1.
// Containers refuse woody flowers and any with Difficulty >= containerMaxDifficulty.
func (p *Plot) PlantLimited(o *Organism, containerMaxDifficulty int) error {
	if o == nil {
		return fmt.Errorf("%w: no flower given", ErrInvalidOperation)
	}
	if p.Occupied() {
		return ErrPlotOccupied
	}
	if o.Stage != StageSeed {
		return fmt.Errorf("%w: %s is %s", ErrNotASeed, o.Name, o.Stage)
	}
	if p.Container && (o.Woody || o.Difficulty >= containerMaxDifficulty) {
		return fmt.Errorf("%w: %s", ErrContainerIneligible, o.Name)
	}
	o.Days = 1
	p.Organism = o
	p.UnwateredDays = 0
	return nil
}

// Harvest removes and returns the planted flower
func (p *Plot) Harvest() (*Organism, error) {
	if !p.Occupied() {
		return nil, ErrPlotEmpty
	}
	o := p.Organism
	p.Organism = nil
	p.Watered = false
	p.UnwateredDays = 0
	return o, nil
}

// Clone returns a deep copy
func (p *Plot) Clone() *Plot {
	if p == nil {
		return nil
	}
	c := *p
	c.Organism = p.Organism.Clone()
	return &c
}
