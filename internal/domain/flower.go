package domain

import (
	"fmt"
	"strings"
)

// Stage is the growth stage of a flower
type Stage string

const (
	StageSeed     Stage = "seed"
	StageSeedling Stage = "seedling"
	StageBloomed  Stage = "bloomed"
	StageMatured  Stage = "matured"
	StageWithered Stage = "withered"
	StageMutated  Stage = "mutated"
)

// AllStages lists every stage in lifecycle order
var AllStages = []Stage{StageSeed, StageSeedling, StageBloomed, StageMatured, StageWithered, StageMutated}

// Rank orders stages along the lifecycle. Withered and Mutated are both terminal.
func (s Stage) Rank() int {
	switch s {
	case StageSeed:
		return 0
	case StageSeedling:
		return 1
	case StageBloomed:
		return 2
	case StageMatured:
		return 3
	case StageWithered, StageMutated:
		return 4
	default:
		return -1
	}
}

// Terminal reports whether no further growth is possible from this stage
func (s Stage) Terminal() bool {
	return s == StageWithered || s == StageMutated
}

// Composable reports whether a flower in this stage may go into a bouquet
func (s Stage) Composable() bool {
	switch s {
	case StageBloomed, StageMatured, StageWithered, StageMutated:
		return true
	default:
		return false
	}
}

// ParseStage converts a stage name into a Stage
func ParseStage(name string) (Stage, error) {
	stage := Stage(strings.ToLower(strings.TrimSpace(name)))
	if stage.Rank() < 0 {
		return "", fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, name)
	}
	return stage, nil
}

// Organism is a single flower. Its monetary value is stage dependent and lives in the
// attribute table, not on the flower.
type Organism struct {
	Name        string  `json:"name"`
	Stage       Stage   `json:"stage"`
	Days        int     `json:"days"`
	Durability  float64 `json:"durability"`
	NRGRestored int     `json:"nrg_restored"`
	Difficulty  int     `json:"difficulty"`
	Woody       bool    `json:"woody"`
}

// Clone returns an independent copy
func (o *Organism) Clone() *Organism {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// Wither forces the flower into the Withered stage
func (o *Organism) Wither() {
	o.Stage = StageWithered
}

// Label is the stage-qualified name used in bouquet signatures
func (o *Organism) Label() string {
	return string(o.Stage) + " " + o.Name
}
