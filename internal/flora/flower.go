// Package flora is the flower attribute table: seed costs, difficulty, durability and the
// stage dependent value of every known flower.
package flora

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// Flower is one row of the attribute table
type Flower struct {
	Name        string                   `json:"name" validate:"required"`
	SeedCost    float64                  `json:"seed_cost" validate:"gte=0"`
	Difficulty  int                      `json:"difficulty" validate:"gte=0"`
	Durability  float64                  `json:"durability" validate:"gt=0"`
	NRGRestored int                      `json:"nrg_restored" validate:"gte=0"`
	Woody       bool                     `json:"woody"`
	Values      map[domain.Stage]float64 `json:"values"`
}

// StageValue is the flower's worth in the given stage; stages without an entry are
// worth nothing
func (f Flower) StageValue(stage domain.Stage) float64 {
	return f.Values[stage]
}

// Seed creates a fresh organism of this flower in the Seed stage
func (f Flower) Seed() *domain.Organism {
	return &domain.Organism{
		Name:        f.Name,
		Stage:       domain.StageSeed,
		Durability:  f.Durability,
		NRGRestored: f.NRGRestored,
		Difficulty:  f.Difficulty,
		Woody:       f.Woody,
	}
}

// Registry resolves flower names to their attributes
type Registry interface {
	// Lookup returns the flower or an error wrapping ErrFlowerNotFound
	Lookup(ctx context.Context, name string) (Flower, error)
	// Names lists every known flower in name order
	Names(ctx context.Context) ([]string, error)
}

// ErrFlowerNotFound is returned for names missing from the table
var ErrFlowerNotFound = domain.ErrFlowerNotFound

// Normalize folds a flower name to its table key
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NewOrganism looks up a flower and returns a seed of it
func NewOrganism(ctx context.Context, reg Registry, name string) (*domain.Organism, error) {
	f, err := reg.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return f.Seed(), nil
}

// ValueFunc adapts a registry to the stage valuation used when composing bouquets
func ValueFunc(ctx context.Context, reg Registry) domain.ValueFunc {
	return func(name string, stage domain.Stage) (float64, error) {
		f, err := reg.Lookup(ctx, name)
		if err != nil {
			return 0, err
		}
		return f.StageValue(stage), nil
	}
}

// NotFound builds the lookup error for name, with a spelling hint drawn from known
func NotFound(name string, known []string) error {
	if suggestion, ok := Suggest(known, name); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrFlowerNotFound, name, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrFlowerNotFound, name)
}
