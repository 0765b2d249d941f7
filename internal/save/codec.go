// Package save round-trips garden states through a versioned JSON envelope and stores
// them as files.
package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// FormatVersion is written into every save. Decode refuses newer versions.
const FormatVersion = 1

type envelope struct {
	Version int                 `json:"version"`
	SavedAt time.Time           `json:"saved_at"`
	State   *domain.GardenState `json:"state"`
}

// Encode serializes a garden state
func Encode(state *domain.GardenState, now time.Time) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nothing to save", domain.ErrInvalidInput)
	}
	return json.MarshalIndent(envelope{Version: FormatVersion, SavedAt: now.UTC(), State: state}, "", "  ")
}

// Decode parses a save and checks the state is playable
func Decode(data []byte) (*domain.GardenState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: corrupt save: %v", domain.ErrInvalidInput, err)
	}
	if env.Version < 1 || env.Version > FormatVersion {
		return nil, fmt.Errorf("%w: unsupported save version %d", domain.ErrInvalidInput, env.Version)
	}
	if err := validate(env.State); err != nil {
		return nil, err
	}
	if env.State.Recipes == nil {
		env.State.Recipes = make(map[string]domain.Recipe)
	}
	return env.State, nil
}

func validate(s *domain.GardenState) error {
	if s == nil {
		return fmt.Errorf("%w: save has no state", domain.ErrInvalidInput)
	}
	if s.Day < 1 {
		return fmt.Errorf("%w: day %d", domain.ErrInvalidInput, s.Day)
	}
	for i, p := range s.Plots {
		if p == nil {
			return fmt.Errorf("%w: plot %d missing", domain.ErrInvalidInput, i)
		}
		if p.Organism == nil && p.Watered {
			return fmt.Errorf("%w: empty plot %d is watered", domain.ErrInvalidInput, i)
		}
	}
	a := s.Auction
	if a.Active && a.Goods == nil {
		return fmt.Errorf("%w: active auction without a bouquet", domain.ErrInvalidInput)
	}
	if a.Active && a.Bid < a.Goods.BaseValue() {
		return fmt.Errorf("%w: bid below base value", domain.ErrInvalidInput)
	}
	return nil
}
