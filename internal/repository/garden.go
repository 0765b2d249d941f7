package repository

import (
	"context"
	"time"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// Garden persists whole garden states by save slot
type Garden interface {
	// LoadGarden returns the saved state or an error wrapping domain.ErrSaveNotFound
	LoadGarden(ctx context.Context, slot string) (*domain.GardenState, error)

	// SaveGarden stores state under slot, replacing any previous save
	SaveGarden(ctx context.Context, slot string, state *domain.GardenState) error

	// ListSaves describes every stored slot, most recently saved first
	ListSaves(ctx context.Context) ([]SaveInfo, error)
}

// SaveInfo describes one save slot
type SaveInfo struct {
	Slot      string    `json:"slot"`
	Day       int       `json:"day"`
	UpdatedAt time.Time `json:"updated_at"`
}
