package repository

import (
	"context"

	"github.com/osse101/Bouquet_Go/internal/flora"
)

// FlowerCatalog is a stored flower attribute table
type FlowerCatalog interface {
	flora.Registry

	// UpsertFlowers inserts or replaces rows by name in one transaction
	UpsertFlowers(ctx context.Context, flowers []flora.Flower) error
}
