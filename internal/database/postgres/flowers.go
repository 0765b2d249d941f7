package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

type flowerCatalog struct {
	db *pgxpool.Pool
}

// NewFlowerCatalog creates a flower attribute table backed by the flowers table
func NewFlowerCatalog(db *pgxpool.Pool) repository.FlowerCatalog {
	return &flowerCatalog{db: db}
}

// Lookup implements flora.Registry
func (r *flowerCatalog) Lookup(ctx context.Context, name string) (flora.Flower, error) {
	query := `
		SELECT name, seed_cost, difficulty, durability, nrg_restored, woody, stage_values
		FROM flowers
		WHERE name = $1
	`

	var f flora.Flower
	var values []byte
	err := r.db.QueryRow(ctx, query, flora.Normalize(name)).Scan(
		&f.Name, &f.SeedCost, &f.Difficulty, &f.Durability, &f.NRGRestored, &f.Woody, &values,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		known, nerr := r.Names(ctx)
		if nerr != nil {
			return flora.Flower{}, flora.NotFound(name, nil)
		}
		return flora.Flower{}, flora.NotFound(name, known)
	}
	if err != nil {
		return flora.Flower{}, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFlowers, err)
	}
	if err := json.Unmarshal(values, &f.Values); err != nil {
		return flora.Flower{}, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeFlowers, err)
	}
	return f, nil
}

// Names implements flora.Registry
func (r *flowerCatalog) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM flowers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFlowers, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFlowers, err)
	}
	return names, nil
}

// UpsertFlowers implements repository.FlowerCatalog
func (r *flowerCatalog) UpsertFlowers(ctx context.Context, flowers []flora.Flower) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO flowers (name, seed_cost, difficulty, durability, nrg_restored, woody, stage_values, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (name) DO UPDATE
		SET seed_cost = EXCLUDED.seed_cost,
			difficulty = EXCLUDED.difficulty,
			durability = EXCLUDED.durability,
			nrg_restored = EXCLUDED.nrg_restored,
			woody = EXCLUDED.woody,
			stage_values = EXCLUDED.stage_values,
			updated_at = EXCLUDED.updated_at
	`
	for _, f := range flowers {
		name := flora.Normalize(f.Name)
		if name == "" {
			return fmt.Errorf("%w: flower without a name", domain.ErrInvalidInput)
		}
		values := f.Values
		if values == nil {
			values = map[domain.Stage]float64{}
		}
		valuesJSON, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertFlower, err)
		}
		if _, err := tx.Exec(ctx, query, name, f.SeedCost, f.Difficulty, f.Durability, f.NRGRestored, f.Woody, valuesJSON); err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedToUpsertFlower, name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
