package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/repository"
	"github.com/osse101/Bouquet_Go/internal/save"
)

type gardenRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewGardenRepository creates a save repository storing each slot as one JSONB row
func NewGardenRepository(db *pgxpool.Pool) repository.Garden {
	return &gardenRepository{db: db, now: time.Now}
}

// LoadGarden implements repository.Garden
func (r *gardenRepository) LoadGarden(ctx context.Context, slot string) (*domain.GardenState, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT state FROM garden_saves WHERE slot = $1`, slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSave, err)
	}
	return save.Decode(data)
}

// SaveGarden implements repository.Garden
func (r *gardenRepository) SaveGarden(ctx context.Context, slot string, state *domain.GardenState) error {
	data, err := save.Encode(state, r.now())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO garden_saves (slot, day, state, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (slot) DO UPDATE
		SET day = EXCLUDED.day, state = EXCLUDED.state, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query, slot, state.Day, data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToStoreSave, err)
	}
	return nil
}

// ListSaves implements repository.Garden
func (r *gardenRepository) ListSaves(ctx context.Context) ([]repository.SaveInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT slot, day, updated_at FROM garden_saves ORDER BY updated_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}
	defer rows.Close()

	var out []repository.SaveInfo
	for rows.Next() {
		var info repository.SaveInfo
		if err := rows.Scan(&info.Slot, &info.Day, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}
	return out, nil
}
