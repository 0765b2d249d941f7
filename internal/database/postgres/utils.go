package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Bouquet_Go/internal/repository"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	repository.SafeRollback(ctx, tx)
}

// beginTx starts a new transaction. Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool) (pgx.Tx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return tx, nil
}

// marshalOptional encodes m, or returns nil so the column stays NULL
func marshalOptional(m map[string]interface{}) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
