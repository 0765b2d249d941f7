package repository

import "context"

// Tx is the part of a database transaction repositories hand back to callers
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
