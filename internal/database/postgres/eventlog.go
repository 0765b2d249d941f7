package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Bouquet_Go/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	query := `
		INSERT INTO garden_events (slot, day, event_type, payload, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`

	payload := entry.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
	}
	metadataJSON, err := marshalOptional(entry.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
	}

	if _, err := r.db.Exec(ctx, query, entry.Slot, entry.Day, entry.EventType, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, slot, day, event_type, payload, metadata, created_at
		FROM garden_events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Slot != nil {
		fmt.Fprintf(&queryBuilder, " AND slot = $%d", argNum)
		args = append(args, *filter.Slot)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.FromDay != nil {
		fmt.Fprintf(&queryBuilder, " AND day >= $%d", argNum)
		args = append(args, *filter.FromDay)
		argNum++
	}

	if filter.ToDay != nil {
		fmt.Fprintf(&queryBuilder, " AND day <= $%d", argNum)
		args = append(args, *filter.ToDay)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY id ASC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM garden_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}

	return result.RowsAffected(), nil
}

// scanEvents scans rows into entries
func (r *eventLogRepository) scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry

	for rows.Next() {
		var evt repository.EventLogEntry
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.Slot,
			&evt.Day,
			&evt.EventType,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}

	return events, nil
}
