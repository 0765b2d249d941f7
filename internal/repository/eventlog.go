package repository

import (
	"context"
	"time"
)

// EventLog defines the interface for event journal storage
type EventLog interface {
	// LogEvent stores an event in the journal
	LogEvent(ctx context.Context, entry EventLogEntry) error

	// GetEvents retrieves events based on filter criteria, oldest first
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

// EventLogEntry represents a journaled garden event
type EventLogEntry struct {
	ID        int64                  `json:"id"`
	Slot      string                 `json:"slot"`
	Day       int                    `json:"day"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventLogFilter filters events for queries
type EventLogFilter struct {
	Slot      *string
	EventType *string
	FromDay   *int
	ToDay     *int
	Limit     int
}
