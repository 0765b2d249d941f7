// Package eventlog journals garden events to storage so past days can be replayed and
// inspected.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/logger"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all garden events
	Subscribe(bus event.Bus) error

	// History returns journaled events for the service's save slot, oldest first
	History(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
	slot string
}

// NewService creates a new event logging service writing under the given save slot
func NewService(repo repository.EventLog, slot string) Service {
	return &service{repo: repo, slot: slot}
}

// Subscribe registers event handlers for all garden event types
func (s *service) Subscribe(bus event.Bus) error {
	event.SubscribeAll(bus, event.GardenTypes, s.handleEvent)
	return nil
}

// handleEvent flattens the payload and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toMap(evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadNotEncodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}
	day := evt.Metadata.Day()

	entry := repository.EventLogEntry{
		Slot:      s.slot,
		Day:       day,
		EventType: string(evt.Type),
		Payload:   payload,
		Metadata:  evt.Metadata,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSlot, s.slot, LogFieldDay, day)
	return nil
}

// History implements Service
func (s *service) History(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	filter.Slot = &s.slot
	if filter.Limit <= 0 {
		filter.Limit = DefaultHistoryLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toMap turns a typed payload into the generic JSON object the journal stores
func toMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("payload is not an object: %w", err)
	}
	return m, nil
}
