package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/Bouquet_Go/internal/config"
	"github.com/osse101/Bouquet_Go/internal/event"
)

type eventSettings struct {
	maxRetries     int
	retryDelay     time.Duration
	deadLetterPath string
}

// eventSettingsFrom fills zero-valued EVENT_* settings with defaults
func eventSettingsFrom(cfg *config.Config) eventSettings {
	s := eventSettings{
		maxRetries:     cfg.EventMaxRetries,
		retryDelay:     cfg.EventRetryDelay,
		deadLetterPath: cfg.DeadLetterPath,
	}
	if s.maxRetries <= 0 {
		s.maxRetries = EventDefaultMaxRetries
	}
	if s.retryDelay <= 0 {
		s.retryDelay = EventDefaultRetryDelay
	}
	if s.deadLetterPath == "" {
		s.deadLetterPath = EventDefaultDeadLetterPath
	}
	return s
}

// InitializeEventSystem builds the in-memory bus and the retrying publisher the
// garden service publishes through.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	s := eventSettingsFrom(cfg)
	if err := os.MkdirAll(filepath.Dir(s.deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, s.maxRetries, s.retryDelay, s.deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", s.maxRetries,
		"retry_delay", s.retryDelay,
		"deadletter_path", s.deadLetterPath)
	return bus, publisher, nil
}
