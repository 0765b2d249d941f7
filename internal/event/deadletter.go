package event

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/Bouquet_Go/internal/logger"
)

// DeadLetterSchemaVersion versions the DeadLetterEntry line format
const DeadLetterSchemaVersion = "1.1"

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Day           int       `json:"day"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

// Write appends evt with the number of delivery attempts and the last failure
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     w.now(),
		Day:           evt.Metadata.Day(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"day", entry.Day,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = w.file.Write(append(data, '\n'))
	return err
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
