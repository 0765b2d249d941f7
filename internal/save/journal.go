package save

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/Bouquet_Go/internal/repository"
)

// JournalFile is the file name of the event journal inside a save directory
const JournalFile = "events.jsonl"

// Journal is an append-only JSON-lines event journal kept next to file saves
type Journal struct {
	mu     sync.Mutex
	path   string
	nextID int64
	now    func() time.Time
}

var _ repository.EventLog = (*Journal)(nil)

// NewJournal opens the journal in dir, continuing its id sequence
func NewJournal(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	j := &Journal{path: filepath.Join(dir, JournalFile), now: time.Now}
	entries, err := j.readAll()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		j.nextID = max(j.nextID, e.ID)
	}
	return j, nil
}

// LogEvent implements repository.EventLog
func (j *Journal) LogEvent(_ context.Context, entry repository.EventLogEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.nextID++
	entry.ID = j.nextID
	entry.CreatedAt = j.now().UTC()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermission)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append to journal: %w", err)
	}
	return nil
}

// GetEvents implements repository.EventLog
func (j *Journal) GetEvents(_ context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.readAll()
	if err != nil {
		return nil, err
	}
	var out []repository.EventLogEntry
	for _, e := range entries {
		if !matches(e, filter) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// CleanupOldEvents implements repository.EventLog by rewriting the journal without
// entries older than the retention period
func (j *Journal) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.readAll()
	if err != nil {
		return 0, err
	}
	cutoff := j.now().AddDate(0, 0, -retentionDays)

	var buf bytes.Buffer
	var removed int64
	for _, e := range entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		data, err := json.Marshal(e)
		if err != nil {
			return 0, fmt.Errorf("failed to encode journal entry: %w", err)
		}
		buf.Write(append(data, '\n'))
	}
	if removed == 0 {
		return 0, nil
	}
	if err := writeAtomic(j.path, buf.Bytes()); err != nil {
		return 0, err
	}
	return removed, nil
}

func (j *Journal) readAll() ([]repository.EventLogEntry, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	var entries []repository.EventLogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}
		var e repository.EventLogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

func matches(e repository.EventLogEntry, f repository.EventLogFilter) bool {
	switch {
	case f.Slot != nil && e.Slot != *f.Slot:
		return false
	case f.EventType != nil && e.EventType != *f.EventType:
		return false
	case f.FromDay != nil && e.Day < *f.FromDay:
		return false
	case f.ToDay != nil && e.Day > *f.ToDay:
		return false
	}
	return true
}
