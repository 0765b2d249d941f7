package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Bouquet_Go/internal/repository"
)

// MockRepository is a mock implementation of repository.EventLog
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]repository.EventLogEntry)
	return entries, args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
