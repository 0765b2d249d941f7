package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

// MockGardenService is a mock implementation of garden.Service
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) Snapshot(ctx context.Context) *domain.GardenState {
	args := m.Called(ctx)
	return args.Get(0).(*domain.GardenState)
}

func (m *MockGardenService) Water(ctx context.Context, index int) error {
	return m.Called(ctx, index).Error(0)
}

func (m *MockGardenService) Weed(ctx context.Context, index int) error {
	return m.Called(ctx, index).Error(0)
}

func (m *MockGardenService) Fertilize(ctx context.Context, index int) error {
	return m.Called(ctx, index).Error(0)
}

func (m *MockGardenService) Plant(ctx context.Context, index int, flower string) error {
	return m.Called(ctx, index, flower).Error(0)
}

func (m *MockGardenService) Harvest(ctx context.Context, index int) (*domain.Organism, error) {
	args := m.Called(ctx, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organism), args.Error(1)
}

func (m *MockGardenService) BuyPlot(ctx context.Context, container bool) (int, error) {
	args := m.Called(ctx, container)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) StorePlot(ctx context.Context, index int) error {
	return m.Called(ctx, index).Error(0)
}

func (m *MockGardenService) PlacePlot(ctx context.Context, storageIndex int) (int, error) {
	args := m.Called(ctx, storageIndex)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) Compose(ctx context.Context, storageIndexes []int, label string) (*domain.ComposedGoods, error) {
	args := m.Called(ctx, storageIndexes, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComposedGoods), args.Error(1)
}

func (m *MockGardenService) StartAuction(ctx context.Context, storageIndex int) error {
	return m.Called(ctx, storageIndex).Error(0)
}

func (m *MockGardenService) AcceptEarly(ctx context.Context) (domain.BidOutcome, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BidOutcome), args.Error(1)
}

func (m *MockGardenService) CollectEarnings(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGardenService) Mulch(ctx context.Context, storageIndex int) error {
	return m.Called(ctx, storageIndex).Error(0)
}

func (m *MockGardenService) Eat(ctx context.Context, storageIndex int) error {
	return m.Called(ctx, storageIndex).Error(0)
}

func (m *MockGardenService) AdvanceDay(ctx context.Context) (domain.DayReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DayReport), args.Error(1)
}

func (m *MockGardenService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGardenService) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockEventLogService is a mock implementation of eventlog.Service
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockEventLogService) History(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
