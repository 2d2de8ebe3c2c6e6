package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/events"
	"ftxgo/internal/ftx/ws"
)

// MockEventStream is a mock implementation of services.EventStream.
type MockEventStream struct {
	mock.Mock
}

func (m *MockEventStream) Subscribe(ctx context.Context, channels []ws.Channel) error {
	args := m.Called(ctx, channels)
	return args.Error(0)
}

func (m *MockEventStream) Unsubscribe(ctx context.Context, channels []ws.Channel) error {
	args := m.Called(ctx, channels)
	return args.Error(0)
}

func (m *MockEventStream) Next(ctx context.Context) (events.MarketEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(events.MarketEvent), args.Error(1)
}

func (m *MockEventStream) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockHistoricalDataService is a mock implementation of services.HistoricalDataService.
type MockHistoricalDataService struct {
	mock.Mock
}

func (m *MockHistoricalDataService) GetTrades(ctx context.Context, market string, limit int, start, end time.Time) ([]*entities.Trade, error) {
	args := m.Called(ctx, market, limit, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Trade), args.Error(1)
}
