package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ftxgo/internal/domain/repositories"
)

// MockTradeRepository is a mock implementation of TradeRepository.
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) SaveBatch(ctx context.Context, trades []repositories.MarketTrade) error {
	args := m.Called(ctx, trades)
	return args.Error(0)
}

func (m *MockTradeRepository) GetOldestTradeTime(ctx context.Context, market string) (*time.Time, error) {
	args := m.Called(ctx, market)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
