package repositories

import (
	"context"
	"time"

	"ftxgo/internal/domain/entities"
)

// MarketTrade pairs a trade with the market it printed on; the exchange's
// trade records do not carry the symbol themselves.
type MarketTrade struct {
	Market string
	Trade  *entities.Trade
}

type TradeRepository interface {
	SaveBatch(ctx context.Context, trades []MarketTrade) error
	GetOldestTradeTime(ctx context.Context, market string) (*time.Time, error)
}
