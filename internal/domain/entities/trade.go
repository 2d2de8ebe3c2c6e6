package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a single public trade as reported by the exchange, either on the
// trades websocket channel or by the historical trades endpoint.
type Trade struct {
	ID          int64           `json:"id"`
	Price       decimal.Decimal `json:"price"`
	Size        decimal.Decimal `json:"size"`
	Side        Side            `json:"side"`
	Liquidation bool            `json:"liquidation"`
	Time        time.Time       `json:"time"`
}

func NewTrade(
	id int64,
	price decimal.Decimal,
	size decimal.Decimal,
	side Side,
	liquidation bool,
	tradeTime time.Time,
) *Trade {
	return &Trade{
		ID:          id,
		Price:       price,
		Size:        size,
		Side:        side,
		Liquidation: liquidation,
		Time:        tradeTime,
	}
}

func (t *Trade) Validate() error {
	if t.Price.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if t.Size.Sign() <= 0 {
		return ErrInvalidSize
	}
	if !t.Side.Valid() {
		return ErrInvalidSide
	}
	return nil
}
