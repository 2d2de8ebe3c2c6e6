package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

// OrderStatus is assigned differently by the REST and websocket APIs: over
// REST "new" means accepted but not yet processed, over websocket it means
// processed and resting.
type OrderStatus string

const (
	OrderStatusNew    OrderStatus = "new"
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

// Order describes one of the account's own orders, pushed on the private
// orders channel and returned by the order endpoints.
type Order struct {
	ID            int64           `json:"id"`
	ClientID      string          `json:"clientId"`
	Market        string          `json:"market"`
	Future        string          `json:"future"`
	Type          OrderType       `json:"type"`
	Side          Side            `json:"side"`
	Price         decimal.Decimal `json:"price"` // zero for new market orders
	Size          decimal.Decimal `json:"size"`
	Status        OrderStatus     `json:"status"`
	FilledSize    decimal.Decimal `json:"filledSize"`
	RemainingSize decimal.Decimal `json:"remainingSize"`
	AvgFillPrice  decimal.Decimal `json:"avgFillPrice"`
	ReduceOnly    bool            `json:"reduceOnly"`
	IOC           bool            `json:"ioc"`
	PostOnly      bool            `json:"postOnly"`
	Liquidation   bool            `json:"liquidation"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (o *Order) Validate() error {
	if o.Size.Sign() <= 0 {
		return ErrInvalidSize
	}
	if !o.Side.Valid() {
		return ErrInvalidSide
	}
	return nil
}
