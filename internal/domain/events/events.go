package events

import "ftxgo/internal/domain/entities"

type EventType string

const (
	TradeEventType     EventType = "trade"
	OrderbookEventType EventType = "orderbook"
	TickerEventType    EventType = "ticker"
	FillEventType      EventType = "fill"
	OrderEventType     EventType = "order"
)

// MarketEvent is one consumer-visible unit from the streaming session: a
// typed payload paired with the market symbol of the originating frame.
// Account-scoped events (fills, orders) may carry an empty symbol.
type MarketEvent interface {
	Type() EventType
	Market() string
}

type TradeEvent struct {
	Symbol string
	Trade  *entities.Trade
}

func (e TradeEvent) Type() EventType { return TradeEventType }
func (e TradeEvent) Market() string  { return e.Symbol }

type OrderbookEvent struct {
	Symbol string
	Delta  *entities.OrderbookDelta
}

func (e OrderbookEvent) Type() EventType { return OrderbookEventType }
func (e OrderbookEvent) Market() string  { return e.Symbol }

type TickerEvent struct {
	Symbol string
	Ticker *entities.Ticker
}

func (e TickerEvent) Type() EventType { return TickerEventType }
func (e TickerEvent) Market() string  { return e.Symbol }

type FillEvent struct {
	Symbol string
	Fill   *entities.Fill
}

func (e FillEvent) Type() EventType { return FillEventType }
func (e FillEvent) Market() string  { return e.Symbol }

type OrderEvent struct {
	Symbol string
	Order  *entities.Order
}

func (e OrderEvent) Type() EventType { return OrderEventType }
func (e OrderEvent) Market() string  { return e.Symbol }
