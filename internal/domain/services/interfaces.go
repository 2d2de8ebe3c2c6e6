package services

import (
	"context"
	"time"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/events"
	"ftxgo/internal/ftx/ws"
)

// EventStream is a live exchange feed with subscription management and a
// single-consumer pull interface. Satisfied by *ws.Session.
type EventStream interface {
	Subscribe(ctx context.Context, channels []ws.Channel) error
	Unsubscribe(ctx context.Context, channels []ws.Channel) error
	Next(ctx context.Context) (events.MarketEvent, error)
	Close() error
}

// HistoricalDataService fetches past trades from the exchange's REST API.
// Satisfied by *rest.Client.
type HistoricalDataService interface {
	GetTrades(ctx context.Context, market string, limit int, start, end time.Time) ([]*entities.Trade, error)
}
