package services

import (
	"context"

	"github.com/rs/zerolog"

	"ftxgo/internal/application/usecases"
	"ftxgo/internal/domain/events"
)

// EventHandler routes streamed market events to the use case that consumes
// them. Event types without a collection pipeline are logged and dropped.
type EventHandler struct {
	processTradeUC *usecases.ProcessTradeEventUseCase
	logger         zerolog.Logger
}

func NewEventHandler(
	processTradeUC *usecases.ProcessTradeEventUseCase,
	logger zerolog.Logger,
) *EventHandler {
	return &EventHandler{
		processTradeUC: processTradeUC,
		logger:         logger,
	}
}

func (h *EventHandler) HandleEvent(ctx context.Context, event events.MarketEvent) error {
	switch ev := event.(type) {
	case events.TradeEvent:
		return h.processTradeUC.Execute(ctx, ev.Symbol, ev.Trade)
	case events.OrderbookEvent:
		h.logger.Debug().
			Str("market", ev.Symbol).
			Str("action", string(ev.Delta.Action)).
			Msg("orderbook delta")
		return nil
	case events.TickerEvent:
		h.logger.Debug().Str("market", ev.Symbol).Msg("ticker update")
		return nil
	case events.FillEvent:
		h.logger.Info().
			Str("market", ev.Symbol).
			Int64("fill_id", ev.Fill.ID).
			Msg("fill received")
		return nil
	case events.OrderEvent:
		h.logger.Info().
			Str("market", ev.Symbol).
			Int64("order_id", ev.Order.ID).
			Str("status", string(ev.Order.Status)).
			Msg("order update")
		return nil
	default:
		h.logger.Debug().Str("type", string(event.Type())).Msg("unhandled event type")
		return nil
	}
}
