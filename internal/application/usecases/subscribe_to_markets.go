package usecases

import (
	"context"

	"github.com/rs/zerolog"

	"ftxgo/internal/domain/services"
	"ftxgo/internal/ftx/ws"
)

type SubscribeToMarketsUseCase struct {
	stream services.EventStream
	logger zerolog.Logger
}

func NewSubscribeToMarketsUseCase(
	stream services.EventStream,
	logger zerolog.Logger,
) *SubscribeToMarketsUseCase {
	return &SubscribeToMarketsUseCase{
		stream: stream,
		logger: logger,
	}
}

func (uc *SubscribeToMarketsUseCase) Execute(ctx context.Context, markets []string, withOrderbooks bool) error {
	channels := make([]ws.Channel, 0, 2*len(markets))
	for _, market := range markets {
		channels = append(channels, ws.TradesChannel(market))
		if withOrderbooks {
			channels = append(channels, ws.OrderbookChannel(market))
		}
	}

	uc.logger.Info().Int("markets", len(markets)).Int("channels", len(channels)).Msg("subscribing to markets")

	if err := uc.stream.Subscribe(ctx, channels); err != nil {
		uc.logger.Error().Err(err).Msg("failed to subscribe to markets")
		return err
	}

	return nil
}
