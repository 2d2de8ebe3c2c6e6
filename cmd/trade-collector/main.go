package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"ftxgo/internal/infrastructure/container"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	c, err := container.New(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to build container: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	logger := c.Logger
	logger.Info().Msg("trade collector started")

	if err := c.ConnectStream(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to connect stream")
		os.Exit(1)
	}

	if err := c.SubscribeToMarketsUseCase.Execute(ctx, c.Config.App.Markets, false); err != nil {
		logger.Error().Err(err).Msg("failed to subscribe")
		os.Exit(1)
	}

	logger.Info().Strs("markets", c.Config.App.Markets).Msg("subscribed to trade streams")

	for {
		event, err := c.Stream.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info().Msg("shutdown signal received")
				break
			}
			logger.Error().Err(err).Msg("stream terminated")
			break
		}

		if err := c.EventHandler.HandleEvent(ctx, event); err != nil {
			logger.Error().Err(err).Str("market", event.Market()).Msg("failed to handle event")
		}
	}

	logger.Info().Msg("trade collector stopped")
}
