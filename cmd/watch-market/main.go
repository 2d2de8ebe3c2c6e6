package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/events"
	"ftxgo/internal/ftx/ws"
	"ftxgo/internal/orderbook"
)

var (
	market    string
	proxyAddr string

	two = decimal.NewFromInt(2)
)

var rootCmd = &cobra.Command{
	Use:   "watch-market",
	Short: "Stream live trades and orderbook for a market",
	Long: `Connects to the exchange websocket feed, subscribes to the trades and
orderbook channels for one market and prints every trade along with the
current top of book.`,
	RunE: runWatchMarket,
}

func init() {
	rootCmd.Flags().StringVarP(&market, "market", "m", "BTC-PERP", "Market name (e.g., BTC-PERP)")
	rootCmd.Flags().StringVarP(&proxyAddr, "proxy", "p", "", "SOCKS5 proxy host:port")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runWatchMarket(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().Timestamp().Logger()

	session, err := ws.Connect(ctx, ws.Config{
		ProxyAddr: proxyAddr,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	channels := []ws.Channel{
		ws.TradesChannel(market),
		ws.OrderbookChannel(market),
	}
	if err := session.Subscribe(ctx, channels); err != nil {
		return err
	}

	logger.Info().Str("market", market).Msg("watching market")

	book := orderbook.New(market)

	for {
		event, err := session.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Msg("stopping")
				return nil
			}
			return err
		}

		switch ev := event.(type) {
		case events.TradeEvent:
			printTrade(logger, ev.Trade)
		case events.OrderbookEvent:
			if err := book.Apply(ev.Delta); err != nil {
				logger.Warn().Err(err).Msg("failed to apply orderbook delta")
				continue
			}
			if !book.Verify(ev.Delta.Checksum) {
				logger.Warn().Str("market", market).Msg("orderbook checksum mismatch")
				continue
			}
			printTopOfBook(logger, book)
		}
	}
}

func printTrade(logger zerolog.Logger, trade *entities.Trade) {
	logger.Info().
		Int64("id", trade.ID).
		Str("side", string(trade.Side)).
		Str("price", trade.Price.String()).
		Str("size", trade.Size.String()).
		Bool("liquidation", trade.Liquidation).
		Time("time", trade.Time).
		Msg("trade")
}

func printTopOfBook(logger zerolog.Logger, book *orderbook.Book) {
	bid, haveBid := book.BestBid()
	ask, haveAsk := book.BestAsk()
	if !haveBid || !haveAsk {
		return
	}

	mid := bid.Price.Add(ask.Price).Div(two)

	logger.Info().
		Str("bid", bid.Price.String()).
		Str("ask", ask.Price.String()).
		Str("mid", mid.String()).
		Msg("top of book")
}
