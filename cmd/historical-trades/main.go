package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"ftxgo/internal/infrastructure/container"
)

var (
	market string
	days   int
)

var rootCmd = &cobra.Command{
	Use:   "historical-trades",
	Short: "Fetch historical trades for a specific market",
	Long: `This tool fetches historical trade data from the exchange for a specific
market. It checks existing data in the database and only fetches older trades
as needed.`,
	RunE: runHistoricalTrades,
}

func init() {
	rootCmd.Flags().StringVarP(&market, "market", "m", "", "Market name (e.g., BTC-PERP)")
	rootCmd.Flags().IntVarP(&days, "days", "d", 7, "Number of days of historical data to fetch")

	rootCmd.MarkFlagRequired("market")
}

func runHistoricalTrades(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	c, err := container.New(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	market = strings.ToUpper(market)

	c.Logger.Info().Str("market", market).Int("days", days).Msg("starting historical trades collection")

	if err := c.BackfillTradesUseCase.Execute(ctx, market, days); err != nil {
		c.Logger.Error().Err(err).Msg("failed to fetch historical trades")
		return err
	}

	c.Logger.Info().Msg("historical trades collection completed successfully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
