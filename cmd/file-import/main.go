package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/repositories"
	"ftxgo/internal/infrastructure/container"
)

var (
	filePath string
	market   string
)

var rootCmd = &cobra.Command{
	Use:   "file-import",
	Short: "Import trade data from CSV files",
	Long: `This tool imports trade data from CSV files into the ClickHouse database.
It supports large files with streaming processing and batch saves.

CSV format expected:
ID,Price,Size,Side,Liquidation,Time (RFC3339)`,
	RunE: runFileImport,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the CSV file")
	rootCmd.Flags().StringVarP(&market, "market", "m", "", "Market the trades belong to (e.g., BTC-PERP)")

	rootCmd.MarkFlagRequired("file")
	rootCmd.MarkFlagRequired("market")
}

func runFileImport(cmd *cobra.Command, args []string) error {
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

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	c.Logger.Info().Str("file", filePath).Str("market", market).Msg("starting import")

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 6

	// Skip the header row.
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	imported := 0
	skipped := 0
	line := 1

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		line++

		trade, err := parseTrade(record)
		if err != nil {
			c.Logger.Warn().Err(err).Int("line", line).Msg("skipping malformed record")
			skipped++
			continue
		}

		if err := c.TradeBatchProcessor.Add(repositories.MarketTrade{Market: market, Trade: trade}); err != nil {
			c.Logger.Warn().Err(err).Int("line", line).Msg("skipping invalid trade")
			skipped++
			continue
		}
		imported++
	}

	// Close flushes the final partial batch.
	if err := c.TradeBatchProcessor.Close(); err != nil {
		return fmt.Errorf("failed to flush trades: %w", err)
	}

	c.Logger.Info().Int("imported", imported).Int("skipped", skipped).Msg("import completed")
	return nil
}

func parseTrade(record []string) (*entities.Trade, error) {
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	price, err := decimal.NewFromString(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[1], err)
	}

	size, err := decimal.NewFromString(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid size %q: %w", record[2], err)
	}

	side := entities.Side(strings.ToLower(record[3]))
	if !side.Valid() {
		return nil, fmt.Errorf("invalid side %q", record[3])
	}

	liquidation, err := strconv.ParseBool(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid liquidation flag %q: %w", record[4], err)
	}

	tradeTime, err := time.Parse(time.RFC3339, record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", record[5], err)
	}

	return entities.NewTrade(id, price, size, side, liquidation, tradeTime), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
