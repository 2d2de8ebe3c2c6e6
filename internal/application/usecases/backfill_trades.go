package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ftxgo/internal/domain/repositories"
	"ftxgo/internal/domain/services"
)

type BackfillTradesUseCase struct {
	tradeRepository repositories.TradeRepository
	historicalData  services.HistoricalDataService
	logger          zerolog.Logger
	pageSize        int
	rateLimitDelay  time.Duration
}

func NewBackfillTradesUseCase(
	tradeRepository repositories.TradeRepository,
	historicalData services.HistoricalDataService,
	logger zerolog.Logger,
) *BackfillTradesUseCase {
	return &BackfillTradesUseCase{
		tradeRepository: tradeRepository,
		historicalData:  historicalData,
		logger:          logger,
		pageSize:        100, // the trades endpoint caps a page at 100 records
		rateLimitDelay:  100 * time.Millisecond,
	}
}

// Execute collects trade history for a market going back the given number of
// days, paging backwards in time from the newest gap in stored data.
func (uc *BackfillTradesUseCase) Execute(ctx context.Context, market string, days int) error {
	targetTime := time.Now().AddDate(0, 0, -days)

	uc.logger.Info().
		Str("market", market).
		Int("days", days).
		Time("target_time", targetTime).
		Msg("starting historical trades collection")

	oldestStored, err := uc.tradeRepository.GetOldestTradeTime(ctx, market)
	if err != nil {
		return fmt.Errorf("failed to check existing trades: %w", err)
	}

	end := time.Now()
	if oldestStored != nil {
		uc.logger.Info().Time("oldest_trade_time", *oldestStored).Msg("found existing trades")

		if !oldestStored.After(targetTime) {
			uc.logger.Info().Msg("already have sufficient trade history")
			return nil
		}
		// Continue the backfill from just before the oldest stored trade.
		end = *oldestStored
	}

	totalFetched := 0
	pageCount := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		trades, err := uc.historicalData.GetTrades(ctx, market, uc.pageSize, targetTime, end)
		if err != nil {
			return fmt.Errorf("failed to fetch historical trades: %w", err)
		}

		if len(trades) == 0 {
			uc.logger.Info().Msg("no more trades available")
			break
		}

		oldestFetched := trades[0].Time
		batch := make([]repositories.MarketTrade, 0, len(trades))
		for _, trade := range trades {
			if trade.Time.Before(oldestFetched) {
				oldestFetched = trade.Time
			}
			batch = append(batch, repositories.MarketTrade{Market: market, Trade: trade})
		}

		if err := uc.tradeRepository.SaveBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to save trades batch: %w", err)
		}

		totalFetched += len(trades)
		pageCount++

		uc.logger.Info().
			Int("page", pageCount).
			Int("trades_in_page", len(trades)).
			Int("total_fetched", totalFetched).
			Time("oldest_in_page", oldestFetched).
			Msg("saved trades page")

		if !oldestFetched.After(targetTime) {
			uc.logger.Info().Time("oldest_fetched", oldestFetched).Msg("reached target time")
			break
		}

		// Fewer trades than a full page means the window is exhausted.
		if len(trades) < uc.pageSize {
			uc.logger.Info().Msg("reached end of available trades")
			break
		}

		// Page backwards: the next window ends where this one began.
		end = oldestFetched

		time.Sleep(uc.rateLimitDelay)
	}

	uc.logger.Info().
		Str("market", market).
		Int("total_fetched", totalFetched).
		Int("pages", pageCount).
		Msg("historical trades collection completed")

	return nil
}
