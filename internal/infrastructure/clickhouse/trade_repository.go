package clickhouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ftxgo/internal/domain/repositories"
)

type TradeRepository struct {
	db *sql.DB
}

func NewTradeRepository(db *sql.DB) repositories.TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) SaveBatch(ctx context.Context, trades []repositories.MarketTrade) error {
	if len(trades) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	batch, err := tx.Prepare(`
		INSERT INTO trades (
			id, market, price, size, side, liquidation, trade_time
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}
	defer batch.Close()

	for _, trade := range trades {
		_, err := batch.Exec(
			trade.Trade.ID,
			trade.Market,
			trade.Trade.Price.InexactFloat64(),
			trade.Trade.Size.InexactFloat64(),
			string(trade.Trade.Side),
			trade.Trade.Liquidation,
			trade.Trade.Time,
		)
		if err != nil {
			return fmt.Errorf("failed to add trade %d to batch: %w", trade.Trade.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (r *TradeRepository) GetOldestTradeTime(ctx context.Context, market string) (*time.Time, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trades WHERE market = ?`, market,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count trades: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	var oldest time.Time
	if err := r.db.QueryRowContext(ctx,
		`SELECT MIN(trade_time) FROM trades WHERE market = ?`, market,
	).Scan(&oldest); err != nil {
		return nil, fmt.Errorf("failed to get oldest trade time: %w", err)
	}

	return &oldest, nil
}
