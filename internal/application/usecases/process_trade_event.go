package usecases

import (
	"context"

	"github.com/rs/zerolog"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/repositories"
	"ftxgo/internal/infrastructure/clickhouse"
)

type ProcessTradeEventUseCase struct {
	batchProcessor *clickhouse.TradeBatchProcessor
	logger         zerolog.Logger
}

func NewProcessTradeEventUseCase(
	batchProcessor *clickhouse.TradeBatchProcessor,
	logger zerolog.Logger,
) *ProcessTradeEventUseCase {
	return &ProcessTradeEventUseCase{
		batchProcessor: batchProcessor,
		logger:         logger,
	}
}

func (uc *ProcessTradeEventUseCase) Execute(ctx context.Context, market string, trade *entities.Trade) error {
	return uc.batchProcessor.Add(repositories.MarketTrade{Market: market, Trade: trade})
}
