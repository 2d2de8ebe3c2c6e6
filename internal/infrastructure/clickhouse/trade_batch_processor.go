package clickhouse

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ftxgo/internal/domain/repositories"
)

// TradeBatchProcessor buffers streamed trades and flushes them to the
// repository when the batch fills or the flush timeout elapses, whichever
// comes first.
type TradeBatchProcessor struct {
	tradeRepo    repositories.TradeRepository
	logger       zerolog.Logger
	batchSize    int
	flushTimeout time.Duration
	trades       []repositories.MarketTrade
	mu           sync.Mutex
	flushTimer   *time.Timer
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func NewTradeBatchProcessor(
	tradeRepo repositories.TradeRepository,
	logger zerolog.Logger,
	batchSize int,
	flushTimeout time.Duration,
) *TradeBatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	processor := &TradeBatchProcessor{
		tradeRepo:    tradeRepo,
		logger:       logger,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		trades:       make([]repositories.MarketTrade, 0, batchSize),
		ctx:          ctx,
		cancel:       cancel,
	}

	processor.flushTimer = time.NewTimer(flushTimeout)
	processor.flushTimer.Stop() // armed by the first trade of a batch

	processor.wg.Add(1)
	go processor.flushRoutine()

	return processor
}

func (p *TradeBatchProcessor) Add(trade repositories.MarketTrade) error {
	if err := trade.Trade.Validate(); err != nil {
		p.logger.Error().Err(err).Int64("trade_id", trade.Trade.ID).Msg("invalid trade data")
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.trades = append(p.trades, trade)

	if len(p.trades) == 1 {
		p.flushTimer.Reset(p.flushTimeout)
	}

	if len(p.trades) >= p.batchSize {
		p.flushBatch()
	}

	return nil
}

func (p *TradeBatchProcessor) flushRoutine() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			p.mu.Lock()
			p.flushBatch()
			p.mu.Unlock()
			return

		case <-p.flushTimer.C:
			p.mu.Lock()
			p.flushBatch()
			p.mu.Unlock()
		}
	}
}

// flushBatch is called with the mutex held. The database write happens on
// its own goroutine so inbound trades are not blocked behind it.
func (p *TradeBatchProcessor) flushBatch() {
	if len(p.trades) == 0 {
		return
	}

	batch := make([]repositories.MarketTrade, len(p.trades))
	copy(batch, p.trades)
	p.trades = p.trades[:0]
	p.flushTimer.Stop()

	go func(trades []repositories.MarketTrade) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := p.tradeRepo.SaveBatch(ctx, trades); err != nil {
			p.logger.Error().Err(err).Int("batch_size", len(trades)).Msg("failed to flush trade batch")
		} else {
			p.logger.Debug().Int("batch_size", len(trades)).Msg("trade batch flushed")
		}
	}(batch)
}

func (p *TradeBatchProcessor) Close() error {
	p.cancel()
	p.wg.Wait()

	if p.flushTimer != nil {
		p.flushTimer.Stop()
	}

	return nil
}
