package container

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/rs/zerolog"

	appservices "ftxgo/internal/application/services"
	"ftxgo/internal/application/usecases"
	"ftxgo/internal/domain/repositories"
	"ftxgo/internal/ftx/rest"
	"ftxgo/internal/ftx/ws"
	"ftxgo/internal/infrastructure/clickhouse"
	"ftxgo/internal/infrastructure/config"
)

type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Repositories
	TradeRepository repositories.TradeRepository

	// Batch Processors
	TradeBatchProcessor *clickhouse.TradeBatchProcessor

	// Use Cases
	ProcessTradeUseCase       *usecases.ProcessTradeEventUseCase
	SubscribeToMarketsUseCase *usecases.SubscribeToMarketsUseCase
	BackfillTradesUseCase     *usecases.BackfillTradesUseCase

	// Services
	RestClient   *rest.Client
	Stream       *ws.Session
	EventHandler *appservices.EventHandler

	// Infrastructure
	DB *sql.DB
}

func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	c.Logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if err := c.setupDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	c.TradeRepository = clickhouse.NewTradeRepository(c.DB)

	flushTimeout := time.Duration(cfg.App.BatchFlushTimeoutMs) * time.Millisecond
	c.TradeBatchProcessor = clickhouse.NewTradeBatchProcessor(
		c.TradeRepository,
		c.Logger,
		cfg.App.BatchSize,
		flushTimeout,
	)

	c.RestClient = rest.New(rest.Config{
		Endpoint:   cfg.FTX.RestEndpoint,
		Key:        cfg.FTX.Key,
		Secret:     cfg.FTX.Secret,
		Subaccount: cfg.FTX.Subaccount,
	})

	c.setupUseCases()
	c.EventHandler = appservices.NewEventHandler(c.ProcessTradeUseCase, c.Logger)

	return c, nil
}

// ConnectStream opens the websocket session. Kept separate from New so that
// REST-only commands do not touch the exchange feed.
func (c *Container) ConnectStream(ctx context.Context) error {
	session, err := ws.Connect(ctx, ws.Config{
		Endpoint:          c.Config.FTX.WSEndpoint,
		Key:               c.Config.FTX.Key,
		Secret:            c.Config.FTX.Secret,
		Subaccount:        c.Config.FTX.Subaccount,
		ProxyAddr:         c.Config.FTX.ProxyAddr,
		KeepaliveInterval: time.Duration(c.Config.FTX.KeepaliveIntervalMs) * time.Millisecond,
		ConfirmationBound: c.Config.FTX.ConfirmationBound,
		Logger:            c.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect stream: %w", err)
	}

	c.Stream = session
	c.SubscribeToMarketsUseCase = usecases.NewSubscribeToMarketsUseCase(session, c.Logger)

	return nil
}

func (c *Container) setupDatabase(ctx context.Context) error {
	dsn := fmt.Sprintf("clickhouse://%s:%s@%s:%d/%s?debug=%t",
		c.Config.ClickHouse.Username,
		c.Config.ClickHouse.Password,
		c.Config.ClickHouse.Host,
		c.Config.ClickHouse.Port,
		c.Config.ClickHouse.Database,
		c.Config.ClickHouse.Debug,
	)

	db, err := sql.Open("clickhouse", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.DB = db

	migrator := clickhouse.NewMigrator(db, c.Logger)
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (c *Container) setupUseCases() {
	c.ProcessTradeUseCase = usecases.NewProcessTradeEventUseCase(
		c.TradeBatchProcessor,
		c.Logger,
	)

	c.BackfillTradesUseCase = usecases.NewBackfillTradesUseCase(
		c.TradeRepository,
		c.RestClient,
		c.Logger,
	)
}

func (c *Container) Close() error {
	// Close batch processors first to flush remaining data.
	if c.TradeBatchProcessor != nil {
		if err := c.TradeBatchProcessor.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("failed to close trade batch processor")
		}
	}

	if c.Stream != nil {
		if err := c.Stream.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("failed to close stream")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("failed to close database")
		}
	}

	return nil
}
