package clickhouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

type Migrator struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMigrator(db *sql.DB, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) Migrate(ctx context.Context) error {
	migrations := []struct {
		name  string
		query string
	}{
		{
			name: "create_trades_table",
			query: `
				CREATE TABLE IF NOT EXISTS trades (
					id Int64,
					market String,
					price Float64,
					size Float64,
					side LowCardinality(String),
					liquidation Bool,
					trade_time DateTime64(6),
					created_at DateTime64(3) DEFAULT now64(3)
				)
				ENGINE = MergeTree()
				PARTITION BY toYYYYMM(trade_time)
				ORDER BY (market, trade_time, id)
				SETTINGS index_granularity = 8192
			`,
		},
	}

	for _, migration := range migrations {
		m.logger.Info().Str("name", migration.name).Msg("running migration")
		if _, err := m.db.ExecContext(ctx, migration.query); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.name, err)
		}
	}

	m.logger.Info().Msg("all migrations completed")
	return nil
}
