package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	FTX        FTXConfig
	ClickHouse ClickHouseConfig
	App        AppConfig
}

type FTXConfig struct {
	Key          string
	Secret       string
	Subaccount   string
	WSEndpoint   string
	RestEndpoint string
	ProxyAddr    string // SOCKS5 host:port, empty means a direct connection

	KeepaliveIntervalMs int
	ConfirmationBound   int
}

type ClickHouseConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Debug    bool
}

type AppConfig struct {
	LogLevel            string
	Markets             []string
	BatchSize           int
	BatchFlushTimeoutMs int
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.FTX.Key = getEnv("FTX_API_KEY", "")
	cfg.FTX.Secret = getEnv("FTX_API_SECRET", "")
	cfg.FTX.Subaccount = getEnv("FTX_SUBACCOUNT", "")
	cfg.FTX.WSEndpoint = getEnv("FTX_WS_ENDPOINT", "wss://ftx.com/ws")
	cfg.FTX.RestEndpoint = getEnv("FTX_REST_ENDPOINT", "https://ftx.com/api")
	cfg.FTX.ProxyAddr = getEnv("FTX_SOCKS5_PROXY", "")
	cfg.FTX.KeepaliveIntervalMs = getEnvInt("FTX_KEEPALIVE_INTERVAL_MS", 15000)
	cfg.FTX.ConfirmationBound = getEnvInt("FTX_CONFIRMATION_BOUND", 100)

	cfg.ClickHouse.Host = getEnv("CLICKHOUSE_HOST", "localhost")
	cfg.ClickHouse.Port = getEnvInt("CLICKHOUSE_PORT", 9000)
	cfg.ClickHouse.Database = getEnv("CLICKHOUSE_DATABASE", "ftxgo")
	cfg.ClickHouse.Username = getEnv("CLICKHOUSE_USERNAME", "default")
	cfg.ClickHouse.Password = getEnv("CLICKHOUSE_PASSWORD", "")
	cfg.ClickHouse.Debug = getEnvBool("CLICKHOUSE_DEBUG", false)

	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.App.Markets = getEnvSlice("MARKETS", []string{"BTC-PERP"})
	cfg.App.BatchSize = getEnvInt("BATCH_SIZE", 10000)
	cfg.App.BatchFlushTimeoutMs = getEnvInt("BATCH_FLUSH_TIMEOUT_MS", 1000)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
