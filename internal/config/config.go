package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("GUARDIAN_API_KEY is required")
	ErrMissingDB     = errors.New("DATABASE_URL is required")
	ErrNoQueries     = errors.New("ARCHIVE_QUERIES is required")
)

type Config struct {
	Guardian GuardianConfig
	Database DatabaseConfig
	Telegram TelegramConfig
	Archive  ArchiveConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

type GuardianConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	URL string
}

// TelegramConfig is optional; the digest notifier is disabled when the
// token or chat id is empty.
type TelegramConfig struct {
	Token  string
	ChatID int64
}

type ArchiveConfig struct {
	Queries  []string
	Section  string
	PageSize int
	Pages    int
	Interval time.Duration
}

type MetricsConfig struct {
	Addr string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Guardian: GuardianConfig{
			APIKey:  os.Getenv("GUARDIAN_API_KEY"),
			BaseURL: os.Getenv("GUARDIAN_BASE_URL"),
			Timeout: time.Duration(getEnvIntOrDefault("GUARDIAN_TIMEOUT_SEC", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID: getEnvInt64OrDefault("TELEGRAM_CHAT_ID", 0),
		},
		Archive: ArchiveConfig{
			Queries:  splitList(os.Getenv("ARCHIVE_QUERIES")),
			Section:  os.Getenv("ARCHIVE_SECTION"),
			PageSize: getEnvIntOrDefault("ARCHIVE_PAGE_SIZE", 50),
			Pages:    getEnvIntOrDefault("ARCHIVE_PAGES", 1),
			Interval: time.Duration(getEnvIntOrDefault("ARCHIVE_INTERVAL_MIN", 30)) * time.Minute,
		},
		Metrics: MetricsConfig{
			Addr: getEnvOrDefault("METRICS_ADDR", ":9090"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Guardian.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Database.URL == "" {
		return ErrMissingDB
	}
	if len(c.Archive.Queries) == 0 {
		return ErrNoQueries
	}
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
