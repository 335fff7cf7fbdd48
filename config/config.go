package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"country-bonds/logging"
)

// Config holds application configuration
type Config struct {
	HTTPPort int    `validate:"min=1,max=65535"`
	LogLevel string `validate:"oneof=trace debug info warn error"`

	Database  DatabaseConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
	Market    MarketConfig
	Webhooks  WebhookConfig

	FeedsFile string
	Feeds     []FeedSource `validate:"required,dive"`
}

// DatabaseConfig selects and configures the country/news store
type DatabaseConfig struct {
	Driver   string `validate:"oneof=memory postgres"`
	Host     string `validate:"required_if=Driver postgres"`
	Port     int    `validate:"min=1,max=65535"`
	Name     string `validate:"required_if=Driver postgres"`
	User     string
	Password string
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     string
	Password string
}

// SchedulerConfig holds the fetch and replay cadences
type SchedulerConfig struct {
	FetchSchedule   string `validate:"required"`
	ReplaySchedule  string `validate:"required"`
	ReplayMinItems  int    `validate:"min=1"`
	ReplayMaxItems  int    `validate:"gtefield=ReplayMinItems"`
	FetchTimeout    time.Duration
	MaxItemsPerFeed int `validate:"min=1"`
	FetchOnStartup  bool
}

// MarketConfig holds instrument defaults
type MarketConfig struct {
	HistoryDays   int     `validate:"min=1,max=3650"`
	PriceFloor    float64 `validate:"gt=0"`
	SeedPrice     float64 `validate:"gtfield=PriceFloor"`
	TotalShares   int64   `validate:"min=1"`
	NewsRetention int     `validate:"min=1"`
}

// WebhookConfig holds outgoing price alert settings
type WebhookConfig struct {
	URLs         []string `validate:"dive,url"`
	MinChangePct float64  `validate:"gte=0"`
	MaxPerMinute int      `validate:"min=1"`
}

// FeedSource is one RSS/Atom feed
type FeedSource struct {
	Name string `toml:"name" validate:"required"`
	URL  string `toml:"url" validate:"required,url"`
}

type feedsFile struct {
	Feeds []FeedSource `toml:"feeds"`
}

// DefaultFeeds are used when no feeds file is present
var DefaultFeeds = []FeedSource{
	{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
	{Name: "Guardian World", URL: "https://www.theguardian.com/world/rss"},
	{Name: "NYT World", URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml"},
	{Name: "DW", URL: "https://rss.dw.com/rdf/rss-en-world"},
}

// LoadFromEnv loads configuration from environment variables and the feeds
// file, then validates the result.
func LoadFromEnv() (*Config, error) {
	logger := logging.GetLogger()

	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		LogLevel: strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),

		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnvOrDefault("DB_DRIVER", "memory")),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnvOrDefault("DB_NAME", "country_bonds"),
			User:     getEnvOrDefault("DB_USER", "bonds"),
			Password: getEnvOrDefault("DB_PASSWORD", ""),
		},

		Redis: RedisConfig{
			Enabled:  getEnvOrDefault("REDIS_ENABLED", "false") == "true",
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
		},

		Scheduler: SchedulerConfig{
			FetchSchedule:   getEnvOrDefault("FETCH_SCHEDULE", "@every 2m"),
			ReplaySchedule:  getEnvOrDefault("REPLAY_SCHEDULE", "@every 30s"),
			ReplayMinItems:  getEnvInt("REPLAY_MIN_ITEMS", 1),
			ReplayMaxItems:  getEnvInt("REPLAY_MAX_ITEMS", 3),
			FetchTimeout:    time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxItemsPerFeed: getEnvInt("FEED_MAX_ITEMS", 20),
			FetchOnStartup:  getEnvOrDefault("FETCH_ON_STARTUP", "true") == "true",
		},

		Market: MarketConfig{
			HistoryDays:   getEnvInt("HISTORY_DAYS", 30),
			PriceFloor:    getEnvFloat("PRICE_FLOOR", 0.05),
			SeedPrice:     getEnvFloat("SEED_PRICE", 0.50),
			TotalShares:   int64(getEnvInt("TOTAL_SHARES", 1000000)),
			NewsRetention: getEnvInt("NEWS_RETENTION", 500),
		},

		Webhooks: WebhookConfig{
			URLs:         splitList(os.Getenv("WEBHOOK_URLS")),
			MinChangePct: getEnvFloat("WEBHOOK_MIN_CHANGE_PCT", 5.0),
			MaxPerMinute: getEnvInt("WEBHOOK_MAX_PER_MINUTE", 10),
		},

		FeedsFile: getEnvOrDefault("FEEDS_FILE", "feeds.toml"),
	}

	feeds, err := LoadFeeds(cfg.FeedsFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info().Str("file", cfg.FeedsFile).Msg("Feeds file not found, using default feeds")
		cfg.Feeds = append([]FeedSource(nil), DefaultFeeds...)
	case err != nil:
		return nil, err
	default:
		cfg.Feeds = feeds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFeeds reads a TOML file of [[feeds]] tables
func LoadFeeds(path string) ([]FeedSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f feedsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feeds file %s: %w", path, err)
	}
	return f.Feeds, nil
}

// Validate checks the configuration using validator tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RedisAddr returns host:port for the Redis client
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat gets environment variable as float64 or returns default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var floatValue float64
	if _, err := fmt.Sscanf(value, "%f", &floatValue); err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
