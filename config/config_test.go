package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "@every 2m", cfg.Scheduler.FetchSchedule)
	assert.Equal(t, "@every 30s", cfg.Scheduler.ReplaySchedule)
	assert.Equal(t, 15*time.Second, cfg.Scheduler.FetchTimeout)
	assert.Equal(t, 30, cfg.Market.HistoryDays)
	assert.Equal(t, 0.05, cfg.Market.PriceFloor)
	assert.Equal(t, DefaultFeeds, cfg.Feeds)
	assert.Empty(t, cfg.Webhooks.URLs)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPLAY_MAX_ITEMS", "5")
	t.Setenv("WEBHOOK_URLS", "https://a.example/hook, https://b.example/hook")
	t.Setenv("PRICE_FLOOR", "0.1")
	t.Setenv("HISTORY_DAYS", "not-a-number")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 5, cfg.Scheduler.ReplayMaxItems)
	assert.Equal(t, []string{"https://a.example/hook", "https://b.example/hook"}, cfg.Webhooks.URLs)
	assert.Equal(t, 0.1, cfg.Market.PriceFloor)
	assert.Equal(t, 30, cfg.Market.HistoryDays)
}

func TestLoadFromEnv_FeedsFile(t *testing.T) {
	dir := chdirTemp(t)
	content := `
[[feeds]]
name = "Local"
url = "http://localhost:9999/rss"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feeds.toml"), []byte(content), 0o644))

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []FeedSource{{Name: "Local", URL: "http://localhost:9999/rss"}}, cfg.Feeds)
}

func TestLoadFromEnv_BadFeedsFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feeds.toml"), []byte("[[feeds]\n"), 0o644))

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mongo"}},
		{"replay range inverted", map[string]string{"REPLAY_MIN_ITEMS": "4", "REPLAY_MAX_ITEMS": "2"}},
		{"seed below floor", map[string]string{"SEED_PRICE": "0.01"}},
		{"bad webhook url", map[string]string{"WEBHOOK_URLS": "not a url"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "cache", Port: "6380"}}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
