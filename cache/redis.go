package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ternarybob/arbor"

	"country-bonds/logging"
)

const (
	// PriceChannel is the pub/sub channel price changes are published on.
	PriceChannel = "country-bonds:prices"

	keyPrefix   = "country-bonds:"
	dialTimeout = 5 * time.Second
)

// ErrUnavailable is returned by every RedisClient method when no server is
// connected.
var ErrUnavailable = errors.New("redis unavailable")

// RedisClient is an optional Redis connection. A nil *RedisClient is valid
// and reports ErrUnavailable, so callers can fall back without nil checks.
type RedisClient struct {
	client *redis.Client
	logger arbor.ILogger
}

// NewRedisClient connects to addr. It returns nil when the server does not
// answer a ping.
func NewRedisClient(addr, password string, logger arbor.ILogger) *RedisClient {
	logger = logging.OrDefault(logger)
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, continuing without it")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return &RedisClient{client: client, logger: logger}
}

func (r *RedisClient) available() bool {
	return r != nil && r.client != nil
}

// SetNX stores value under the namespaced key only if it is absent and
// reports whether it was stored.
func (r *RedisClient) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	if !r.available() {
		return false, ErrUnavailable
	}
	b, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return r.client.SetNX(ctx, keyPrefix+key, b, ttl).Result()
}

// Delete removes the namespaced key.
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	if !r.available() {
		return ErrUnavailable
	}
	return r.client.Del(ctx, keyPrefix+key).Err()
}

// Publish sends message as JSON on channel.
func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	if !r.available() {
		return ErrUnavailable
	}
	b, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, b).Err()
}

func (r *RedisClient) Close() error {
	if !r.available() {
		return nil
	}
	return r.client.Close()
}
