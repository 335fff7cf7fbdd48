package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewsKey(t *testing.T) {
	a := NewsKey("https://example.com/x", "Title")
	b := NewsKey("https://example.com/x", "Other title")
	assert.Equal(t, a, b, "link takes precedence")

	c := NewsKey("", "Peace  Deal Signed")
	d := NewsKey("", "peace deal signed")
	assert.Equal(t, c, d)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "news:seen:")
}

func TestNewsDeduper_LocalFallback(t *testing.T) {
	ctx := context.Background()
	d := NewNewsDeduper(nil, time.Hour)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	assert.True(t, d.MarkSeen(ctx, "k"))
	assert.False(t, d.MarkSeen(ctx, "k"))

	now = now.Add(2 * time.Hour)
	assert.True(t, d.MarkSeen(ctx, "k"), "expired keys are new again")

	d.Forget(ctx, "k")
	assert.True(t, d.MarkSeen(ctx, "k"))
}

func TestNewsDeduper_BoundedLocalMap(t *testing.T) {
	ctx := context.Background()
	d := NewNewsDeduper(nil, time.Hour)
	for i := 0; i < maxLocalKeys+50; i++ {
		d.MarkSeen(ctx, NewsKey("", string(rune(i))+"x"))
	}
	assert.LessOrEqual(t, len(d.seen), maxLocalKeys)
}

func TestNilRedisClientIsSafe(t *testing.T) {
	ctx := context.Background()
	var r *RedisClient

	assert.ErrorIs(t, r.Publish(ctx, PriceChannel, "x"), ErrUnavailable)
	assert.ErrorIs(t, r.Delete(ctx, "k"), ErrUnavailable)
	assert.NoError(t, r.Close())

	_, err := r.SetNX(ctx, "k", 1, time.Second)
	assert.ErrorIs(t, err, ErrUnavailable)
}
