package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultSeenTTL is how long an ingested headline is remembered.
	DefaultSeenTTL = 72 * time.Hour
	maxLocalKeys   = 10000
)

// NewsKey returns a stable key for a headline, preferring its link.
func NewsKey(link, title string) string {
	basis := strings.TrimSpace(link)
	if basis == "" {
		basis = strings.ToLower(strings.Join(strings.Fields(title), " "))
	}
	return fmt.Sprintf("news:seen:%x", md5.Sum([]byte(basis)))
}

// NewsDeduper remembers which headlines were already ingested. It uses Redis
// when available and a local map otherwise, or when a Redis call fails.
type NewsDeduper struct {
	redis *RedisClient
	ttl   time.Duration

	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

// NewNewsDeduper creates a deduper. redis may be nil.
func NewNewsDeduper(redis *RedisClient, ttl time.Duration) *NewsDeduper {
	if ttl <= 0 {
		ttl = DefaultSeenTTL
	}
	return &NewsDeduper{
		redis: redis,
		ttl:   ttl,
		seen:  make(map[string]time.Time),
		now:   time.Now,
	}
}

// MarkSeen records key and reports whether it is new.
func (d *NewsDeduper) MarkSeen(ctx context.Context, key string) bool {
	if d.redis != nil {
		if set, err := d.redis.SetNX(ctx, key, d.now().Unix(), d.ttl); err == nil {
			return set
		}
	}
	return d.markLocal(key)
}

// Forget drops key so the headline can be ingested again.
func (d *NewsDeduper) Forget(ctx context.Context, key string) {
	if d.redis != nil {
		_ = d.redis.Delete(ctx, key)
	}
	d.mu.Lock()
	delete(d.seen, key)
	d.mu.Unlock()
}

func (d *NewsDeduper) markLocal(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if at, ok := d.seen[key]; ok && now.Sub(at) < d.ttl {
		return false
	}
	if len(d.seen) >= maxLocalKeys {
		d.evictLocked(now)
	}
	d.seen[key] = now
	return true
}

// evictLocked drops expired keys, then the oldest ones if still full.
func (d *NewsDeduper) evictLocked(now time.Time) {
	for k, at := range d.seen {
		if now.Sub(at) >= d.ttl {
			delete(d.seen, k)
		}
	}
	for len(d.seen) >= maxLocalKeys {
		var oldestKey string
		var oldest time.Time
		for k, at := range d.seen {
			if oldestKey == "" || at.Before(oldest) {
				oldestKey, oldest = k, at
			}
		}
		delete(d.seen, oldestKey)
	}
}
