package database

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultNewsRetention bounds the in-memory news log when no limit is given.
const DefaultNewsRetention = 500

// MemoryStore keeps countries and news in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	countries map[string]Country
	news      []NewsItem // oldest first
	retention int
}

// NewMemoryStore creates an empty store keeping at most retention news items.
func NewMemoryStore(retention int) *MemoryStore {
	if retention <= 0 {
		retention = DefaultNewsRetention
	}
	return &MemoryStore{
		countries: make(map[string]Country),
		retention: retention,
	}
}

func (m *MemoryStore) GetAllCountries(ctx context.Context) ([]Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]Country, 0, len(m.countries))
	for _, c := range m.countries {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (m *MemoryStore) GetCountryByCode(ctx context.Context, code string) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.countries[code]
	if !ok {
		return nil, NewNotFoundError("country", code)
	}
	return &c, nil
}

func (m *MemoryStore) UpdateCountry(ctx context.Context, code string, update CountryUpdate) (*Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapStoreError("UpdateCountry", err)
	}
	code = strings.ToUpper(strings.TrimSpace(code))

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.countries[code]
	if !ok {
		return nil, NewNotFoundError("country", code)
	}
	update.apply(&c)
	c.UpdatedAt = time.Now()
	m.countries[code] = c
	return &c, nil
}

// GetLatestNews returns up to limit items, newest first.
func (m *MemoryStore) GetLatestNews(ctx context.Context, limit int) ([]NewsItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.news) {
		limit = len(m.news)
	}
	out := make([]NewsItem, 0, limit)
	for i := len(m.news) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.news[i])
	}
	return out, nil
}

func (m *MemoryStore) AddNewsItem(ctx context.Context, item *NewsItem) error {
	if item == nil {
		return NewValidationError("item", "must not be nil")
	}
	if err := ctx.Err(); err != nil {
		return WrapStoreError("AddNewsItem", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.news = append(m.news, *item)
	if over := len(m.news) - m.retention; over > 0 {
		m.news = append([]NewsItem(nil), m.news[over:]...)
	}
	return nil
}

// SeedCountries inserts countries that are not already present.
func (m *MemoryStore) SeedCountries(ctx context.Context, list []Country) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range list {
		if _, ok := m.countries[c.Code]; ok {
			continue
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = time.Now()
		}
		m.countries[c.Code] = c
	}
	return nil
}
