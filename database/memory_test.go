package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *MemoryStore {
	t.Helper()
	m := NewMemoryStore(3)
	require.NoError(t, m.SeedCountries(context.Background(), []Country{
		{Code: "US", Name: "United States", CurrentPrice: decimal.NewFromFloat(0.5), TotalShares: 100, AvailableShares: 100, IsPreSale: true},
		{Code: "DE", Name: "Germany", CurrentPrice: decimal.NewFromFloat(0.7), TotalShares: 100, AvailableShares: 100},
	}))
	return m
}

func TestMemoryStore_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := seeded(t)

	require.NoError(t, m.SeedCountries(ctx, []Country{{Code: "US", Name: "changed"}}))
	c, err := m.GetCountryByCode(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, "United States", c.Name)

	all, err := m.GetAllCountries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "DE", all[0].Code)
}

func TestMemoryStore_UpdateCountry(t *testing.T) {
	ctx := context.Background()
	m := seeded(t)

	prev := decimal.NewFromFloat(0.5)
	cur := decimal.NewFromFloat(0.55)
	shares := int64(90)
	c, err := m.UpdateCountry(ctx, "US", CountryUpdate{CurrentPrice: &cur, PreviousPrice: &prev, AvailableShares: &shares})
	require.NoError(t, err)
	assert.True(t, c.CurrentPrice.Equal(cur))
	assert.True(t, c.PreviousPrice.Equal(prev))
	assert.Equal(t, int64(90), c.AvailableShares)
	assert.True(t, c.IsPreSale, "untouched fields keep their value")

	got, _ := m.GetCountryByCode(ctx, "US")
	assert.Equal(t, *c, *got)
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	m := seeded(t)

	_, err := m.GetCountryByCode(ctx, "ZZ")
	assert.True(t, IsNotFound(err))

	_, err = m.UpdateCountry(ctx, "ZZ", PriceUpdate(decimal.Zero, decimal.NewFromInt(1)))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(WrapStoreError("op", err)))
}

func TestMemoryStore_NewsNewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(3)
	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, m.AddNewsItem(ctx, &NewsItem{ID: fmt.Sprint(i), Title: "t", Timestamp: base.Add(time.Duration(i) * time.Second)}))
	}

	all, err := m.GetLatestNews(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"4", "3", "2"}, []string{all[0].ID, all[1].ID, all[2].ID})

	two, _ := m.GetLatestNews(ctx, 2)
	assert.Len(t, two, 2)

	assert.Error(t, m.AddNewsItem(ctx, nil))
}

func TestNewsItemHelpers(t *testing.T) {
	code := "FR"
	n := NewsItem{Title: "Strike", Content: "in Paris", CountryCode: &code}
	assert.Equal(t, "Strike in Paris", n.Text())
	assert.Equal(t, "FR", n.Country())
	assert.Equal(t, "", NewsItem{Title: "x"}.Country())
	assert.Equal(t, "x", NewsItem{Title: "x"}.Text())
}

func TestConnectionParamsDSN(t *testing.T) {
	p := ConnectionParams{Host: "db", Port: 5432, Name: "bonds", User: "app", Password: "secret"}
	assert.Equal(t, "host=db port=5432 dbname=bonds user=app password=secret sslmode=disable", p.DSN())
}

func TestWrapStoreError(t *testing.T) {
	assert.Nil(t, WrapStoreError("op", nil))

	ve := NewValidationError("item", "must not be nil")
	assert.Same(t, ve, WrapStoreError("op", ve))

	err := WrapStoreError("GetLatestNews", context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "store GetLatestNews: context canceled", err.Error())
}
