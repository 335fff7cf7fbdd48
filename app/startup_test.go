package app

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-bonds/countries"
	"country-bonds/database"
	"country-bonds/history"
)

func TestSeedList(t *testing.T) {
	list := SeedList(0.5, 1000)
	require.Len(t, list, countries.Count())
	for _, c := range list {
		assert.True(t, c.CurrentPrice.Equal(decimal.NewFromFloat(0.5)), c.Code)
		assert.Equal(t, int64(1000), c.AvailableShares)
		assert.True(t, c.IsPreSale)
	}
}

func TestInitializeMarket(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore(10)
	hist := history.NewStore(history.WithRandom(rand.New(rand.NewPCG(7, 8))))

	n, err := InitializeMarket(ctx, store, hist, 0.5, 1000, 30)
	require.NoError(t, err)
	assert.Equal(t, countries.Count(), n)
	assert.Len(t, hist.Codes(), n)

	points, ok := hist.Get("US")
	require.True(t, ok)
	require.Len(t, points, 31)
	assert.Equal(t, 0.5, points[len(points)-1].Close)
}

func TestInitializeMarket_FixesNonPositivePrices(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore(10)
	require.NoError(t, store.SeedCountries(ctx, []database.Country{{Code: "NZ", Name: "New Zealand", TotalShares: 1000}}))
	hist := history.NewStore()

	_, err := InitializeMarket(ctx, store, hist, 0.5, 1000, 30)
	require.NoError(t, err)

	nz, err := store.GetCountryByCode(ctx, "NZ")
	require.NoError(t, err)
	assert.Equal(t, 0.5, nz.Price())
}

func TestInitializeMarket_KeepsExistingHistory(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore(10)
	hist := history.NewStore()
	hist.Append("DE", 0.61)

	_, err := InitializeMarket(ctx, store, hist, 0.5, 1000, 30)
	require.NoError(t, err)

	points, _ := hist.Get("DE")
	require.Len(t, points, 1)
	assert.Equal(t, 0.5, points[0].Close)
}
