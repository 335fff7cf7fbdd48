package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"country-bonds/countries"
	"country-bonds/database"
	"country-bonds/history"
)

// SeedList builds the initial instrument for every known country.
func SeedList(seedPrice float64, totalShares int64) []database.Country {
	price := decimal.NewFromFloat(seedPrice)
	list := make([]database.Country, 0, countries.Count())
	for _, c := range countries.All() {
		list = append(list, database.Country{
			Code:            c.Code,
			Name:            c.Name,
			CurrentPrice:    price,
			PreviousPrice:   price,
			AvailableShares: totalShares,
			TotalShares:     totalShares,
			IsPreSale:       true,
		})
	}
	return list
}

// InitializeMarket seeds the store, gives every country a positive price and
// backfills a history series for each one, with today's bucket reconciled
// to the stored price. It returns the number of countries initialized.
func InitializeMarket(ctx context.Context, store database.Store, hist *history.Store, seedPrice float64, totalShares int64, days int) (int, error) {
	if err := store.SeedCountries(ctx, SeedList(seedPrice, totalShares)); err != nil {
		return 0, fmt.Errorf("seed countries: %w", err)
	}

	all, err := store.GetAllCountries(ctx)
	if err != nil {
		return 0, fmt.Errorf("load countries: %w", err)
	}

	seed := decimal.NewFromFloat(seedPrice)
	for _, c := range all {
		if !c.CurrentPrice.IsPositive() {
			updated, err := store.UpdateCountry(ctx, c.Code, database.PriceUpdate(c.CurrentPrice, seed))
			if err != nil {
				return 0, fmt.Errorf("seed price for %s: %w", c.Code, err)
			}
			c = *updated
		}

		if hist.Len(c.Code) == 0 {
			hist.Save(c.Code, hist.Generate(c.Code, days))
		}
		hist.Append(c.Code, c.Price())
	}
	return len(all), nil
}
