package database

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the persistence collaborator used by the price pipeline, the
// trading service and the HTTP API.
type Store interface {
	GetAllCountries(ctx context.Context) ([]Country, error)
	GetCountryByCode(ctx context.Context, code string) (*Country, error)
	UpdateCountry(ctx context.Context, code string, update CountryUpdate) (*Country, error)
	GetLatestNews(ctx context.Context, limit int) ([]NewsItem, error)
	AddNewsItem(ctx context.Context, item *NewsItem) error
	SeedCountries(ctx context.Context, list []Country) error
}

// CountryUpdate is a partial update. Nil fields are left unchanged.
type CountryUpdate struct {
	CurrentPrice    *decimal.Decimal
	PreviousPrice   *decimal.Decimal
	AvailableShares *int64
	IsPreSale       *bool
	PreSaleProgress *float64
}

// PriceUpdate builds the update written after a price move.
func PriceUpdate(previous, current decimal.Decimal) CountryUpdate {
	return CountryUpdate{CurrentPrice: &current, PreviousPrice: &previous}
}

// Empty reports whether the update carries no fields.
func (u CountryUpdate) Empty() bool {
	return u.CurrentPrice == nil && u.PreviousPrice == nil && u.AvailableShares == nil &&
		u.IsPreSale == nil && u.PreSaleProgress == nil
}

func (u CountryUpdate) apply(c *Country) {
	if u.CurrentPrice != nil {
		c.CurrentPrice = *u.CurrentPrice
	}
	if u.PreviousPrice != nil {
		c.PreviousPrice = *u.PreviousPrice
	}
	if u.AvailableShares != nil {
		c.AvailableShares = *u.AvailableShares
	}
	if u.IsPreSale != nil {
		c.IsPreSale = *u.IsPreSale
	}
	if u.PreSaleProgress != nil {
		c.PreSaleProgress = *u.PreSaleProgress
	}
}

func (u CountryUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.CurrentPrice != nil {
		cols["current_price"] = *u.CurrentPrice
	}
	if u.PreviousPrice != nil {
		cols["previous_price"] = *u.PreviousPrice
	}
	if u.AvailableShares != nil {
		cols["available_shares"] = *u.AvailableShares
	}
	if u.IsPreSale != nil {
		cols["is_pre_sale"] = *u.IsPreSale
	}
	if u.PreSaleProgress != nil {
		cols["pre_sale_progress"] = *u.PreSaleProgress
	}
	return cols
}
