// Package trading executes simulated buy and sell orders against country
// instruments. Trades move the same price fields as the news pipeline with
// no coordination between the two; the last write wins.
package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ternarybob/arbor"

	"country-bonds/database"
	"country-bonds/logging"
	"country-bonds/pricing"
)

// ImpactFactor scales the percent of supply traded into a price move.
const ImpactFactor = 0.5

var (
	ErrInvalidQuantity    = errors.New("share quantity must be positive")
	ErrInsufficientShares = errors.New("not enough shares available")
)

// Side of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Trade is an executed order.
type Trade struct {
	ID          string    `json:"id"`
	CountryCode string    `json:"countryCode"`
	Side        Side      `json:"side"`
	Shares      int64     `json:"shares"`
	Price       float64   `json:"price"`
	Total       float64   `json:"total"`
	ExecutedAt  time.Time `json:"executedAt"`

	Change pricing.PriceChange `json:"change"`
}

// Service executes trades through a store.
type Service struct {
	store  database.Store
	floor  decimal.Decimal
	now    func() time.Time
	logger arbor.ILogger
}

// NewService creates a trading service. Prices never fall below floor.
func NewService(store database.Store, floor float64, logger arbor.ILogger) *Service {
	if floor <= 0 {
		floor = pricing.DefaultFloor
	}
	return &Service{
		store:  store,
		floor:  decimal.NewFromFloat(floor),
		now:    time.Now,
		logger: logging.OrDefault(logger),
	}
}

// Buy takes shares out of the available supply and pushes the price up.
func (s *Service) Buy(ctx context.Context, countryCode string, shares int64) (*Trade, error) {
	return s.execute(ctx, countryCode, SideBuy, shares)
}

// Sell returns shares to the available supply and pushes the price down.
func (s *Service) Sell(ctx context.Context, countryCode string, shares int64) (*Trade, error) {
	return s.execute(ctx, countryCode, SideSell, shares)
}

func (s *Service) execute(ctx context.Context, countryCode string, side Side, shares int64) (*Trade, error) {
	if shares <= 0 {
		return nil, ErrInvalidQuantity
	}

	country, err := s.store.GetCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	available := country.AvailableShares
	switch side {
	case SideBuy:
		if available < shares {
			return nil, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientShares, shares, available)
		}
		available -= shares
	case SideSell:
		available += shares
		if country.TotalShares > 0 && available > country.TotalShares {
			return nil, fmt.Errorf("%w: cannot return more than %d shares", ErrInvalidQuantity, country.TotalShares-country.AvailableShares)
		}
	}

	previous := country.CurrentPrice
	next := previous.Mul(decimal.NewFromFloat(1 + s.movePercent(country.TotalShares, shares, side)/100)).Round(4)
	if next.LessThan(s.floor) {
		next = s.floor
	}

	progress := 0.0
	if country.TotalShares > 0 {
		progress = float64(country.TotalShares-available) / float64(country.TotalShares) * 100
	}
	preSale := country.IsPreSale && progress < 100

	update := database.PriceUpdate(previous, next)
	update.AvailableShares = &available
	update.PreSaleProgress = &progress
	update.IsPreSale = &preSale
	if _, err := s.store.UpdateCountry(ctx, country.Code, update); err != nil {
		return nil, fmt.Errorf("execute %s %s: %w", side, country.Code, err)
	}

	// Trades fill at the pre-move price.
	fill, _ := previous.Float64()
	total, _ := previous.Mul(decimal.NewFromInt(shares)).Round(4).Float64()
	trade := &Trade{
		ID:          uuid.NewString(),
		CountryCode: country.Code,
		Side:        side,
		Shares:      shares,
		Price:       fill,
		Total:       total,
		ExecutedAt:  s.now().UTC(),
		Change:      pricing.NewPriceChange(country.Code, previous, next),
	}

	s.logger.Info().
		Str("id", trade.ID).
		Str("side", string(side)).
		Str("country", trade.CountryCode).
		Int64("shares", shares).
		Str("price", next.StringFixed(4)).
		Msg("Trade executed")
	return trade, nil
}

func (s *Service) movePercent(totalShares, shares int64, side Side) float64 {
	if totalShares <= 0 {
		return 0
	}
	pct := float64(shares) / float64(totalShares) * 100 * ImpactFactor
	if side == SideSell {
		return -pct
	}
	return pct
}
