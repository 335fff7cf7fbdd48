// Package pricing applies news impact to country instrument prices.
package pricing

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ternarybob/arbor"

	"country-bonds/analyzer"
	"country-bonds/database"
	"country-bonds/logging"
)

const (
	// DefaultFloor is the lowest price an update may write.
	DefaultFloor = 0.05

	primaryMinPct    = 5.0
	primaryMaxPct    = 15.0
	primaryBoost     = 1.5
	secondaryDerate  = 0.2
	secondaryMinPct  = 1.0
	secondaryMaxPct  = 3.0
	secondaryEpsilon = 0.01
	pricePlaces      = 4
)

// Direction of a price move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// PriceChange records one written price move.
type PriceChange struct {
	CountryCode   string    `json:"countryCode"`
	PreviousPrice float64   `json:"previousPrice"`
	CurrentPrice  float64   `json:"currentPrice"`
	PercentChange float64   `json:"percentChange"`
	Direction     Direction `json:"direction"`
	Primary       bool      `json:"primary"`
}

// Updater turns impact scalars into stored price moves.
type Updater struct {
	store  database.Store
	calc   *analyzer.Calculator
	rnd    analyzer.RandomSource
	floor  decimal.Decimal
	logger arbor.ILogger
}

// Option configures an Updater.
type Option func(*Updater)

// WithRandom sets the source for the uniform percent multipliers and the
// calculator's noise.
func WithRandom(rnd analyzer.RandomSource) Option {
	return func(u *Updater) {
		u.rnd = rnd
		u.calc = analyzer.NewCalculator(rnd)
	}
}

// WithFloor overrides the minimum price.
func WithFloor(floor float64) Option {
	return func(u *Updater) { u.floor = decimal.NewFromFloat(floor) }
}

// WithLogger sets the logger.
func WithLogger(l arbor.ILogger) Option {
	return func(u *Updater) { u.logger = l }
}

// NewUpdater creates an Updater writing through store.
func NewUpdater(store database.Store, opts ...Option) *Updater {
	u := &Updater{
		store: store,
		rnd:   analyzer.DefaultRandom(),
		floor: decimal.NewFromFloat(DefaultFloor),
	}
	u.calc = analyzer.NewCalculator(u.rnd)
	for _, opt := range opts {
		opt(u)
	}
	u.logger = logging.OrDefault(u.logger)
	return u
}

// Floor returns the configured minimum price.
func (u *Updater) Floor() decimal.Decimal {
	return u.floor
}

// ApplyPrimary moves the detected country's price by
// impact * uniform(5,15) * 1.5 percent.
func (u *Updater) ApplyPrimary(ctx context.Context, countryCode string, impact float64) (*PriceChange, error) {
	pct := impact * analyzer.Uniform(u.rnd, primaryMinPct, primaryMaxPct) * primaryBoost
	change, err := u.move(ctx, countryCode, pct)
	if change != nil {
		change.Primary = true
	}
	return change, err
}

// ApplySecondary derates impact to 20% and moves the price by
// impact * uniform(1,3) percent. It returns nil without writing when the
// derated impact is below 0.01 in magnitude.
func (u *Updater) ApplySecondary(ctx context.Context, countryCode string, impact float64) (*PriceChange, error) {
	impact *= secondaryDerate
	if math.Abs(impact) < secondaryEpsilon {
		return nil, nil
	}
	pct := impact * analyzer.Uniform(u.rnd, secondaryMinPct, secondaryMaxPct)
	return u.move(ctx, countryCode, pct)
}

// ApplyNews runs one news item through the updater: the primary update for
// the detected country, if any, then a secondary update for every other
// country with an impact recomputed for that country. The first storage
// error stops the run and is returned with the changes written so far.
func (u *Updater) ApplyNews(ctx context.Context, primaryCode string, scores analyzer.CategoryScores) ([]PriceChange, error) {
	countries, err := u.store.GetAllCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("ApplyNews: %w", err)
	}

	var changes []PriceChange
	if primaryCode != "" {
		change, err := u.ApplyPrimary(ctx, primaryCode, u.calc.CalculateImpact(scores, primaryCode))
		if err != nil {
			return changes, fmt.Errorf("ApplyNews primary %s: %w", primaryCode, err)
		}
		changes = append(changes, *change)
	}

	for _, c := range countries {
		if c.Code == primaryCode {
			continue
		}
		change, err := u.ApplySecondary(ctx, c.Code, u.calc.CalculateImpact(scores, c.Code))
		if err != nil {
			return changes, fmt.Errorf("ApplyNews secondary %s: %w", c.Code, err)
		}
		if change != nil {
			changes = append(changes, *change)
		}
	}
	return changes, nil
}

func (u *Updater) move(ctx context.Context, countryCode string, pct float64) (*PriceChange, error) {
	country, err := u.store.GetCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	previous := country.CurrentPrice
	factor := decimal.NewFromFloat(1 + pct/100)
	next := previous.Mul(factor).Round(pricePlaces)
	if next.LessThan(u.floor) {
		next = u.floor
	}

	if _, err := u.store.UpdateCountry(ctx, country.Code, database.PriceUpdate(previous, next)); err != nil {
		return nil, err
	}

	change := NewPriceChange(country.Code, previous, next)
	u.logger.Debug().
		Str("country", change.CountryCode).
		Str("from", previous.StringFixed(pricePlaces)).
		Str("to", next.StringFixed(pricePlaces)).
		Str("pct", strconv.FormatFloat(change.PercentChange, 'f', 2, 64)).
		Msg("Price updated")
	return &change, nil
}

// NewPriceChange builds a change record for a move from previous to current.
func NewPriceChange(countryCode string, previous, current decimal.Decimal) PriceChange {
	prev, _ := previous.Float64()
	cur, _ := current.Float64()

	change := PriceChange{
		CountryCode:   countryCode,
		PreviousPrice: prev,
		CurrentPrice:  cur,
		Direction:     DirectionFlat,
	}
	if !previous.IsZero() {
		pct, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
		change.PercentChange = pct
	}
	switch current.Cmp(previous) {
	case 1:
		change.Direction = DirectionUp
	case -1:
		change.Direction = DirectionDown
	}
	return change
}
