// Package history keeps the synthetic daily OHLC series of every country
// instrument. Series live only in process memory: they are backfilled on
// demand and extended as prices move, and are lost on restart.
package history

import (
	"math"
	"sort"
	"sync"
	"time"

	"country-bonds/analyzer"
)

const (
	// DefaultDays is the backfill length used when callers pass days <= 0.
	DefaultDays = 30
	// SecondsPerDay separates consecutive points.
	SecondsPerDay = 86400

	startPrice     = 0.50
	minPrice       = 0.05
	wickJitter     = 0.05
	closeNoise     = 0.005
	volumeMin      = 1000
	volumeMax      = 11000
	volumeStepMin  = 10
	volumeStepMax  = 110
	pricePrecision = 4
)

// Point is one day's OHLC record. Time is the UTC start of the day in unix
// seconds.
type Point struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Store holds one series per country code. It is safe for concurrent use;
// a single lock guards the whole map since writes arrive seconds apart.
type Store struct {
	mu     sync.RWMutex
	series map[string][]Point
	rnd    analyzer.RandomSource
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithRandom sets the random source used for synthetic values.
func WithRandom(rnd analyzer.RandomSource) Option {
	return func(s *Store) { s.rnd = rnd }
}

// WithClock overrides the time source used to pick today's bucket.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		series: make(map[string][]Point),
		rnd:    analyzer.DefaultRandom(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartOfDay truncates t to 00:00 UTC and returns unix seconds.
func StartOfDay(t time.Time) int64 {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// Generate builds a fresh backfill of days+1 points ending today. Values are
// random on every call; the count and time keys are not.
func (s *Store) Generate(countryCode string, days int) []Point {
	if days <= 0 {
		days = DefaultDays
	}
	today := StartOfDay(s.now())
	volatility := analyzer.AverageVolatility(countryCode)

	points := make([]Point, 0, days+1)
	price := startPrice
	for i := days; i >= 0; i-- {
		open := price
		high := open * (1 + analyzer.Uniform(s.rnd, 0, wickJitter))
		low := open * (1 - analyzer.Uniform(s.rnd, 0, wickJitter))
		closePrice := (high+low)/2 + open*analyzer.Uniform(s.rnd, -closeNoise, closeNoise)
		closePrice = math.Min(math.Max(closePrice, low), high)

		points = append(points, Point{
			Time:   today - int64(i)*SecondsPerDay,
			Open:   round(open),
			High:   round(high),
			Low:    round(low),
			Close:  round(closePrice),
			Volume: analyzer.RandomInt(s.rnd, volumeMin, volumeMax),
		})

		drift := analyzer.Uniform(s.rnd, -1, 1) * volatility / analyzer.MaxSensitivity
		price = math.Max(minPrice, price*(1+drift))
	}
	return points
}

// Save replaces the series for a country.
func (s *Store) Save(countryCode string, points []Point) {
	cp := make([]Point, len(points))
	copy(cp, points)

	s.mu.Lock()
	s.series[countryCode] = cp
	s.mu.Unlock()
}

// Get returns a copy of the stored series.
func (s *Store) Get(countryCode string) ([]Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points, ok := s.series[countryCode]
	if !ok {
		return nil, false
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return cp, true
}

// GetOrGenerate returns the stored series, backfilling it first when the
// country has none. The second return reports whether a backfill happened.
func (s *Store) GetOrGenerate(countryCode string, days int) ([]Point, bool) {
	if points, ok := s.Get(countryCode); ok {
		return points, false
	}

	generated := s.Generate(countryCode, days)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have won the race while we generated.
	if existing, ok := s.series[countryCode]; ok {
		cp := make([]Point, len(existing))
		copy(cp, existing)
		return cp, false
	}
	s.series[countryCode] = generated
	cp := make([]Point, len(generated))
	copy(cp, generated)
	return cp, true
}

// Append records price as the latest observation for a country. Within the
// same UTC day the last point is updated in place; a new day appends a point
// opening at the previous close. A country with no series gets a single
// flat point.
func (s *Store) Append(countryCode string, price float64) Point {
	today := StartOfDay(s.now())
	price = round(price)

	s.mu.Lock()
	defer s.mu.Unlock()

	points := s.series[countryCode]
	if len(points) == 0 {
		p := Point{
			Time:   today,
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: analyzer.RandomInt(s.rnd, volumeMin, volumeMax),
		}
		s.series[countryCode] = []Point{p}
		return p
	}

	last := &points[len(points)-1]
	if last.Time >= today {
		last.Close = price
		last.High = math.Max(last.High, price)
		last.Low = math.Min(last.Low, price)
		last.Volume += analyzer.RandomInt(s.rnd, volumeStepMin, volumeStepMax)
		return *last
	}

	p := Point{
		Time:   today,
		Open:   last.Close,
		High:   math.Max(price, last.Close),
		Low:    math.Min(price, last.Close),
		Close:  price,
		Volume: analyzer.RandomInt(s.rnd, volumeMin, volumeMax),
	}
	s.series[countryCode] = append(points, p)
	return p
}

// Len returns the number of points stored for a country.
func (s *Store) Len(countryCode string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.series[countryCode])
}

// Codes lists countries that currently have a series, sorted.
func (s *Store) Codes() []string {
	s.mu.RLock()
	codes := make([]string, 0, len(s.series))
	for code := range s.series {
		codes = append(codes, code)
	}
	s.mu.RUnlock()

	sort.Strings(codes)
	return codes
}

func round(v float64) float64 {
	p := math.Pow(10, pricePrecision)
	return math.Round(v*p) / p
}
