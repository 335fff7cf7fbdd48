package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ternarybob/arbor"

	"country-bonds/analyzer"
	"country-bonds/cache"
	"country-bonds/database"
	"country-bonds/feeds"
	"country-bonds/history"
	"country-bonds/logging"
	"country-bonds/pricing"
)

// topCategories is how many category names are stored on a news item.
const topCategories = 3

// Result is the outcome of running one news item through the pipeline.
type Result struct {
	Item    database.NewsItem
	Scores  analyzer.CategoryScores
	Changes []pricing.PriceChange
}

// Pipeline runs news through categorization, impact, price updates and the
// history series, then fans the outcome out to notifiers.
type Pipeline struct {
	store     database.Store
	updater   *pricing.Updater
	history   *history.Store
	detector  *analyzer.Detector
	dedup     *cache.NewsDeduper
	notifiers []Notifier
	days      int
	now       func() time.Time
	logger    arbor.ILogger
}

// NewPipeline wires a pipeline. dedup may be nil to disable duplicate checks.
func NewPipeline(store database.Store, updater *pricing.Updater, hist *history.Store, dedup *cache.NewsDeduper, historyDays int, logger arbor.ILogger, notifiers ...Notifier) *Pipeline {
	return &Pipeline{
		store:     store,
		updater:   updater,
		history:   hist,
		detector:  analyzer.DefaultDetector(),
		dedup:     dedup,
		notifiers: notifiers,
		days:      historyDays,
		now:       time.Now,
		logger:    logging.OrDefault(logger),
	}
}

// Ingest stores a freshly fetched entry and processes it. It returns a nil
// Result and nil error when the entry was already ingested.
func (p *Pipeline) Ingest(ctx context.Context, entry feeds.Entry) (*Result, error) {
	key := cache.NewsKey(entry.Link, entry.Title)
	if p.dedup != nil && !p.dedup.MarkSeen(ctx, key) {
		return nil, nil
	}

	text := entry.Title + " " + entry.Content
	scores := analyzer.AnalyzeCategories(text)

	item := database.NewsItem{
		ID:         uuid.NewString(),
		Title:      entry.Title,
		Content:    entry.Content,
		Source:     entry.Source,
		Link:       entry.Link,
		Categories: pq.StringArray(categoryNames(scores.Top(topCategories))),
		Timestamp:  entry.Published,
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = p.now().UTC()
	}
	if code := p.detector.DetectCountry(text); code != "" {
		item.CountryCode = &code
	}

	if err := p.store.AddNewsItem(ctx, &item); err != nil {
		if p.dedup != nil {
			p.dedup.Forget(ctx, key)
		}
		return nil, fmt.Errorf("store news item: %w", err)
	}
	for _, n := range p.notifiers {
		n.NewsIngested(ctx, item)
	}

	return p.run(ctx, item, scores)
}

// Process runs an already stored item through the pipeline again.
func (p *Pipeline) Process(ctx context.Context, item database.NewsItem) (*Result, error) {
	return p.run(ctx, item, analyzer.AnalyzeCategories(item.Text()))
}

func (p *Pipeline) run(ctx context.Context, item database.NewsItem, scores analyzer.CategoryScores) (*Result, error) {
	changes, err := p.updater.ApplyNews(ctx, item.Country(), scores)
	res := &Result{Item: item, Scores: scores, Changes: changes}

	// Changes written before a failure are still recorded.
	for _, c := range changes {
		p.history.Append(c.CountryCode, c.CurrentPrice)
	}
	if len(changes) > 0 {
		p.notify(ctx, item.Title, changes)
	}
	if err != nil {
		return res, err
	}

	p.logger.Debug().
		Str("title", truncate(item.Title, 60)).
		Str("country", item.Country()).
		Int("changes", len(changes)).
		Msg("News processed")
	return res, nil
}

// RecordPriceChange appends a price move made outside the news path, such as
// a trade, to the history and notifies subscribers.
func (p *Pipeline) RecordPriceChange(ctx context.Context, change pricing.PriceChange) {
	p.history.Append(change.CountryCode, change.CurrentPrice)
	p.notify(ctx, "", []pricing.PriceChange{change})
}

// PriceHistory returns a country's series, backfilling it on first access.
// A fresh backfill has today's bucket reconciled to the stored price when the
// country exists.
func (p *Pipeline) PriceHistory(ctx context.Context, countryCode string) ([]history.Point, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !isCountryCode(code) {
		return nil, database.NewValidationError("countryCode", "must be two letters")
	}

	points, generated := p.history.GetOrGenerate(code, p.days)
	if !generated {
		return points, nil
	}

	country, err := p.store.GetCountryByCode(ctx, code)
	if err != nil {
		if database.IsNotFound(err) {
			return points, nil
		}
		return points, err
	}
	p.history.Append(code, country.Price())
	points, _ = p.history.Get(code)
	return points, nil
}

func (p *Pipeline) notify(ctx context.Context, headline string, changes []pricing.PriceChange) {
	for _, n := range p.notifiers {
		n.PricesChanged(ctx, headline, changes)
	}
}

func categoryNames(cats []analyzer.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// isCountryCode reports whether code has the ISO alpha-2 shape. Unknown but
// well-formed codes are accepted.
func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
