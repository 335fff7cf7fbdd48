// Package feeds pulls raw news entries from RSS and Atom sources.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/ternarybob/arbor"

	"country-bonds/logging"
)

const (
	DefaultTimeout  = 15 * time.Second
	DefaultMaxItems = 20
	userAgent       = "country-bonds/1.0 (+news-impact)"
)

// Source is a configured news feed.
type Source struct {
	Name string
	URL  string
}

// Entry is one raw feed item. Only Title and Content feed the pipeline.
type Entry struct {
	Title     string
	Content   string
	Link      string
	Source    string
	Published time.Time
}

// Result is the outcome of fetching a single source.
type Result struct {
	Source   Source
	Entries  []Entry
	Err      error
	Duration time.Duration
}

// CycleStats summarizes one fetch-and-ingest cycle over every source.
type CycleStats struct {
	Sources      int           `json:"sources"`
	Failed       int           `json:"failed"`
	Fetched      int           `json:"fetched"`
	Ingested     int           `json:"ingested"`
	Duplicates   int           `json:"duplicates"`
	Errors       int           `json:"errors"`
	PriceChanges int           `json:"priceChanges"`
	Duration     time.Duration `json:"duration"`
}

// Fetcher fetches every source and returns one Result per source, in the
// order given.
type Fetcher interface {
	FetchAll(ctx context.Context, sources []Source) []Result
}

// RSSFetcher fetches sources concurrently with a per-source timeout.
type RSSFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxItems int
	logger   arbor.ILogger
}

// NewRSSFetcher creates a fetcher. Zero values select the defaults.
func NewRSSFetcher(timeout time.Duration, maxItems int, logger arbor.ILogger) *RSSFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &RSSFetcher{
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
		maxItems: maxItems,
		logger:   logging.OrDefault(logger),
	}
}

// FetchAll fans out one goroutine per source. A failing source only fails
// its own Result.
func (f *RSSFetcher) FetchAll(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			start := time.Now()
			entries, err := f.Fetch(ctx, src)
			results[i] = Result{Source: src, Entries: entries, Err: err, Duration: time.Since(start)}

			if err != nil {
				f.logger.Warn().Err(err).Str("source", src.Name).Msg("Feed fetch failed")
				return
			}
			f.logger.Debug().Str("source", src.Name).Int("entries", len(entries)).Msg("Feed fetched")
		}(i, src)
	}
	wg.Wait()
	return results
}

// Fetch retrieves and parses a single source.
func (f *RSSFetcher) Fetch(ctx context.Context, src Source) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = f.client
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Name, err)
	}
	return f.entries(src, feed), nil
}

func (f *RSSFetcher) entries(src Source, feed *gofeed.Feed) []Entry {
	entries := make([]Entry, 0, min(len(feed.Items), f.maxItems))
	for _, item := range feed.Items {
		if len(entries) == f.maxItems {
			break
		}
		title := StripHTML(item.Title)
		if title == "" {
			continue
		}

		content := item.Description
		if content == "" {
			content = item.Content
		}

		e := Entry{
			Title:   title,
			Content: StripHTML(content),
			Link:    item.Link,
			Source:  src.Name,
		}
		if item.PublishedParsed != nil {
			e.Published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			e.Published = item.UpdatedParsed.UTC()
		}
		entries = append(entries, e)
	}
	return entries
}

// StripHTML returns the visible text of an HTML fragment with whitespace
// collapsed. Plain text passes through unchanged apart from whitespace.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
