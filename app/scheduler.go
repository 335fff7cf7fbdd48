package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"country-bonds/analyzer"
	"country-bonds/config"
	"country-bonds/database"
	"country-bonds/feeds"
	"country-bonds/logging"
)

const (
	fetchCycleTimeout  = 5 * time.Minute
	replayCycleTimeout = time.Minute
)

// FetchStats summarizes one fetch cycle.
type FetchStats = feeds.CycleStats

// ReplayStats summarizes one replay cycle.
type ReplayStats struct {
	Sampled      int `json:"sampled"`
	Errors       int `json:"errors"`
	PriceChanges int `json:"priceChanges"`
}

// Scheduler drives the pipeline on a fetch cadence and a replay cadence.
// Each cadence skips a tick while its previous run is still in flight; the
// two cadences may overlap each other.
type Scheduler struct {
	cron     *cron.Cron
	pipeline *Pipeline
	fetcher  feeds.Fetcher
	sources  []feeds.Source
	store    database.Store
	cfg      config.SchedulerConfig
	replayN  int // news items considered for replay

	rndMu sync.Mutex
	rnd   analyzer.RandomSource

	logger arbor.ILogger
}

// NewScheduler creates a scheduler. rnd may be nil.
func NewScheduler(pipeline *Pipeline, fetcher feeds.Fetcher, sources []feeds.Source, store database.Store, cfg config.SchedulerConfig, replayPool int, rnd analyzer.RandomSource, logger arbor.ILogger) *Scheduler {
	logger = logging.OrDefault(logger)
	if rnd == nil {
		rnd = analyzer.DefaultRandom()
	}
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		pipeline: pipeline,
		fetcher:  fetcher,
		sources:  sources,
		store:    store,
		cfg:      cfg,
		replayN:  replayPool,
		rnd:      rnd,
		logger:   logger,
	}
}

// Start registers both cadences and starts the cron runner.
func (s *Scheduler) Start() error {
	cl := cronLogger{logger: s.logger}

	fetchJob := cron.NewChain(cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchCycleTimeout)
		defer cancel()
		s.RunFetchCycle(ctx)
	}))
	if _, err := s.cron.AddJob(s.cfg.FetchSchedule, fetchJob); err != nil {
		return fmt.Errorf("invalid fetch schedule %q: %w", s.cfg.FetchSchedule, err)
	}

	replayJob := cron.NewChain(cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), replayCycleTimeout)
		defer cancel()
		s.RunReplayCycle(ctx)
	}))
	if _, err := s.cron.AddJob(s.cfg.ReplaySchedule, replayJob); err != nil {
		return fmt.Errorf("invalid replay schedule %q: %w", s.cfg.ReplaySchedule, err)
	}

	s.cron.Start()
	s.logger.Info().
		Str("fetch", s.cfg.FetchSchedule).
		Str("replay", s.cfg.ReplaySchedule).
		Int("sources", len(s.sources)).
		Msg("News scheduler started")
	return nil
}

// Stop stops the cron runner and waits for running jobs up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info().Msg("News scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn().Msg("News scheduler stop timed out")
	}
}

// RunFetchCycle pulls every source and ingests new entries. Source failures
// are counted and logged; they do not stop the cycle.
func (s *Scheduler) RunFetchCycle(ctx context.Context) FetchStats {
	start := time.Now()
	stats := FetchStats{Sources: len(s.sources)}

	for _, r := range s.fetcher.FetchAll(ctx, s.sources) {
		if r.Err != nil {
			stats.Failed++
			continue
		}
		stats.Fetched += len(r.Entries)

		for _, entry := range r.Entries {
			res, err := s.pipeline.Ingest(ctx, entry)
			if err != nil {
				stats.Errors++
				s.logger.Warn().Err(err).Str("source", r.Source.Name).Msg("Failed to ingest news")
				continue
			}
			if res == nil {
				stats.Duplicates++
				continue
			}
			stats.Ingested++
			stats.PriceChanges += len(res.Changes)
		}
	}

	stats.Duration = time.Since(start)
	s.logger.Info().
		Int("sources", stats.Sources).
		Int("failed", stats.Failed).
		Int("fetched", stats.Fetched).
		Int("ingested", stats.Ingested).
		Int("duplicates", stats.Duplicates).
		Int("changes", stats.PriceChanges).
		Dur("duration", stats.Duration).
		Msg("Fetch cycle complete")
	return stats
}

// RunReplayCycle re-runs a random sample of stored news to keep prices moving.
func (s *Scheduler) RunReplayCycle(ctx context.Context) ReplayStats {
	var stats ReplayStats

	items, err := s.store.GetLatestNews(ctx, s.replayN)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Replay could not load news")
		stats.Errors++
		return stats
	}
	if len(items) == 0 {
		return stats
	}

	for _, item := range s.sample(items) {
		stats.Sampled++
		res, err := s.pipeline.Process(ctx, item)
		if res != nil {
			stats.PriceChanges += len(res.Changes)
		}
		if err != nil {
			stats.Errors++
			s.logger.Warn().Err(err).Str("news", item.ID).Msg("Replay failed")
		}
	}

	s.logger.Debug().
		Int("sampled", stats.Sampled).
		Int("changes", stats.PriceChanges).
		Msg("Replay cycle complete")
	return stats
}

// sample picks between ReplayMinItems and ReplayMaxItems distinct items
// uniformly at random.
func (s *Scheduler) sample(items []database.NewsItem) []database.NewsItem {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()

	lo, hi := s.cfg.ReplayMinItems, s.cfg.ReplayMaxItems
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	n := int(analyzer.RandomInt(s.rnd, int64(lo), int64(hi)+1))
	n = min(n, len(items))

	pool := append([]database.NewsItem(nil), items...)
	for i := 0; i < n; i++ {
		j := i + int(analyzer.RandomInt(s.rnd, 0, int64(len(pool)-i)))
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// cronLogger adapts arbor to cron.Logger.
type cronLogger struct {
	logger arbor.ILogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Debug().Msgf("cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Error().Err(err).Msgf("cron: %s %v", msg, keysAndValues)
}

// TriggerFetch runs a fetch cycle immediately.
func (s *Scheduler) TriggerFetch(ctx context.Context) FetchStats {
	return s.RunFetchCycle(ctx)
}
