package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"

	"country-bonds/analyzer"
	"country-bonds/api"
	"country-bonds/cache"
	"country-bonds/config"
	"country-bonds/database"
	"country-bonds/feeds"
	"country-bonds/history"
	"country-bonds/logging"
	"country-bonds/notifications"
	"country-bonds/pricing"
	"country-bonds/realtime"
	"country-bonds/trading"
	"country-bonds/websocket"
)

// App represents the main application
type App struct {
	config    *config.Config
	logger    arbor.ILogger
	db        *database.Database
	store     database.Store
	redis     *cache.RedisClient
	history   *history.Store
	broker    *realtime.Broker
	hub       *websocket.Hub
	webhooks  *notifications.WebhookManager
	pipeline  *Pipeline
	scheduler *Scheduler
	server    *api.Server
}

// New creates a new application instance
func New(cfg *config.Config, logger arbor.ILogger) *App {
	return &App{
		config:  cfg,
		logger:  logging.OrDefault(logger),
		history: history.NewStore(),
	}
}

// Start starts the application and blocks until an interrupt is received
func (a *App) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Storage
	if err := a.connectStore(); err != nil {
		return err
	}

	// 2. Redis (optional)
	if a.config.Redis.Enabled {
		a.redis = cache.NewRedisClient(a.config.RedisAddr(), a.config.Redis.Password, a.logger)
		if a.redis == nil {
			a.logger.Warn().Msg("Redis unavailable, using in-process dedup and no price channel")
		}
	}

	// 3. Market initialization
	count, err := InitializeMarket(ctx, a.store, a.history,
		a.config.Market.SeedPrice, a.config.Market.TotalShares, a.config.Market.HistoryDays)
	if err != nil {
		return fmt.Errorf("market initialization failed: %w", err)
	}
	a.logger.Info().Int("countries", count).Msg("Market initialized")

	// 4. Realtime outputs
	a.broker = realtime.NewBroker(a.logger)
	go a.broker.Run(ctx)
	a.hub = websocket.NewHub(ctx, a.logger)
	a.webhooks = notifications.NewWebhookManager(a.config.Webhooks.URLs,
		a.config.Webhooks.MinChangePct, a.config.Webhooks.MaxPerMinute, a.logger)

	// 5. Pipeline and scheduler
	rnd := analyzer.DefaultRandom()
	updater := pricing.NewUpdater(a.store,
		pricing.WithRandom(rnd),
		pricing.WithFloor(a.config.Market.PriceFloor),
		pricing.WithLogger(a.logger))
	notifier := NewBroadcastNotifier(a.broker, a.hub, a.redis, a.webhooks, a.logger)
	dedup := cache.NewNewsDeduper(a.redis, cache.DefaultSeenTTL)
	a.pipeline = NewPipeline(a.store, updater, a.history, dedup, a.config.Market.HistoryDays, a.logger, notifier)

	fetcher := feeds.NewRSSFetcher(a.config.Scheduler.FetchTimeout, a.config.Scheduler.MaxItemsPerFeed, a.logger)
	a.scheduler = NewScheduler(a.pipeline, fetcher, feedSources(a.config.Feeds), a.store,
		a.config.Scheduler, a.config.Market.NewsRetention, rnd, a.logger)
	if err := a.scheduler.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	if a.config.Scheduler.FetchOnStartup {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, fetchCancel := context.WithTimeout(ctx, fetchCycleTimeout)
			defer fetchCancel()
			a.scheduler.RunFetchCycle(fetchCtx)
		}()
	}

	// 6. API server
	a.server = api.NewServer(api.Deps{
		Store:    a.store,
		History:  a.pipeline,
		Recorder: a.pipeline,
		Trader:   trading.NewService(a.store, a.config.Market.PriceFloor, a.logger),
		Fetcher:  a.scheduler,
		Events:   a.broker,
		Stream:   a.hub,
	}, a.logger)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.server.Start(a.config.HTTPPort); err != nil {
			a.logger.Error().Err(err).Msg("API server failed")
		}
	}()

	// 7. Wait for interrupt and perform graceful shutdown
	err = a.gracefulShutdown(cancel)
	wg.Wait()
	return err
}

func (a *App) connectStore() error {
	switch a.config.Database.Driver {
	case "postgres":
		a.logger.Info().Str("host", a.config.Database.Host).Msg("Connecting to database")
		db, err := database.Connect(database.ConnectionParams{
			Host:     a.config.Database.Host,
			Port:     a.config.Database.Port,
			Name:     a.config.Database.Name,
			User:     a.config.Database.User,
			Password: a.config.Database.Password,
		})
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		a.db = db

		repo := database.NewRepository(db)
		if err := repo.InitSchema(); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		a.store = repo
	default:
		a.logger.Info().Int("retention", a.config.Market.NewsRetention).Msg("Using in-memory store")
		a.store = database.NewMemoryStore(a.config.Market.NewsRetention)
	}
	return nil
}

func feedSources(list []config.FeedSource) []feeds.Source {
	out := make([]feeds.Source, len(list))
	for i, f := range list {
		out[i] = feeds.Source{Name: f.Name, URL: f.URL}
	}
	return out
}

// gracefulShutdown handles graceful shutdown with timeout
func (a *App) gracefulShutdown(cancel context.CancelFunc) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	<-interrupt
	a.logger.Info().Msg("🛑 Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	shutdownComplete := make(chan struct{})
	go func() {
		if a.scheduler != nil {
			a.scheduler.Stop(shutdownCtx)
		}

		// Stops the broker, hub clients and any in-flight fetch. SSE
		// handlers only return once the broker is gone.
		cancel()

		if a.server != nil {
			if err := a.server.Shutdown(shutdownCtx); err != nil {
				a.logger.Warn().Err(err).Msg("Error stopping API server")
			}
		}

		if a.webhooks != nil {
			a.webhooks.Wait()
		}

		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.logger.Warn().Err(err).Msg("Error closing database")
			} else {
				a.logger.Info().Msg("✅ Database connection closed")
			}
		}

		if a.redis != nil {
			if err := a.redis.Close(); err != nil {
				a.logger.Warn().Err(err).Msg("Error closing redis")
			} else {
				a.logger.Info().Msg("✅ Redis connection closed")
			}
		}

		close(shutdownComplete)
	}()

	select {
	case <-shutdownComplete:
		a.logger.Info().Msg("✅ Graceful shutdown completed")
		return nil
	case <-shutdownCtx.Done():
		cancel()
		a.logger.Warn().Msg("⚠️  Shutdown timeout exceeded, forcing exit")
		return fmt.Errorf("shutdown timeout")
	}
}
