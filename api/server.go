package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"country-bonds/database"
	"country-bonds/feeds"
	"country-bonds/history"
	"country-bonds/logging"
	"country-bonds/pricing"
	"country-bonds/trading"
)

// HistoryProvider serves price history series
type HistoryProvider interface {
	PriceHistory(ctx context.Context, countryCode string) ([]history.Point, error)
}

// PriceRecorder records price moves made by trades
type PriceRecorder interface {
	RecordPriceChange(ctx context.Context, change pricing.PriceChange)
}

// Trader executes buy and sell orders
type Trader interface {
	Buy(ctx context.Context, countryCode string, shares int64) (*trading.Trade, error)
	Sell(ctx context.Context, countryCode string, shares int64) (*trading.Trade, error)
}

// FetchTrigger runs a fetch cycle on demand and returns its summary
type FetchTrigger interface {
	TriggerFetch(ctx context.Context) feeds.CycleStats
}

// Deps are the collaborators the server routes to. Nil optional fields
// disable their routes.
type Deps struct {
	Store    database.Store
	History  HistoryProvider
	Recorder PriceRecorder
	Trader   Trader
	Fetcher  FetchTrigger
	Events   http.Handler
	Stream   http.Handler
}

// Server handles HTTP API requests
type Server struct {
	deps       Deps
	validate   *validator.Validate
	logger     arbor.ILogger
	httpServer *http.Server
}

// NewServer creates a new API server instance
func NewServer(deps Deps, logger arbor.ILogger) *Server {
	return &Server{
		deps:     deps,
		validate: validator.New(),
		logger:   logging.OrDefault(logger),
	}
}

// Handler builds the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/price-history/{countryCode}", s.handlePriceHistory)
	mux.HandleFunc("GET /api/news", s.handleGetNews)
	mux.HandleFunc("GET /api/countries", s.handleGetCountries)
	mux.HandleFunc("GET /api/countries/{code}", s.handleGetCountry)
	mux.HandleFunc("POST /api/trade/buy", s.handleTrade(trading.SideBuy))
	mux.HandleFunc("POST /api/trade/sell", s.handleTrade(trading.SideSell))
	mux.HandleFunc("POST /api/admin/fetch", s.handleAdminFetch)

	if s.deps.Events != nil {
		mux.Handle("GET /api/events", s.deps.Events)
	}
	if s.deps.Stream != nil {
		mux.Handle("GET /ws/prices", s.deps.Stream)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

// Start starts the HTTP server on the specified port. It returns nil after
// Shutdown.
func (s *Server) Start(port int) error {
	serverAddr := fmt.Sprintf("0.0.0.0:%d", port)
	s.httpServer = &http.Server{
		Addr:              serverAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info().Str("addr", serverAddr).Msg("API server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("HTTP request")
	})
}

// Handlers live in handlers.go.
