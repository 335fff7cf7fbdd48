package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"country-bonds/database"
	"country-bonds/history"
	"country-bonds/trading"
)

const (
	defaultNewsLimit = 50
	maxNewsLimit     = 500
)

// TradeRequest is the body of a buy or sell order
type TradeRequest struct {
	CountryCode string `json:"countryCode" validate:"required,len=2,alpha"`
	Shares      int64  `json:"shares" validate:"required,gt=0"`
}

// handlePriceHistory always answers with a JSON array; failures yield [].
func (s *Server) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("countryCode")

	var points []history.Point
	if s.deps.History != nil {
		var err error
		points, err = s.deps.History.PriceHistory(r.Context(), code)
		if err != nil {
			s.logger.Warn().Err(err).Str("country", code).Msg("Price history unavailable")
			points = nil
		}
	}
	if points == nil {
		points = []history.Point{}
	}
	respondJSON(w, http.StatusOK, points)
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", defaultNewsLimit, intPtr(1), intPtr(maxNewsLimit))

	items, err := s.deps.Store.GetLatestNews(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load news", err)
		return
	}
	if items == nil {
		items = []database.NewsItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetCountries(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Store.GetAllCountries(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load countries", err)
		return
	}
	if list == nil {
		list = []database.Country{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := s.deps.Store.GetCountryByCode(r.Context(), r.PathValue("code"))
	if database.IsNotFound(err) {
		respondWithError(w, http.StatusNotFound, "Country not found", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load country", err)
		return
	}
	respondJSON(w, http.StatusOK, country)
}

func (s *Server) handleTrade(side trading.Side) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Trader == nil {
			respondWithError(w, http.StatusServiceUnavailable, "Trading unavailable", nil)
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, "countryCode must be a two-letter code and shares a positive integer", err)
			return
		}

		var (
			trade *trading.Trade
			err   error
		)
		if side == trading.SideBuy {
			trade, err = s.deps.Trader.Buy(r.Context(), req.CountryCode, req.Shares)
		} else {
			trade, err = s.deps.Trader.Sell(r.Context(), req.CountryCode, req.Shares)
		}

		switch {
		case err == nil:
		case errors.Is(err, trading.ErrInvalidQuantity):
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		case errors.Is(err, trading.ErrInsufficientShares):
			respondWithError(w, http.StatusConflict, err.Error(), nil)
			return
		case database.IsNotFound(err):
			respondWithError(w, http.StatusNotFound, "Country not found", nil)
			return
		default:
			respondWithError(w, http.StatusInternalServerError, "Trade failed", err)
			return
		}

		if s.deps.Recorder != nil {
			s.deps.Recorder.RecordPriceChange(r.Context(), trade.Change)
		}
		respondJSON(w, http.StatusOK, trade)
	}
}

func (s *Server) handleAdminFetch(w http.ResponseWriter, r *http.Request) {
	if s.deps.Fetcher == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Scheduler unavailable", nil)
		return
	}
	respondJSON(w, http.StatusOK, s.deps.Fetcher.TriggerFetch(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
