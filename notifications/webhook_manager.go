// Package notifications delivers large price moves to outgoing webhooks.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"country-bonds/helpers"
	"country-bonds/logging"
	"country-bonds/pricing"
)

const (
	maxRetries = 3
	userAgent  = "Country-Bonds-Alert/1.0"
)

type webhook struct {
	url     string
	limiter *rate.Limiter
}

// WebhookManager handles webhook notifications
type WebhookManager struct {
	hooks        []webhook
	minChangePct float64
	client       *http.Client
	retryDelay   time.Duration
	logger       arbor.ILogger

	wg        sync.WaitGroup
	delivered atomic.Int64
	failed    atomic.Int64
	throttled atomic.Int64
}

// WebhookPayload represents the JSON payload sent to webhooks
type WebhookPayload struct {
	CountryCode   string    `json:"countryCode"`
	PreviousPrice float64   `json:"previousPrice"`
	CurrentPrice  float64   `json:"currentPrice"`
	PercentChange float64   `json:"percentChange"`
	Direction     string    `json:"direction"`
	Headline      string    `json:"headline,omitempty"`
	DetectedAt    time.Time `json:"detectedAt"`
	Message       string    `json:"message"`
}

// Stats counts delivery outcomes
type Stats struct {
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Throttled int64 `json:"throttled"`
}

// NewWebhookManager creates a manager posting to urls. Moves smaller than
// minChangePct percent are ignored; each URL gets at most perMinute
// deliveries per minute.
func NewWebhookManager(urls []string, minChangePct float64, perMinute int, logger arbor.ILogger) *WebhookManager {
	if perMinute <= 0 {
		perMinute = 10
	}
	wm := &WebhookManager{
		minChangePct: minChangePct,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		retryDelay: 2 * time.Second,
		logger:     logging.OrDefault(logger),
	}
	for _, u := range urls {
		wm.hooks = append(wm.hooks, webhook{
			url:     u,
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		})
	}
	return wm
}

// Enabled reports whether any webhook is configured
func (wm *WebhookManager) Enabled() bool {
	return len(wm.hooks) > 0
}

// SendPriceAlerts delivers every change at or above the threshold to each
// webhook asynchronously
func (wm *WebhookManager) SendPriceAlerts(ctx context.Context, headline string, changes []pricing.PriceChange) {
	if !wm.Enabled() {
		return
	}

	for _, change := range changes {
		if !wm.shouldSend(change) {
			continue
		}

		payloadBytes, err := json.Marshal(wm.CreatePayload(headline, change))
		if err != nil {
			wm.logger.Warn().Err(err).Msg("Failed to marshal webhook payload")
			continue
		}

		for _, hook := range wm.hooks {
			if !hook.limiter.Allow() {
				wm.throttled.Add(1)
				wm.logger.Debug().Str("url", hook.url).Str("country", change.CountryCode).Msg("Webhook rate limited")
				continue
			}
			wm.wg.Add(1)
			go func(hook webhook) {
				defer wm.wg.Done()
				wm.deliverWebhook(context.WithoutCancel(ctx), hook, payloadBytes)
			}(hook)
		}
	}
}

func (wm *WebhookManager) shouldSend(change pricing.PriceChange) bool {
	return math.Abs(change.PercentChange) >= wm.minChangePct
}

// CreatePayload generates the webhook payload from a price change
func (wm *WebhookManager) CreatePayload(headline string, change pricing.PriceChange) WebhookPayload {
	icon := "📈"
	if change.Direction == pricing.DirectionDown {
		icon = "📉"
	}
	message := fmt.Sprintf("%s %s %s | %s → %s",
		icon,
		change.CountryCode,
		helpers.FormatPercent(change.PercentChange),
		helpers.FormatUSD(change.PreviousPrice),
		helpers.FormatUSD(change.CurrentPrice),
	)
	if headline != "" {
		message += " | " + headline
	}

	return WebhookPayload{
		CountryCode:   change.CountryCode,
		PreviousPrice: change.PreviousPrice,
		CurrentPrice:  change.CurrentPrice,
		PercentChange: change.PercentChange,
		Direction:     string(change.Direction),
		Headline:      headline,
		DetectedAt:    time.Now().UTC(),
		Message:       message,
	}
}

func (wm *WebhookManager) deliverWebhook(ctx context.Context, hook webhook, payload []byte) {
	var lastErr error
retry:
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = wm.post(ctx, hook.url, payload)
		if lastErr == nil {
			wm.delivered.Add(1)
			return
		}

		wm.logger.Debug().Err(lastErr).Str("url", hook.url).Int("attempt", attempt).Msg("Webhook attempt failed")
		if attempt < maxRetries {
			select {
			case <-time.After(wm.retryDelay):
			case <-ctx.Done():
				break retry
			}
		}
	}

	wm.failed.Add(1)
	wm.logger.Warn().Err(lastErr).Str("url", hook.url).Msg("Webhook delivery failed")
}

func (wm *WebhookManager) post(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := wm.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Wait blocks until in-flight deliveries finish
func (wm *WebhookManager) Wait() {
	wm.wg.Wait()
}

// Stats returns delivery counters
func (wm *WebhookManager) Stats() Stats {
	return Stats{
		Delivered: wm.delivered.Load(),
		Failed:    wm.failed.Load(),
		Throttled: wm.throttled.Load(),
	}
}
