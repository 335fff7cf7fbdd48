package app

import (
	"context"

	"github.com/ternarybob/arbor"

	"country-bonds/cache"
	"country-bonds/database"
	"country-bonds/logging"
	"country-bonds/notifications"
	"country-bonds/pricing"
	"country-bonds/realtime"
	"country-bonds/websocket"
)

// Notifier receives pipeline output.
type Notifier interface {
	NewsIngested(ctx context.Context, item database.NewsItem)
	PricesChanged(ctx context.Context, headline string, changes []pricing.PriceChange)
}

// BroadcastNotifier pushes events to SSE clients, WebSocket clients, the
// Redis price channel and webhooks. Any of them may be nil.
type BroadcastNotifier struct {
	broker   *realtime.Broker
	hub      *websocket.Hub
	redis    *cache.RedisClient
	webhooks *notifications.WebhookManager
	logger   arbor.ILogger
}

// NewBroadcastNotifier creates a notifier over the given outputs.
func NewBroadcastNotifier(broker *realtime.Broker, hub *websocket.Hub, redis *cache.RedisClient, webhooks *notifications.WebhookManager, logger arbor.ILogger) *BroadcastNotifier {
	return &BroadcastNotifier{
		broker:   broker,
		hub:      hub,
		redis:    redis,
		webhooks: webhooks,
		logger:   logging.OrDefault(logger),
	}
}

func (n *BroadcastNotifier) NewsIngested(ctx context.Context, item database.NewsItem) {
	if n.broker != nil {
		n.broker.Broadcast(realtime.EventNews, item)
	}
	if n.hub != nil {
		if err := n.hub.Broadcast(realtime.EventNews, item); err != nil {
			n.logger.Warn().Err(err).Msg("WebSocket news broadcast failed")
		}
	}
}

func (n *BroadcastNotifier) PricesChanged(ctx context.Context, headline string, changes []pricing.PriceChange) {
	if n.broker != nil {
		n.broker.Broadcast(realtime.EventPriceUpdate, changes)
	}
	if n.hub != nil {
		if err := n.hub.Broadcast(realtime.EventPriceUpdate, changes); err != nil {
			n.logger.Warn().Err(err).Msg("WebSocket price broadcast failed")
		}
	}
	if n.redis != nil {
		if err := n.redis.Publish(ctx, cache.PriceChannel, changes); err != nil {
			n.logger.Debug().Err(err).Msg("Redis publish failed")
		}
	}
	if n.webhooks != nil {
		n.webhooks.SendPriceAlerts(ctx, headline, changes)
	}
}
