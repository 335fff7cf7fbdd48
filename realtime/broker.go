// Package realtime pushes price and news events to browsers over
// Server-Sent Events.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ternarybob/arbor"

	"country-bonds/logging"
)

// Event names sent to clients.
const (
	EventPriceUpdate = "price_update"
	EventNews        = "news"
)

const (
	heartbeatInterval = 25 * time.Second
	subscriberBuffer  = 32
)

// Message is the JSON body of every SSE frame.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type frame struct {
	id   uint64
	name string
	data []byte
}

type subscriber struct {
	frames  chan frame
	dropped atomic.Int64
}

// Broker fans events out to connected SSE clients. A client that falls
// behind loses frames rather than blocking the sender.
type Broker struct {
	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	stopped bool

	seq    atomic.Uint64
	logger arbor.ILogger
}

// NewBroker creates a broker. It accepts clients until Run's context ends.
func NewBroker(logger arbor.ILogger) *Broker {
	return &Broker{
		subs:   make(map[*subscriber]struct{}),
		logger: logging.OrDefault(logger),
	}
}

// Run blocks until ctx is done, then disconnects every client.
func (b *Broker) Run(ctx context.Context) {
	<-ctx.Done()

	b.mu.Lock()
	b.stopped = true
	for s := range b.subs {
		delete(b.subs, s)
		close(s.frames)
	}
	b.mu.Unlock()
	b.logger.Debug().Msg("SSE broker stopped")
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) subscribe() (*subscriber, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil, false
	}
	s := &subscriber{frames: make(chan frame, subscriberBuffer)}
	b.subs[s] = struct{}{}
	return s, true
}

func (b *Broker) unsubscribe(s *subscriber) {
	b.mu.Lock()
	if _, ok := b.subs[s]; ok {
		delete(b.subs, s)
		close(s.frames)
	}
	total := len(b.subs)
	b.mu.Unlock()

	event := b.logger.Debug().Int("total", total)
	if n := s.dropped.Load(); n > 0 {
		event = event.Int64("dropped", n)
	}
	event.Msg("SSE client disconnected")
}

// ServeHTTP streams events to one client until it disconnects or the broker
// stops.
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub, ok := b.subscribe()
	if !ok {
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	}
	defer b.unsubscribe(sub)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()
	b.logger.Debug().Str("remote", r.RemoteAddr).Msg("SSE client connected")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
		case f, ok := <-sub.frames:
			if !ok {
				return
			}
			fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", f.id, f.name, f.data)
		}
		flusher.Flush()
	}
}

// Broadcast queues event for every connected client.
func (b *Broker) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		b.logger.Warn().Err(err).Str("event", event).Msg("Failed to encode SSE event")
		return
	}
	f := frame{id: b.seq.Add(1), name: event, data: data}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		select {
		case s.frames <- f:
		default:
			s.dropped.Add(1)
		}
	}
}
