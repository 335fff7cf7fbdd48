// Package websocket streams price updates to browsers over WebSocket, as JSON
// text frames or protobuf Struct binary frames.
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"country-bonds/logging"
)

// Frame is the envelope sent to clients.
type Frame struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub tracks connected clients and fans frames out to them
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	ctx      context.Context
	logger   arbor.ILogger
}

// NewHub creates a hub whose client loops stop when ctx is cancelled
func NewHub(ctx context.Context, logger arbor.ILogger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*Client]struct{}),
		ctx:     ctx,
		logger:  logging.OrDefault(logger),
	}
}

// ServeHTTP upgrades the request. ?format=proto selects binary frames.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format := FormatJSON
	if r.URL.Query().Get("format") == string(FormatProto) {
		format = FormatProto
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := newClient(conn, format)
	ctx, cancel := context.WithCancel(h.ctx)
	client.pingCancel = cancel
	h.add(client)

	go client.writePump(ctx)
	go func() {
		client.readPump()
		h.remove(client)
		_ = client.Close()
	}()
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug().Str("format", string(c.format)).Int("total", total).Msg("WebSocket client connected")
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug().Int("total", total).Msg("WebSocket client disconnected")
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast encodes the frame once per format and queues it on every
// client. Clients with a full queue miss the frame.
func (h *Hub) Broadcast(event string, payload interface{}) error {
	frame := Frame{Event: event, Payload: payload}

	jsonData, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var protoData []byte
	for c := range h.clients {
		data := jsonData
		if c.format == FormatProto {
			if protoData == nil {
				if protoData, err = encodeProto(jsonData); err != nil {
					return err
				}
			}
			data = protoData
		}
		select {
		case c.send <- data:
		default:
		}
	}
	return nil
}

// encodeProto converts a JSON frame into a serialized google.protobuf.Struct
func encodeProto(jsonData []byte) ([]byte, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("build struct frame: %w", err)
	}
	return proto.Marshal(s)
}

// DecodeProto parses a binary frame back into a Struct
func DecodeProto(data []byte) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal frame: %w", err)
	}
	return s, nil
}
