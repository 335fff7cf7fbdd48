package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	CountryCode  string  `json:"countryCode"`
	CurrentPrice float64 `json:"currentPrice"`
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_JSONAndProtoFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(ctx, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	jsonConn := dial(t, srv, "/")
	protoConn := dial(t, srv, "/?format=proto")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast("price_update", []change{{CountryCode: "DE", CurrentPrice: 0.55}}))

	_ = jsonConn.SetReadDeadline(time.Now().Add(3 * time.Second))
	mt, data, err := jsonConn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, mt)

	var frame struct {
		Event   string   `json:"event"`
		Payload []change `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "price_update", frame.Event)
	assert.Equal(t, []change{{CountryCode: "DE", CurrentPrice: 0.55}}, frame.Payload)

	_ = protoConn.SetReadDeadline(time.Now().Add(3 * time.Second))
	mt, data, err = protoConn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, mt)

	s, err := DecodeProto(data)
	require.NoError(t, err)
	assert.Equal(t, "price_update", s.Fields["event"].GetStringValue())
	first := s.Fields["payload"].GetListValue().Values[0].GetStructValue()
	assert.Equal(t, "DE", first.Fields["countryCode"].GetStringValue())
	assert.Equal(t, 0.55, first.Fields["currentPrice"].GetNumberValue())
}

func TestHub_RemovesDisconnectedClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(ctx, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, "/")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
