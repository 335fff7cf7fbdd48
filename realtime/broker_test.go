package realtime

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_DeliversBroadcasts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroker(nil)
	go b.Run(ctx)

	srv := httptest.NewServer(b)
	defer srv.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	b.Broadcast(EventPriceUpdate, map[string]string{"countryCode": "US"})

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			if strings.HasPrefix(sc.Text(), "data: ") {
				lines <- strings.TrimPrefix(sc.Text(), "data: ")
				return
			}
		}
	}()

	select {
	case line := <-lines:
		var msg struct {
			Event   string            `json:"event"`
			Payload map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &msg))
		assert.Equal(t, EventPriceUpdate, msg.Event)
		assert.Equal(t, "US", msg.Payload["countryCode"])
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestBroker_StoppedRejectsClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBroker(nil)
	stopped := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBroker_SlowSubscriberDropsFrames(t *testing.T) {
	b := NewBroker(nil)
	sub, ok := b.subscribe()
	require.True(t, ok)

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Broadcast(EventNews, i)
	}
	assert.Equal(t, int64(5), sub.dropped.Load())
	assert.Len(t, sub.frames, subscriberBuffer)

	first := <-sub.frames
	assert.Equal(t, uint64(1), first.id)
	assert.Equal(t, EventNews, first.name)
	assert.JSONEq(t, `{"event":"news","payload":0}`, string(first.data))

	b.unsubscribe(sub)
	assert.Zero(t, b.ClientCount())
}
