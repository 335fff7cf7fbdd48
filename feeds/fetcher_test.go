package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>World</title>
  <item>
    <title>Peace talks resume in Geneva</title>
    <description><![CDATA[<p>Delegates from <b>Ukraine</b> and Russia met.</p>]]></description>
    <link>https://news.example/a</link>
    <pubDate>Mon, 02 Mar 2026 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Markets &amp; trade</title>
    <description>Stocks rallied.</description>
    <link>https://news.example/b</link>
  </item>
  <item>
    <title>   </title>
    <description>untitled entries are dropped</description>
  </item>
</channel>
</rss>`

func rssServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_ParsesEntries(t *testing.T) {
	srv := rssServer(t)
	f := NewRSSFetcher(time.Second, 0, nil)

	entries, err := f.Fetch(context.Background(), Source{Name: "Example", URL: srv.URL + "/ok"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Peace talks resume in Geneva", entries[0].Title)
	assert.Equal(t, "Delegates from Ukraine and Russia met.", entries[0].Content)
	assert.Equal(t, "https://news.example/a", entries[0].Link)
	assert.Equal(t, "Example", entries[0].Source)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), entries[0].Published)

	assert.Equal(t, "Markets & trade", entries[1].Title)
	assert.True(t, entries[1].Published.IsZero())
}

func TestFetch_MaxItems(t *testing.T) {
	srv := rssServer(t)
	f := NewRSSFetcher(time.Second, 1, nil)

	entries, err := f.Fetch(context.Background(), Source{Name: "Example", URL: srv.URL + "/ok"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFetchAll_IsolatesFailures(t *testing.T) {
	srv := rssServer(t)
	f := NewRSSFetcher(200*time.Millisecond, 0, nil)

	sources := []Source{
		{Name: "broken", URL: srv.URL + "/broken"},
		{Name: "ok", URL: srv.URL + "/ok"},
		{Name: "slow", URL: srv.URL + "/slow"},
	}
	start := time.Now()
	results := f.FetchAll(context.Background(), sources)
	assert.Less(t, time.Since(start), 2*time.Second)

	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.Equal(t, "broken", results[0].Source.Name)

	assert.NoError(t, results[1].Err)
	assert.Len(t, results[1].Entries, 2)

	assert.Error(t, results[2].Err)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain text", StripHTML("  plain \n text "))
	assert.Equal(t, "bold and link", StripHTML("<b>bold</b> and <a href='x'>link</a>"))
	assert.Equal(t, "Tom & Jerry", StripHTML("Tom &amp; Jerry"))
	assert.Equal(t, "", StripHTML(""))
}
