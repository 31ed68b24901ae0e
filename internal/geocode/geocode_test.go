package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/config"
)

const nominatimFixture = `[
  {"display_name": "New York, United States", "lat": "40.7127281", "lon": "-74.0060152"},
  {"display_name": "New York Mills, MN", "lat": "46.5180429", "lon": "-95.3766642"}
]`

func newTestClient(t *testing.T, cacheSize int, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(config.Geocode{
		BaseURL:    srv.URL,
		CacheSize:  cacheSize,
		TimeoutSec: 5,
	}, zap.NewNop())
	assert.NoError(t, err)

	return client, &hits
}

func TestClient_Search(t *testing.T) {
	client, hits := newTestClient(t, 50, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "new york", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(nominatimFixture))
	})

	places, err := client.Search(context.Background(), "New York")

	assert.NoError(t, err)
	assert.Len(t, places, 2)
	assert.Equal(t, "New York, United States", places[0].Name)
	assert.InDelta(t, 40.7127281, places[0].Lat, 1e-9)
	assert.InDelta(t, -74.0060152, places[0].Lng, 1e-9)
	assert.Equal(t, 1, *hits)
}

func TestClient_Search_CachesByCanonicalQuery(t *testing.T) {
	client, hits := newTestClient(t, 50, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(nominatimFixture))
	})

	for _, q := range []string{"New York", "new york", "  NEW YORK  "} {
		_, err := client.Search(context.Background(), q)
		assert.NoError(t, err)
	}

	assert.Equal(t, 1, *hits, "canonicalized queries share one cache entry")
}

func TestClient_Search_LRUKeepsHotEntries(t *testing.T) {
	client, hits := newTestClient(t, 2, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := context.Background()

	_, _ = client.Search(ctx, "alpha") // miss
	_, _ = client.Search(ctx, "beta")  // miss
	_, _ = client.Search(ctx, "alpha") // hit, refreshes alpha
	_, _ = client.Search(ctx, "gamma") // miss, evicts beta (the LRU entry)
	_, _ = client.Search(ctx, "alpha") // still cached

	assert.Equal(t, 3, *hits)

	_, _ = client.Search(ctx, "beta") // evicted, refetched
	assert.Equal(t, 4, *hits)
}

func TestClient_Search_EmptyQuery(t *testing.T) {
	client, hits := newTestClient(t, 50, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Search(context.Background(), "   ")

	assert.Error(t, err)
	assert.Equal(t, 0, *hits)
}

func TestClient_Search_ProviderError(t *testing.T) {
	client, _ := newTestClient(t, 50, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), "anywhere")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
