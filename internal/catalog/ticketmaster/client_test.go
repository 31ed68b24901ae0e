package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/config"
)

const fixturePage = `{
  "_embedded": {
    "events": [
      {
        "id": "ev-1",
        "name": "Drake Live",
        "url": "https://tickets.example/ev-1",
        "images": [{"url": "https://img.example/ev-1.jpg"}],
        "dates": {"start": {"localDate": "2026-10-03", "localTime": "20:00:00"}},
        "priceRanges": [{"min": 59.5, "max": 250, "currency": "USD"}],
        "_embedded": {
          "attractions": [{"id": "att-1", "name": "Drake"}],
          "venues": [{"name": "Madison Square Garden", "city": {"name": "New York"}, "state": {"name": "New York", "stateCode": "NY"}}]
        },
        "classifications": [{"genre": {"name": "Hip-Hop/Rap"}, "subGenre": {"name": "Rap"}}]
      },
      {
        "id": "ev-2",
        "name": "Mystery Show",
        "url": "https://tickets.example/ev-2",
        "dates": {"start": {"localDate": "2026-11-20"}}
      }
    ]
  },
  "page": {"size": 200, "totalElements": 340, "totalPages": 2, "number": 0}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.Ticketmaster{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		TimeoutSec: 5,
	}, zap.NewNop())

	return client, srv
}

func TestClient_Events_ParsesPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "200", r.URL.Query().Get("size"))
		assert.Equal(t, "100", r.URL.Query().Get("radius"))
		assert.Equal(t, "miles", r.URL.Query().Get("unit"))
		assert.Contains(t, r.URL.Query().Get("latlong"), "40.7")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixturePage))
	})

	res, err := client.Events(context.Background(), catalog.PageRequest{
		Lat: 40.7128, Lng: -74.006, Radius: 100, Page: 0, Size: 200,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Events, 2)

	ev := res.Events[0]
	assert.Equal(t, "ev-1", ev.ID)
	assert.Equal(t, "Drake Live", ev.Name)
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), ev.StartDate)
	assert.Equal(t, "20:00:00", ev.StartTime)
	assert.Equal(t, []string{"Drake"}, []string{ev.Attractions[0].Name})
	assert.Equal(t, "Madison Square Garden", ev.Venues[0].Name)
	assert.Equal(t, "New York", ev.Venues[0].City)
	assert.Equal(t, "Hip-Hop/Rap", ev.Classifications[0].Genre)
	assert.Equal(t, 59.5, ev.PriceRanges[0].Min)

	// Optional blocks absent on the second event.
	bare := res.Events[1]
	assert.Empty(t, bare.PriceRanges)
	assert.Empty(t, bare.Attractions)
	assert.Empty(t, bare.Venues)
	assert.Empty(t, bare.Classifications)
}

func TestClient_Events_DateBoundsForwarded(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-09-01T00:00:00Z", r.URL.Query().Get("startDateTime"))
		assert.Equal(t, "2026-12-31T00:00:00Z", r.URL.Query().Get("endDateTime"))
		_, _ = w.Write([]byte(`{"page": {"totalPages": 1}}`))
	})

	res, err := client.Events(context.Background(), catalog.PageRequest{
		Lat: 40.7, Lng: -74.0, Page: 0, Size: 200, DateFrom: &from, DateTo: &to,
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.Equal(t, 1, res.TotalPages)
}

func TestClient_Events_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	res, err := client.Events(context.Background(), catalog.PageRequest{Lat: 40.7, Lng: -74.0, Size: 200})

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Events_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	res, err := client.Events(context.Background(), catalog.PageRequest{Lat: 40.7, Lng: -74.0, Size: 200})

	assert.Error(t, err)
	assert.Nil(t, res)
}
