// Package geocode provides forward geocoding for location search, backed
// by Nominatim with a bounded LRU cache over query strings.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/config"
)

const resultLimit = 5

// Place is one geocoding result.
type Place struct {
	Name string
	Lat  float64
	Lng  float64
}

// Client is a Nominatim client with an LRU-cached search. Hot queries stay
// cached regardless of insertion order.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *lru.Cache[string, []Place]
	log        *zap.Logger
}

// NewClient creates a geocoding client.
func NewClient(cfg config.Geocode, log *zap.Logger) (*Client, error) {
	cache, err := lru.New[string, []Place](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode cache: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		baseURL:    cfg.BaseURL,
		cache:      cache,
		log:        log,
	}, nil
}

// Search geocodes a free-text location query. Results are cached by the
// canonicalized query string.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil, fmt.Errorf("location query is required")
	}

	if places, ok := c.cache.Get(key); ok {
		return places, nil
	}

	params := url.Values{}
	params.Set("q", key)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(resultLimit))

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "branch-out/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var payload []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	places := make([]Place, 0, len(payload))
	for _, p := range payload {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		places = append(places, Place{Name: p.DisplayName, Lat: lat, Lng: lng})
	}

	c.cache.Add(key, places)

	c.log.Debug("Geocoded location",
		zap.String("query", key),
		zap.Int("results", len(places)))

	return places, nil
}
