package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds the HTTP service settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Spotify holds the artist catalog settings. The access token is supplied
// by the deployment; token refresh is outside this service.
type Spotify struct {
	AccessToken    string `envconfig:"SPOTIFY_ACCESS_TOKEN" required:"true"`
	TopArtistLimit int    `envconfig:"SPOTIFY_TOP_ARTIST_LIMIT" default:"50"`
	Market         string `envconfig:"SPOTIFY_MARKET" default:"US"`
}

// Ticketmaster holds the event catalog settings.
type Ticketmaster struct {
	APIKey     string `envconfig:"TICKETMASTER_API_KEY" required:"true"`
	BaseURL    string `envconfig:"TICKETMASTER_BASE_URL" default:"https://app.ticketmaster.com/discovery/v2"`
	TimeoutSec int    `envconfig:"TICKETMASTER_TIMEOUT_SEC" default:"10"`
}

// Discovery holds the matching and presentation settings.
type Discovery struct {
	MatchThreshold float64 `envconfig:"DISCOVERY_MATCH_THRESHOLD" default:"0.7"`
	EventsPerPage  int     `envconfig:"DISCOVERY_EVENTS_PER_PAGE" default:"12"`
	SessionLimit   int     `envconfig:"DISCOVERY_SESSION_LIMIT" default:"256"`
}

// Geocode holds the location search settings.
type Geocode struct {
	BaseURL    string `envconfig:"GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	CacheSize  int    `envconfig:"GEOCODE_CACHE_SIZE" default:"50"`
	TimeoutSec int    `envconfig:"GEOCODE_TIMEOUT_SEC" default:"10"`
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	Service      Service
	Spotify      Spotify
	Ticketmaster Ticketmaster
	Discovery    Discovery
	Geocode      Geocode
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
