// Package catalog defines the external provider interfaces the discovery
// pipeline consumes.
package catalog

import (
	"context"
	"time"

	"github.com/ReadySetJoe/branch-out/internal/domain"
)

// PageRequest describes one page of a geographic event query.
type PageRequest struct {
	Lat      float64
	Lng      float64
	Radius   int
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Size     int
}

// PageResult is one retrieved page plus the catalog's reported page count.
type PageResult struct {
	Events     []domain.EventListing
	TotalPages int
}

// EventCatalog exposes the paged event retrieval operation.
type EventCatalog interface {
	Events(ctx context.Context, req PageRequest) (*PageResult, error)
}

// ArtistCatalog yields the user's artist set. RelatedArtists deduplicates
// by artist ID, keeping the first-seen entry.
type ArtistCatalog interface {
	TopArtists(ctx context.Context) ([]domain.Artist, error)
	RelatedArtists(ctx context.Context, ids []string) ([]domain.Artist, error)
}

// Playlist is a created playlist reference.
type Playlist struct {
	ID   string
	Name string
	URI  string
}

// PlaylistBuilder creates a playlist seeded from the given artists.
type PlaylistBuilder interface {
	CreatePlaylist(ctx context.Context, name string, artistIDs []string) (*Playlist, error)
}
