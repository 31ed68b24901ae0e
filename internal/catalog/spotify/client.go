// Package spotify adapts the Spotify Web API to the artist catalog and
// playlist builder interfaces.
package spotify

import (
	"context"
	"fmt"

	spotifyapi "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/config"
	"github.com/ReadySetJoe/branch-out/internal/domain"
)

// Client wraps the Spotify Web API. Each Client owns its credentials; no
// shared package-level state.
type Client struct {
	api    *spotifyapi.Client
	config config.Spotify
	log    *zap.Logger
}

// NewClient creates a Spotify client authenticated with the configured
// access token.
func NewClient(ctx context.Context, cfg config.Spotify, log *zap.Logger) *Client {
	token := &oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	return &Client{
		api:    spotifyapi.New(httpClient),
		config: cfg,
		log:    log,
	}
}

// TopArtists returns the user's top artists.
func (c *Client) TopArtists(ctx context.Context) ([]domain.Artist, error) {
	page, err := c.api.CurrentUsersTopArtists(ctx, spotifyapi.Limit(c.config.TopArtistLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top artists: %w", err)
	}

	artists := make([]domain.Artist, 0, len(page.Artists))
	for _, a := range page.Artists {
		artists = append(artists, toDomain(a))
	}

	c.log.Info("Fetched top artists", zap.Int("count", len(artists)))

	return artists, nil
}

// RelatedArtists returns artists related to the given artist IDs,
// deduplicated by ID with the first-seen entry kept.
func (c *Client) RelatedArtists(ctx context.Context, ids []string) ([]domain.Artist, error) {
	seen := make(map[string]struct{})
	var artists []domain.Artist

	for _, id := range ids {
		related, err := c.api.GetRelatedArtists(ctx, spotifyapi.ID(id))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch related artists for %s: %w", id, err)
		}

		for _, a := range related {
			if _, ok := seen[string(a.ID)]; ok {
				continue
			}
			seen[string(a.ID)] = struct{}{}
			artists = append(artists, toDomain(a))
		}
	}

	c.log.Info("Fetched related artists",
		zap.Int("seeds", len(ids)),
		zap.Int("count", len(artists)))

	return artists, nil
}

// CreatePlaylist creates a playlist on the user's account seeded with the
// top track of each given artist.
func (c *Client) CreatePlaylist(ctx context.Context, name string, artistIDs []string) (*catalog.Playlist, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	playlist, err := c.api.CreatePlaylistForUser(ctx, user.ID, name, "Events matched with your music taste", false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	var trackIDs []spotifyapi.ID
	for _, artistID := range artistIDs {
		tracks, err := c.api.GetArtistsTopTracks(ctx, spotifyapi.ID(artistID), c.config.Market)
		if err != nil {
			c.log.Warn("Failed to fetch top tracks for artist",
				zap.String("artist_id", artistID),
				zap.Error(err))
			continue
		}
		if len(tracks) > 0 {
			trackIDs = append(trackIDs, tracks[0].ID)
		}
	}

	if len(trackIDs) > 0 {
		if _, err := c.api.AddTracksToPlaylist(ctx, playlist.ID, trackIDs...); err != nil {
			return nil, fmt.Errorf("failed to add tracks to playlist: %w", err)
		}
	}

	c.log.Info("Created playlist",
		zap.String("playlist_id", string(playlist.ID)),
		zap.Int("tracks", len(trackIDs)))

	return &catalog.Playlist{
		ID:   string(playlist.ID),
		Name: playlist.Name,
		URI:  string(playlist.URI),
	}, nil
}

func toDomain(a spotifyapi.FullArtist) domain.Artist {
	artist := domain.Artist{
		ID:   string(a.ID),
		Name: a.Name,
	}
	for _, img := range a.Images {
		artist.Images = append(artist.Images, domain.Image{URL: img.URL})
	}
	return artist
}
