package service

import (
	"context"

	"github.com/ReadySetJoe/branch-out/internal/dto"
)

// DiscoveryServicer defines the interface for discovery operations
type DiscoveryServicer interface {
	StartDiscovery(req *dto.DiscoverRequest) (*dto.DiscoverResponse, error)
	Status(sessionID string) (*dto.StatusResponse, error)
	Events(sessionID string, req *dto.EventsRequest) (*dto.EventsResponse, error)
	CreatePlaylist(ctx context.Context, sessionID string) (*dto.PlaylistResponse, error)
}
