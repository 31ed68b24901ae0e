package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/config"
	"github.com/ReadySetJoe/branch-out/internal/discovery"
	"github.com/ReadySetJoe/branch-out/internal/domain"
	"github.com/ReadySetJoe/branch-out/internal/dto"
	"github.com/ReadySetJoe/branch-out/internal/query"
)

const dateFormat = "2006-01-02"

// defaultRadius (miles) applies when a request does not set one.
const defaultRadius = 100

// DiscoveryService ties the artist catalog, the retrieval orchestrator,
// and the downstream filter/sort/paginate stages together per session.
type DiscoveryService struct {
	artists      catalog.ArtistCatalog
	playlists    catalog.PlaylistBuilder
	orchestrator *discovery.Orchestrator
	sessions     *sessionStore
	pageSize     int
	log          *zap.Logger
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(artists catalog.ArtistCatalog, playlists catalog.PlaylistBuilder, orch *discovery.Orchestrator, cfg config.Discovery, log *zap.Logger) (*DiscoveryService, error) {
	sessions, err := newSessionStore(cfg.SessionLimit)
	if err != nil {
		return nil, err
	}

	pageSize := cfg.EventsPerPage
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	return &DiscoveryService{
		artists:      artists,
		playlists:    playlists,
		orchestrator: orch,
		sessions:     sessions,
		pageSize:     pageSize,
		log:          log,
	}, nil
}

// StartDiscovery validates the request, registers a new session, and runs
// the retrieval pipeline in the background. Starting a new discovery
// supersedes any run still in flight.
func (s *DiscoveryService) StartDiscovery(req *dto.DiscoverRequest) (*dto.DiscoverResponse, error) {
	if req.Lat == 0 || req.Lng == 0 {
		return nil, discovery.ErrMissingCoordinates
	}

	q := discovery.Query{Lat: req.Lat, Lng: req.Lng, Radius: req.Radius}
	if q.Radius <= 0 {
		q.Radius = defaultRadius
	}

	var err error
	if q.DateFrom, err = parseDate(req.DateFrom); err != nil {
		return nil, err
	}
	if q.DateTo, err = parseDate(req.DateTo); err != nil {
		return nil, err
	}

	sess := &session{
		id:         uuid.NewString(),
		generation: s.orchestrator.NewGeneration(),
		status:     StatusScanning,
		lastSort:   query.SortByDate,
	}
	s.sessions.add(sess)

	s.log.Info("Starting discovery",
		zap.String("session_id", sess.id),
		zap.Float64("lat", q.Lat),
		zap.Float64("lng", q.Lng),
		zap.Int("radius", q.Radius))

	go s.run(sess, q)

	return &dto.DiscoverResponse{SessionID: sess.id, Status: sess.status}, nil
}

// run executes the artist collection and paged retrieval for one session.
func (s *DiscoveryService) run(sess *session, q discovery.Query) {
	ctx := context.Background()

	top, err := s.artists.TopArtists(ctx)
	if err != nil {
		sess.finish(nil, StatusFailed, fmt.Sprintf("error fetching artists: %v", err))
		s.log.Error("Failed to fetch top artists", zap.String("session_id", sess.id), zap.Error(err))
		return
	}

	ids := make([]string, 0, len(top))
	for _, a := range top {
		ids = append(ids, a.ID)
	}

	related, err := s.artists.RelatedArtists(ctx, ids)
	if err != nil {
		sess.finish(nil, StatusFailed, fmt.Sprintf("error fetching artists: %v", err))
		s.log.Error("Failed to fetch related artists", zap.String("session_id", sess.id), zap.Error(err))
		return
	}

	// Combine top and related, first-seen entry wins per artist ID.
	seen := make(map[string]struct{}, len(top)+len(related))
	all := top[:len(top):len(top)]
	for _, a := range top {
		seen[a.ID] = struct{}{}
	}
	for _, a := range related {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		all = append(all, a)
	}
	sess.setArtists(all)

	result, err := s.orchestrator.Run(ctx, sess.generation, q, all, sess.setProgress)
	switch {
	case errors.Is(err, discovery.ErrSuperseded):
		sess.finish(nil, StatusFailed, "superseded by a newer discovery run")
		s.log.Info("Discarding superseded discovery run", zap.String("session_id", sess.id))
	case err != nil:
		sess.finish(nil, StatusFailed, fmt.Sprintf("error fetching events: %v", err))
		s.log.Error("Discovery run failed", zap.String("session_id", sess.id), zap.Error(err))
	case result.Partial:
		sess.finish(result, StatusPartial, result.PartialReason)
		s.log.Warn("Discovery run finished with partial results",
			zap.String("session_id", sess.id),
			zap.String("reason", result.PartialReason))
	default:
		sess.finish(result, StatusComplete, "")
		s.log.Info("Discovery run complete",
			zap.String("session_id", sess.id),
			zap.Int("events", len(result.Events)),
			zap.Int("matches", len(result.Matched)))
	}
}

// Status reports the session's lifecycle state and latest progress snapshot.
func (s *DiscoveryService) Status(sessionID string) (*dto.StatusResponse, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	resp := &dto.StatusResponse{
		SessionID:   sess.id,
		Status:      sess.status,
		Reason:      sess.reason,
		ArtistCount: len(sess.artists),
	}
	if sess.progress != nil {
		resp.Progress = &dto.ScanProgress{
			Page:       sess.progress.Page,
			TotalPages: sess.progress.TotalPages,
			MatchCount: sess.progress.MatchCount,
		}
	}
	if sess.result != nil {
		resp.EventCount = len(sess.result.Events)
		resp.MatchCount = len(sess.result.Matched)
	}

	return resp, nil
}

// Events returns the filtered, sorted, paginated result window. A changed
// filter or sort selection resets the active page to 0.
func (s *DiscoveryService) Events(sessionID string, req *dto.EventsRequest) (*dto.EventsResponse, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	criteria, err := toCriteria(req)
	if err != nil {
		return nil, err
	}
	sortKey := query.ParseSortKey(req.Sort)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.result == nil {
		if sess.status == StatusFailed {
			return nil, fmt.Errorf("discovery failed: %s", sess.reason)
		}
		return nil, ErrScanInProgress
	}

	page := req.Page
	if !criteria.Equal(sess.lastCriteria) || sortKey != sess.lastSort {
		page = 0
	}
	sess.lastCriteria = criteria
	sess.lastSort = sortKey
	sess.page = page

	filtered := query.Filter(sess.result.Matched, criteria)
	sorted := query.Sort(filtered, sortKey)
	window := query.Paginate(sorted, page, s.pageSize)

	events := make([]dto.MatchedEventData, 0, len(window.Items))
	for _, ev := range window.Items {
		events = append(events, toEventData(ev))
	}

	return &dto.EventsResponse{
		Events:        events,
		CurrentPage:   page,
		TotalPages:    window.TotalPages,
		TotalMatches:  len(sorted),
		Partial:       sess.result.Partial,
		PartialReason: sess.result.PartialReason,
	}, nil
}

// CreatePlaylist builds a playlist from the unique matched artists of a
// finished session, in discovery order.
func (s *DiscoveryService) CreatePlaylist(ctx context.Context, sessionID string) (*dto.PlaylistResponse, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	result := sess.result
	sess.mu.Unlock()

	if result == nil {
		return nil, ErrScanInProgress
	}

	seen := make(map[string]struct{})
	var artistIDs []string
	for _, ev := range result.Matched {
		for _, entry := range ev.MatchedArtists {
			if _, ok := seen[entry.Artist.ID]; ok {
				continue
			}
			seen[entry.Artist.ID] = struct{}{}
			artistIDs = append(artistIDs, entry.Artist.ID)
		}
	}
	if len(artistIDs) == 0 {
		return nil, ErrNoMatches
	}

	name := fmt.Sprintf("Branch Out - %s", time.Now().Format("Jan 2, 2006"))
	playlist, err := s.playlists.CreatePlaylist(ctx, name, artistIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	s.log.Info("Playlist created",
		zap.String("session_id", sessionID),
		zap.String("playlist_id", playlist.ID),
		zap.Int("artists", len(artistIDs)))

	return &dto.PlaylistResponse{ID: playlist.ID, Name: playlist.Name, URI: playlist.URI}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return &t, nil
}

func toCriteria(req *dto.EventsRequest) (query.Criteria, error) {
	c := query.Criteria{
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		Genres:   req.Genres,
		Venues:   req.Venues,
	}

	var err error
	if c.DateFrom, err = parseDate(req.DateFrom); err != nil {
		return query.Criteria{}, err
	}
	if c.DateTo, err = parseDate(req.DateTo); err != nil {
		return query.Criteria{}, err
	}

	return c, nil
}

func toEventData(ev domain.MatchedEvent) dto.MatchedEventData {
	data := dto.MatchedEventData{
		ID:         ev.ID,
		Name:       ev.Name,
		URL:        ev.URL,
		Date:       ev.StartDate.Format(dateFormat),
		Time:       ev.StartTime,
		MatchScore: ev.MatchScore,
	}

	for _, img := range ev.Images {
		data.Images = append(data.Images, img.URL)
	}
	for _, pr := range ev.PriceRanges {
		data.PriceRanges = append(data.PriceRanges, dto.PriceRangeData{Min: pr.Min, Max: pr.Max, Currency: pr.Currency})
	}
	for _, v := range ev.Venues {
		data.Venues = append(data.Venues, dto.VenueData{Name: v.Name, City: v.City, State: v.State})
	}
	for _, cl := range ev.Classifications {
		if cl.Genre != "" {
			data.Genres = append(data.Genres, cl.Genre)
		}
		if cl.Subgenre != "" {
			data.Genres = append(data.Genres, cl.Subgenre)
		}
	}
	for _, entry := range ev.MatchedArtists {
		data.MatchedArtists = append(data.MatchedArtists, dto.MatchedArtistData{
			ArtistID:       entry.Artist.ID,
			ArtistName:     entry.Artist.Name,
			AttractionName: entry.Attraction.Name,
			Confidence:     entry.Confidence,
		})
	}

	return data
}
