package discovery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/domain"
)

var testArtists = []domain.Artist{{ID: "1", Name: "Drake"}}

// scriptedCatalog serves one scripted response per page request, in order.
type scriptedCatalog struct {
	pages    []func() (*catalog.PageResult, error)
	requests []catalog.PageRequest
}

func (s *scriptedCatalog) Events(_ context.Context, req catalog.PageRequest) (*catalog.PageResult, error) {
	i := len(s.requests)
	s.requests = append(s.requests, req)
	if i >= len(s.pages) {
		return nil, fmt.Errorf("unexpected request for page %d", i)
	}
	return s.pages[i]()
}

func okPage(totalPages, matching, other int) func() (*catalog.PageResult, error) {
	return func() (*catalog.PageResult, error) {
		var events []domain.EventListing
		for i := 0; i < matching; i++ {
			events = append(events, domain.EventListing{
				ID:          fmt.Sprintf("m%d-%d", totalPages, i),
				Name:        "Drake Show",
				Attractions: []domain.Attraction{{ID: "a1", Name: "Drake"}},
			})
		}
		for i := 0; i < other; i++ {
			events = append(events, domain.EventListing{
				ID:          fmt.Sprintf("o%d-%d", totalPages, i),
				Name:        "Unrelated Show",
				Attractions: []domain.Attraction{{ID: "a2", Name: "Someone Else"}},
			})
		}
		return &catalog.PageResult{Events: events, TotalPages: totalPages}, nil
	}
}

func failPage() func() (*catalog.PageResult, error) {
	return func() (*catalog.PageResult, error) {
		return nil, errors.New("upstream rate limit")
	}
}

func newTestOrchestrator(cat catalog.EventCatalog) *Orchestrator {
	o := NewOrchestrator(cat, 0.7, zap.NewNop())
	o.delay = 0
	return o
}

func TestOrchestrator_Run_AllPages(t *testing.T) {
	cat := &scriptedCatalog{pages: []func() (*catalog.PageResult, error){
		okPage(3, 2, 1),
		okPage(3, 1, 2),
		okPage(3, 0, 3),
	}}
	o := newTestOrchestrator(cat)

	var progress []Progress
	res, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0, Radius: 100}, testArtists,
		func(p Progress) { progress = append(progress, p) })

	assert.NoError(t, err)
	assert.False(t, res.Partial)
	assert.Equal(t, 3, res.Pages)
	assert.Len(t, cat.requests, 3)
	assert.Len(t, res.Events, 9)
	assert.Len(t, res.Matched, 3)

	// One snapshot per page; match counts reflect the accumulator before
	// each page is matched.
	assert.Equal(t, []Progress{
		{Page: 1, TotalPages: 3, MatchCount: 0},
		{Page: 2, TotalPages: 3, MatchCount: 2},
		{Page: 3, TotalPages: 3, MatchCount: 3},
	}, progress)
}

func TestOrchestrator_Run_RequestParameters(t *testing.T) {
	cat := &scriptedCatalog{pages: []func() (*catalog.PageResult, error){okPage(1, 1, 0)}}
	o := newTestOrchestrator(cat)

	_, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0, Radius: 50}, testArtists, nil)

	assert.NoError(t, err)
	assert.Len(t, cat.requests, 1)
	req := cat.requests[0]
	assert.Equal(t, 40.7, req.Lat)
	assert.Equal(t, -74.0, req.Lng)
	assert.Equal(t, 50, req.Radius)
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, PageSize, req.Size)
}

func TestOrchestrator_Run_PartialAfterMidRunFailure(t *testing.T) {
	cat := &scriptedCatalog{pages: []func() (*catalog.PageResult, error){
		okPage(3, 2, 0),
		okPage(3, 1, 0),
		failPage(),
	}}
	o := newTestOrchestrator(cat)

	res, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0}, testArtists, nil)

	assert.NoError(t, err)
	assert.True(t, res.Partial)
	assert.Contains(t, res.PartialReason, "partial results")
	assert.Len(t, res.Matched, 3, "matches from the successful pages are retained")
	assert.Len(t, cat.requests, 3, "no retry and no further pages after the failure")
}

func TestOrchestrator_Run_FirstPageFailureIsFatal(t *testing.T) {
	cat := &scriptedCatalog{pages: []func() (*catalog.PageResult, error){failPage()}}
	o := newTestOrchestrator(cat)

	res, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0}, testArtists, nil)

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Len(t, cat.requests, 1)
}

func TestOrchestrator_Run_HardPageCap(t *testing.T) {
	var pages []func() (*catalog.PageResult, error)
	for i := 0; i < 20; i++ {
		pages = append(pages, okPage(20, 1, 0))
	}
	cat := &scriptedCatalog{pages: pages}
	o := newTestOrchestrator(cat)

	res, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0}, testArtists, nil)

	assert.NoError(t, err)
	assert.Equal(t, HardPageCap, res.Pages)
	assert.Len(t, cat.requests, HardPageCap)
}

func TestOrchestrator_Run_MissingCoordinates(t *testing.T) {
	cat := &scriptedCatalog{}
	o := newTestOrchestrator(cat)

	_, err := o.Run(context.Background(), o.NewGeneration(), Query{}, testArtists, nil)

	assert.ErrorIs(t, err, ErrMissingCoordinates)
	assert.Empty(t, cat.requests, "fails before any retrieval attempt")
}

// supersedingCatalog starts a new generation while a fetch is in flight.
type supersedingCatalog struct {
	inner *scriptedCatalog
	o     *Orchestrator
	after int
}

func (s *supersedingCatalog) Events(ctx context.Context, req catalog.PageRequest) (*catalog.PageResult, error) {
	res, err := s.inner.Events(ctx, req)
	if len(s.inner.requests) == s.after {
		s.o.NewGeneration()
	}
	return res, err
}

func TestOrchestrator_Run_StaleGenerationDiscarded(t *testing.T) {
	inner := &scriptedCatalog{pages: []func() (*catalog.PageResult, error){
		okPage(3, 1, 0),
		okPage(3, 1, 0),
		okPage(3, 1, 0),
	}}
	cat := &supersedingCatalog{inner: inner, after: 2}
	o := newTestOrchestrator(inner)
	cat.o = o
	o.events = cat

	res, err := o.Run(context.Background(), o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0}, testArtists, nil)

	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Nil(t, res)
	assert.Len(t, inner.requests, 2, "stale run stops instead of fetching further pages")
}

func TestOrchestrator_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// The first page succeeds but cancels the context; the cancellation
	// surfaces at the inter-page delay and degrades the run to a partial
	// result with the collected page retained.
	cat := &scriptedCatalog{}
	cat.pages = []func() (*catalog.PageResult, error){
		func() (*catalog.PageResult, error) {
			cancel()
			return okPage(3, 1, 0)()
		},
	}
	o := NewOrchestrator(cat, 0.7, zap.NewNop())

	res, err := o.Run(ctx, o.NewGeneration(), Query{Lat: 40.7, Lng: -74.0}, testArtists, nil)

	assert.NoError(t, err)
	assert.True(t, res.Partial)
	assert.Len(t, res.Matched, 1)
	assert.Len(t, cat.requests, 1)
}
