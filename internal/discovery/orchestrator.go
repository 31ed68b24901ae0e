// Package discovery drives bounded, sequential, delay-throttled paged
// retrieval from the event catalog, matching each page against the user's
// artists as it arrives.
package discovery

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/domain"
	"github.com/ReadySetJoe/branch-out/internal/matcher"
)

const (
	// HardPageCap bounds a run regardless of what the catalog reports.
	HardPageCap = 5

	// PageSize is the fixed retrieval page size, chosen to minimize request
	// count against the provider.
	PageSize = 200

	// pageDelay is the fixed inter-page pause respecting the provider's
	// rate limit. Not adaptive.
	pageDelay = 350 * time.Millisecond
)

// Query is one geographic discovery request.
type Query struct {
	Lat      float64
	Lng      float64
	Radius   int
	DateFrom *time.Time
	DateTo   *time.Time
}

// Progress is the snapshot published after each successfully retrieved
// page. MatchCount is the accumulated count before the page is matched.
type Progress struct {
	Page       int
	TotalPages int
	MatchCount int
}

// Result is the accumulated outcome of one run. Partial is set when a page
// failure stopped the run after at least one page had succeeded.
type Result struct {
	Events        []domain.EventListing
	Matched       []domain.MatchedEvent
	Pages         int
	Partial       bool
	PartialReason string
}

// Orchestrator retrieves event pages sequentially, one request in flight at
// a time, and hands each page to the matcher. Runs are identified by
// generation tokens; starting a new generation invalidates in-flight runs.
type Orchestrator struct {
	events     catalog.EventCatalog
	threshold  float64
	delay      time.Duration
	generation atomic.Uint64
	log        *zap.Logger
}

// NewOrchestrator creates an orchestrator matching at the given threshold.
func NewOrchestrator(events catalog.EventCatalog, threshold float64, log *zap.Logger) *Orchestrator {
	if threshold <= 0 {
		threshold = matcher.DefaultThreshold
	}
	return &Orchestrator{
		events:    events,
		threshold: threshold,
		delay:     pageDelay,
		log:       log,
	}
}

// NewGeneration invalidates any in-flight run and returns the token for
// the next one.
func (o *Orchestrator) NewGeneration() uint64 {
	return o.generation.Add(1)
}

func (o *Orchestrator) stale(gen uint64) bool {
	return o.generation.Load() != gen
}

// Run executes one retrieval run under the given generation token. A page
// failure with an empty accumulator is fatal; after any success it degrades
// the run to a partial result with everything collected so far. Failed
// pages are never retried. onProgress, when non-nil, receives one snapshot
// per retrieved page.
func (o *Orchestrator) Run(ctx context.Context, gen uint64, q Query, artists []domain.Artist, onProgress func(Progress)) (*Result, error) {
	if q.Lat == 0 || q.Lng == 0 {
		return nil, ErrMissingCoordinates
	}

	res := &Result{}
	totalPages := 1

	// A 1-token limiter paced at the fixed delay: the first page goes out
	// immediately, every later page waits out the remainder of the window.
	limiter := rate.NewLimiter(rate.Every(o.delay), 1)

	for page := 0; page < totalPages; page++ {
		if err := limiter.Wait(ctx); err != nil {
			return o.stopped(res, page, totalPages, err)
		}

		pageResult, err := o.events.Events(ctx, catalog.PageRequest{
			Lat:      q.Lat,
			Lng:      q.Lng,
			Radius:   q.Radius,
			DateFrom: q.DateFrom,
			DateTo:   q.DateTo,
			Page:     page,
			Size:     PageSize,
		})
		// The fetch was a suspension point; a newer generation may have
		// started while it was in flight.
		if o.stale(gen) {
			return nil, ErrSuperseded
		}
		if err != nil {
			return o.stopped(res, page, totalPages, err)
		}

		if page == 0 {
			totalPages = pageResult.TotalPages
			if totalPages > HardPageCap {
				totalPages = HardPageCap
			}
			if totalPages < 1 {
				totalPages = 1
			}
		}

		if onProgress != nil {
			onProgress(Progress{Page: page + 1, TotalPages: totalPages, MatchCount: len(res.Matched)})
		}

		res.Events = append(res.Events, pageResult.Events...)
		if len(pageResult.Events) > 0 {
			res.Matched = append(res.Matched, matcher.MatchEvents(pageResult.Events, artists, o.threshold)...)
		}
		res.Pages = page + 1

		o.log.Debug("Retrieved event page",
			zap.Int("page", page+1),
			zap.Int("total_pages", totalPages),
			zap.Int("events", len(pageResult.Events)),
			zap.Int("accumulated_matches", len(res.Matched)))
	}

	if o.stale(gen) {
		return nil, ErrSuperseded
	}

	return res, nil
}

// stopped resolves a page failure: fatal when nothing has been collected,
// otherwise a partial result that keeps the accumulated data.
func (o *Orchestrator) stopped(res *Result, page, totalPages int, err error) (*Result, error) {
	if len(res.Events) == 0 {
		return nil, fmt.Errorf("failed to fetch events page %d: %w", page, err)
	}

	res.Partial = true
	res.PartialReason = fmt.Sprintf("showing partial results (%d events from %d of %d pages)",
		len(res.Events), page, totalPages)

	o.log.Warn("Stopping retrieval with partial results",
		zap.Int("failed_page", page),
		zap.Int("total_pages", totalPages),
		zap.Int("events", len(res.Events)),
		zap.Error(err))

	return res, nil
}
