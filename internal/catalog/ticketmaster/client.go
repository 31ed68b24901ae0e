// Package ticketmaster adapts the Ticketmaster Discovery API to the event
// catalog interface.
package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/internal/catalog"
	"github.com/ReadySetJoe/branch-out/internal/config"
	"github.com/ReadySetJoe/branch-out/internal/domain"
)

const dateTimeFormat = "2006-01-02T15:04:05Z"

// Client is an explicitly constructed Discovery API client. Credentials
// live on the instance, never in package state.
type Client struct {
	httpClient *http.Client
	config     config.Ticketmaster
	log        *zap.Logger
}

// NewClient creates a new Discovery API client.
func NewClient(cfg config.Ticketmaster, log *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		config:     cfg,
		log:        log,
	}
}

// Events retrieves one page of events around a geographic point.
func (c *Client) Events(ctx context.Context, req catalog.PageRequest) (*catalog.PageResult, error) {
	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("latlong", fmt.Sprintf("%f,%f", req.Lat, req.Lng))
	params.Set("unit", "miles")
	params.Set("page", fmt.Sprintf("%d", req.Page))
	params.Set("size", fmt.Sprintf("%d", req.Size))
	if req.Radius > 0 {
		params.Set("radius", fmt.Sprintf("%d", req.Radius))
	}
	if req.DateFrom != nil {
		params.Set("startDateTime", req.DateFrom.UTC().Format(dateTimeFormat))
	}
	if req.DateTo != nil {
		params.Set("endDateTime", req.DateTo.UTC().Format(dateTimeFormat))
	}

	endpoint := fmt.Sprintf("%s/events.json?%s", c.config.BaseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build events request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("event catalog returned status %d", resp.StatusCode)
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	events := make([]domain.EventListing, 0, len(payload.Embedded.Events))
	for _, we := range payload.Embedded.Events {
		events = append(events, we.toDomain())
	}

	c.log.Debug("Fetched events page",
		zap.Int("page", req.Page),
		zap.Int("events", len(events)),
		zap.Int("total_pages", payload.Page.TotalPages))

	return &catalog.PageResult{Events: events, TotalPages: payload.Page.TotalPages}, nil
}

// Wire types mirror the Discovery API payload.

type eventsResponse struct {
	Embedded struct {
		Events []wireEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

type wireEvent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
	Embedded struct {
		Attractions []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"attractions"`
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			State struct {
				Name      string `json:"name"`
				StateCode string `json:"stateCode"`
			} `json:"state"`
		} `json:"venues"`
	} `json:"_embedded"`
	Classifications []struct {
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
		SubGenre struct {
			Name string `json:"name"`
		} `json:"subGenre"`
	} `json:"classifications"`
}

func (we wireEvent) toDomain() domain.EventListing {
	ev := domain.EventListing{
		ID:        we.ID,
		Name:      we.Name,
		URL:       we.URL,
		StartTime: we.Dates.Start.LocalTime,
	}

	// Malformed dates are left as zero values rather than failing the page.
	if t, err := time.Parse("2006-01-02", we.Dates.Start.LocalDate); err == nil {
		ev.StartDate = t
	}

	for _, img := range we.Images {
		ev.Images = append(ev.Images, domain.Image{URL: img.URL})
	}
	for _, pr := range we.PriceRanges {
		ev.PriceRanges = append(ev.PriceRanges, domain.PriceRange{Min: pr.Min, Max: pr.Max, Currency: pr.Currency})
	}
	for _, a := range we.Embedded.Attractions {
		ev.Attractions = append(ev.Attractions, domain.Attraction{ID: a.ID, Name: a.Name})
	}
	for _, v := range we.Embedded.Venues {
		ev.Venues = append(ev.Venues, domain.Venue{Name: v.Name, City: v.City.Name, State: v.State.Name})
	}
	for _, cl := range we.Classifications {
		if cl.Genre.Name == "" && cl.SubGenre.Name == "" {
			continue
		}
		ev.Classifications = append(ev.Classifications, domain.Classification{
			Genre:    cl.Genre.Name,
			Subgenre: cl.SubGenre.Name,
		})
	}

	return ev
}
