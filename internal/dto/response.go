package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"lat is required"`
}

// DiscoverResponse acknowledges a started discovery run.
type DiscoverResponse struct {
	SessionID string `json:"session_id" example:"6f1c2a94-9c35-4d2a-8a70-3f2b7f9e4a11"`
	Status    string `json:"status" example:"scanning"`
}

// ScanProgress is the per-page progress snapshot.
type ScanProgress struct {
	Page       int `json:"page" example:"2"`
	TotalPages int `json:"total_pages" example:"5"`
	MatchCount int `json:"match_count" example:"17"`
}

// StatusResponse reports the state of a discovery session.
type StatusResponse struct {
	SessionID   string        `json:"session_id"`
	Status      string        `json:"status" example:"complete"`
	Reason      string        `json:"reason,omitempty" example:"showing partial results (200 events from 2 of 5 pages)"`
	Progress    *ScanProgress `json:"progress,omitempty"`
	ArtistCount int           `json:"artist_count" example:"120"`
	EventCount  int           `json:"event_count" example:"412"`
	MatchCount  int           `json:"match_count" example:"23"`
}

// MatchedArtistData is one matched attraction/artist pair.
type MatchedArtistData struct {
	ArtistID       string  `json:"artist_id"`
	ArtistName     string  `json:"artist_name"`
	AttractionName string  `json:"attraction_name"`
	Confidence     float64 `json:"confidence" example:"0.857"`
}

// PriceRangeData is one ticket price band.
type PriceRangeData struct {
	Min      float64 `json:"min" example:"59.5"`
	Max      float64 `json:"max" example:"250"`
	Currency string  `json:"currency" example:"USD"`
}

// VenueData is one venue reference.
type VenueData struct {
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// MatchedEventData is one event in the result window.
type MatchedEventData struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	URL            string              `json:"url"`
	Images         []string            `json:"images,omitempty"`
	Date           string              `json:"date" example:"2026-10-03"`
	Time           string              `json:"time,omitempty" example:"20:00:00"`
	PriceRanges    []PriceRangeData    `json:"price_ranges,omitempty"`
	Venues         []VenueData         `json:"venues,omitempty"`
	Genres         []string            `json:"genres,omitempty"`
	MatchedArtists []MatchedArtistData `json:"matched_artists"`
	MatchScore     float64             `json:"match_score" example:"0.93"`
}

// EventsResponse is the paginated result window.
type EventsResponse struct {
	Events        []MatchedEventData `json:"events"`
	CurrentPage   int                `json:"current_page" example:"0"`
	TotalPages    int                `json:"total_pages" example:"2"`
	TotalMatches  int                `json:"total_matches" example:"23"`
	Partial       bool               `json:"partial,omitempty"`
	PartialReason string             `json:"partial_reason,omitempty"`
}

// PlaylistResponse is a created playlist.
type PlaylistResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// PlaceData is one geocoding result.
type PlaceData struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// GeocodeResponse is a location search result set.
type GeocodeResponse struct {
	Places []PlaceData `json:"places"`
}
