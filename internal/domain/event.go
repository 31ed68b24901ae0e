package domain

import "time"

// PriceRange is one ticket price band reported by the event catalog.
type PriceRange struct {
	Min      float64
	Max      float64
	Currency string
}

// Venue is a venue associated with an event.
type Venue struct {
	Name  string
	City  string
	State string
}

// Attraction is a performing act listed against an event by the event catalog.
type Attraction struct {
	ID   string
	Name string
}

// Classification is a genre tag attached to an event.
type Classification struct {
	Genre    string
	Subgenre string
}

// EventListing represents one event as consumed from the event catalog.
// All optional collections may be empty; consumers treat missing data as
// "no constraint", never as an error.
type EventListing struct {
	ID              string
	Name            string
	URL             string
	Images          []Image
	StartDate       time.Time
	StartTime       string
	PriceRanges     []PriceRange
	Venues          []Venue
	Attractions     []Attraction
	Classifications []Classification
}

// MinPrice returns the lowest minimum across the event's price ranges.
// The second return value is false when the event has no price data.
func (e EventListing) MinPrice() (float64, bool) {
	if len(e.PriceRanges) == 0 {
		return 0, false
	}
	min := e.PriceRanges[0].Min
	for _, p := range e.PriceRanges[1:] {
		if p.Min < min {
			min = p.Min
		}
	}
	return min, true
}

// MaxPrice returns the highest maximum across the event's price ranges.
// The second return value is false when the event has no price data.
func (e EventListing) MaxPrice() (float64, bool) {
	if len(e.PriceRanges) == 0 {
		return 0, false
	}
	max := e.PriceRanges[0].Max
	for _, p := range e.PriceRanges[1:] {
		if p.Max > max {
			max = p.Max
		}
	}
	return max, true
}

// MatchedArtistEntry records one attraction/artist pair that met the match
// threshold. Confidence is the similarity score between the two names.
type MatchedArtistEntry struct {
	Artist     Artist
	Attraction Attraction
	Confidence float64
}

// MatchedEvent is an EventListing that matched at least one of the user's
// artists. MatchedArtists preserves discovery order and is never empty.
// MatchScore is the mean confidence over MatchedArtists. A MatchedEvent is
// never mutated after creation.
type MatchedEvent struct {
	EventListing

	MatchedArtists []MatchedArtistEntry
	MatchScore     float64
}
