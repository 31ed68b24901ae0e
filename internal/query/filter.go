// Package query applies the downstream filter, sort, and pagination stages
// to matched events. All operations are pure: inputs are never mutated.
package query

import (
	"strings"
	"time"

	"github.com/ReadySetJoe/branch-out/internal/domain"
)

// Criteria holds the independently optional filter fields. An absent field
// imposes no constraint; all present fields are ANDed.
type Criteria struct {
	DateFrom *time.Time
	DateTo   *time.Time
	PriceMin *float64
	PriceMax *float64
	Genres   []string
	Venues   []string
}

// IsEmpty reports whether no criteria are set.
func (c Criteria) IsEmpty() bool {
	return c.DateFrom == nil && c.DateTo == nil &&
		c.PriceMin == nil && c.PriceMax == nil &&
		len(c.Genres) == 0 && len(c.Venues) == 0
}

// Equal reports whether two criteria select the same subsequence.
func (c Criteria) Equal(o Criteria) bool {
	return timePtrEqual(c.DateFrom, o.DateFrom) &&
		timePtrEqual(c.DateTo, o.DateTo) &&
		floatPtrEqual(c.PriceMin, o.PriceMin) &&
		floatPtrEqual(c.PriceMax, o.PriceMax) &&
		stringsEqual(c.Genres, o.Genres) &&
		stringsEqual(c.Venues, o.Venues)
}

// Filter returns the order-preserving subsequence of events satisfying all
// present criteria. Empty criteria return the input unchanged.
func Filter(events []domain.MatchedEvent, c Criteria) []domain.MatchedEvent {
	if c.IsEmpty() {
		return events
	}

	out := make([]domain.MatchedEvent, 0, len(events))
	for _, ev := range events {
		if matchesCriteria(ev, c) {
			out = append(out, ev)
		}
	}
	return out
}

func matchesCriteria(ev domain.MatchedEvent, c Criteria) bool {
	if c.DateFrom != nil || c.DateTo != nil {
		date := dateOnly(ev.StartDate)
		if c.DateFrom != nil && date.Before(dateOnly(*c.DateFrom)) {
			return false
		}
		if c.DateTo != nil && date.After(dateOnly(*c.DateTo)) {
			return false
		}
	}

	// Price bounds only exclude events whose price data provably cannot
	// satisfy them; events without price data always pass.
	if c.PriceMin != nil || c.PriceMax != nil {
		if maxPrice, ok := ev.MaxPrice(); ok && c.PriceMin != nil && maxPrice < *c.PriceMin {
			return false
		}
		if minPrice, ok := ev.MinPrice(); ok && c.PriceMax != nil && minPrice > *c.PriceMax {
			return false
		}
	}

	if len(c.Genres) > 0 && !matchesGenre(ev, c.Genres) {
		return false
	}

	if len(c.Venues) > 0 && !matchesVenue(ev, c.Venues) {
		return false
	}

	return true
}

func matchesGenre(ev domain.MatchedEvent, genres []string) bool {
	var tags []string
	for _, cl := range ev.Classifications {
		if cl.Genre != "" {
			tags = append(tags, strings.ToLower(cl.Genre))
		}
		if cl.Subgenre != "" {
			tags = append(tags, strings.ToLower(cl.Subgenre))
		}
	}

	for _, want := range genres {
		lowered := strings.ToLower(want)
		for _, tag := range tags {
			if strings.Contains(tag, lowered) {
				return true
			}
		}
	}
	return false
}

func matchesVenue(ev domain.MatchedEvent, venues []string) bool {
	for _, want := range venues {
		lowered := strings.ToLower(want)
		for _, v := range ev.Venues {
			if strings.Contains(strings.ToLower(v.Name), lowered) {
				return true
			}
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
