package query

import (
	"math"
	"sort"
	"strings"

	"github.com/ReadySetJoe/branch-out/internal/domain"
)

// SortKey selects the ordering applied by Sort.
type SortKey string

// Supported sort keys.
const (
	SortByDate  SortKey = "date"
	SortByMatch SortKey = "match"
	SortByPrice SortKey = "price"
	SortByName  SortKey = "name"
)

// ParseSortKey maps a request parameter to a SortKey, defaulting to date.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByMatch, SortByPrice, SortByName:
		return SortKey(s)
	default:
		return SortByDate
	}
}

// Sort returns a sorted copy of events ordered by the given key. The input
// slice is left untouched.
func Sort(events []domain.MatchedEvent, key SortKey) []domain.MatchedEvent {
	sorted := make([]domain.MatchedEvent, len(events))
	copy(sorted, events)

	switch key {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		})
	case SortByMatch:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MatchScore > sorted[j].MatchScore
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sortPrice(sorted[i]) < sortPrice(sorted[j])
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	}

	return sorted
}

// sortPrice is the event's minimum price, with unpriced events pushed after
// every priced one.
func sortPrice(ev domain.MatchedEvent) float64 {
	if price, ok := ev.MinPrice(); ok {
		return price
	}
	return math.Inf(1)
}
