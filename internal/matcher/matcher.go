// Package matcher cross-matches event performers against a user's artists
// using fuzzy name similarity.
package matcher

import (
	"sort"

	"github.com/ReadySetJoe/branch-out/internal/domain"
)

// DefaultThreshold is the minimum confidence for an attraction/artist pair
// to count as a match.
const DefaultThreshold = 0.7

// MatchEvents cross-matches every event's attractions against the artist
// set. Pairs scoring at or above threshold become MatchedArtistEntry values
// in evaluation order (events, then attractions, then artists). Events with
// no qualifying pair are dropped. The result is ordered by MatchScore
// descending, with event ID ascending as the tie-break so equal scores have
// a deterministic order.
func MatchEvents(events []domain.EventListing, artists []domain.Artist, threshold float64) []domain.MatchedEvent {
	var matched []domain.MatchedEvent

	for _, event := range events {
		var entries []domain.MatchedArtistEntry

		for _, attraction := range event.Attractions {
			for _, artist := range artists {
				confidence := Similarity(attraction.Name, artist.Name)
				if confidence >= threshold {
					entries = append(entries, domain.MatchedArtistEntry{
						Artist:     artist,
						Attraction: attraction,
						Confidence: confidence,
					})
				}
			}
		}

		if len(entries) == 0 {
			continue
		}

		var sum float64
		for _, e := range entries {
			sum += e.Confidence
		}

		matched = append(matched, domain.MatchedEvent{
			EventListing:   event,
			MatchedArtists: entries,
			MatchScore:     sum / float64(len(entries)),
		})
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].MatchScore != matched[j].MatchScore {
			return matched[i].MatchScore > matched[j].MatchScore
		}
		return matched[i].ID < matched[j].ID
	})

	return matched
}
