package query

import "github.com/ReadySetJoe/branch-out/internal/domain"

// DefaultPageSize is the presentation window size.
const DefaultPageSize = 12

// Page is one presentation window over a filtered, sorted sequence.
type Page struct {
	Items      []domain.MatchedEvent
	TotalPages int
}

// Paginate windows events into fixed-size pages. pageIndex is zero-based;
// an out-of-range index yields an empty page rather than an error. Resetting
// the active page when filters or sorting change is the caller's job.
func Paginate(events []domain.MatchedEvent, pageIndex, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(events) + pageSize - 1) / pageSize

	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(events) {
		return Page{Items: []domain.MatchedEvent{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(events) {
		end = len(events)
	}

	return Page{Items: events[start:end], TotalPages: totalPages}
}
