package discovery

import "errors"

// Discovery errors.
var (
	// ErrMissingCoordinates is returned before any retrieval is attempted
	// when the query has no geographic point.
	ErrMissingCoordinates = errors.New("latitude and longitude are required")

	// ErrSuperseded is returned when a run resumes after a newer generation
	// has started; its results must be discarded, not merged.
	ErrSuperseded = errors.New("discovery run superseded by a newer generation")
)
