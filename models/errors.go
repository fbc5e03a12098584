package models

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned by the extractor when no strategy recovered
// enough distinct weekdays to trust the result.
var ErrInsufficientData = errors.New("insufficient opening hours data")

// FetchFailure is a recoverable page-fetch failure: network error, non-2xx
// status or a broken redirect chain. Callers may retry later or serve a
// stale cache entry.
type FetchFailure struct {
	URL        string
	StatusCode int
	Err        error
}

func (f *FetchFailure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: status %d", f.URL, f.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", f.URL, f.Err)
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// MalformedScheduleError signals a normalizer invariant violation. It marks
// an internal defect and must never reach a caller as a schedule; the cache
// treats it like any other refresh failure.
type MalformedScheduleError struct {
	Reason string
}

func (m *MalformedScheduleError) Error() string {
	return "malformed schedule: " + m.Reason
}
