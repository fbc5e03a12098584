package models

import "time"

// CacheEntry is the persisted schedule record for one place link. Entries are
// replaced wholesale on every successful refresh and are never merged
// partially; a refresh that cannot produce a full 7-day schedule leaves the
// stored entry untouched.
type CacheEntry struct {
	PlaceLink     string         `json:"place_link"`
	DisplayName   string         `json:"display_name"`
	Schedule      WeeklySchedule `json:"schedule"`
	LastRefreshed time.Time      `json:"last_refreshed"`

	// Source names the extraction strategy that produced the schedule, or
	// "manual_override" for hand-patched entries.
	Source string `json:"source,omitempty"`

	// Audit trail for manual overrides.
	OverrideID   string     `json:"override_id,omitempty"`
	OverrideNote string     `json:"override_note,omitempty"`
	OverriddenAt *time.Time `json:"overridden_at,omitempty"`
}

// Age returns how long ago the entry was last refreshed.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.LastRefreshed)
}
