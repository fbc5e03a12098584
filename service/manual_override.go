package services

import (
	"log"

	"github.com/google/uuid"

	"oh-server/extract"
	"oh-server/models"
)

// OverrideSchedule hand-patches a single cache entry. This replaced a pile of
// one-off edit scripts: the write goes through the same whole-entry replace
// as a refresh, and carries an audit id, note and timestamp.
func (s *HoursCacheService) OverrideSchedule(ref models.PlaceReference, partial models.PartialWeekly, note string) (*models.CacheEntry, error) {
	schedule, err := extract.Normalize(partial)
	if err != nil {
		return nil, err
	}

	lock := s.lockFor(ref.PlaceLink)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.NowTime()
	entry := &models.CacheEntry{
		PlaceLink:     ref.PlaceLink,
		DisplayName:   ref.DisplayName,
		Schedule:      schedule,
		LastRefreshed: now,
		Source:        "manual_override",
		OverrideID:    uuid.NewString(),
		OverrideNote:  note,
		OverriddenAt:  &now,
	}
	if err := s.hoursDao.SetEntry(entry); err != nil {
		return nil, err
	}

	log.Printf("[HoursCacheService] Manual override %s applied for %s (%s)",
		entry.OverrideID, ref.PlaceLink, note)
	return entry, nil
}
