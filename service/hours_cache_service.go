package services

import (
	"log"
	"sync"
	"time"

	"oh-server/api/maps"
	"oh-server/clock"
	redisdao "oh-server/dao/redis"
	"oh-server/extract"
	"oh-server/models"
)

// HoursCacheService owns the opening-hours cache: it serves cached schedules,
// runs the resolve -> extract -> normalize pipeline on misses or stale
// entries, and is the only component allowed to downgrade a refresh failure
// into a stale-but-served schedule.
type HoursCacheService struct {
	hoursDao           *redisdao.RedisHoursDAO
	mapsAPI            maps.MapsPageAPI
	extractor          *extract.Extractor
	clock              clock.Clock
	stalenessThreshold time.Duration

	// refreshLocks serializes refreshes per place link so two concurrent
	// refreshes cannot interleave their whole-entry writes. Refreshes for
	// different links run independently.
	mu           sync.Mutex
	refreshLocks map[string]*sync.Mutex
}

// NewHoursCacheService constructs the cache with injected dependencies so
// tests can pin time and fake page fetches.
func NewHoursCacheService(
	hoursDao *redisdao.RedisHoursDAO,
	mapsAPI maps.MapsPageAPI,
	extractor *extract.Extractor,
	clk clock.Clock,
	stalenessThreshold time.Duration,
) *HoursCacheService {
	return &HoursCacheService{
		hoursDao:           hoursDao,
		mapsAPI:            mapsAPI,
		extractor:          extractor,
		clock:              clk,
		stalenessThreshold: stalenessThreshold,
		refreshLocks:       make(map[string]*sync.Mutex),
	}
}

// GetSchedule returns the canonical weekly schedule for a place. The second
// return value flags a degraded answer: a refresh failed and a stale cached
// schedule was served instead. Staleness past the threshold triggers an
// opportunistic refresh but never invalidates an entry by itself.
func (s *HoursCacheService) GetSchedule(ref models.PlaceReference, forceRefresh bool) (models.WeeklySchedule, bool, error) {
	if !forceRefresh {
		entry, err := s.hoursDao.GetEntry(ref.PlaceLink)
		if err != nil {
			log.Printf("[HoursCacheService] Cache read failed for %s: %v", ref.PlaceLink, err)
		} else if entry != nil && entry.Age(s.clock.NowTime()) <= s.stalenessThreshold {
			return entry.Schedule, false, nil
		}
	}

	lock := s.lockFor(ref.PlaceLink)
	lock.Lock()
	defer lock.Unlock()

	// A refresh for this link may have finished while we waited on the lock.
	prior, err := s.hoursDao.GetEntry(ref.PlaceLink)
	if err != nil {
		log.Printf("[HoursCacheService] Cache read failed for %s: %v", ref.PlaceLink, err)
		prior = nil
	}
	if !forceRefresh && prior != nil && prior.Age(s.clock.NowTime()) <= s.stalenessThreshold {
		return prior.Schedule, false, nil
	}

	entry, refreshErr := s.refresh(ref)
	if refreshErr == nil {
		return entry.Schedule, false, nil
	}

	// Never block gameplay on a transient scrape failure: a prior entry, no
	// matter how old, beats no answer at all.
	if prior != nil {
		log.Printf("[HoursCacheService] Refresh failed for %s, serving stale entry from %s: %v",
			ref.PlaceLink, prior.LastRefreshed.Format(time.RFC3339), refreshErr)
		return prior.Schedule, true, nil
	}

	return models.WeeklySchedule{}, false, refreshErr
}

// GetEntry exposes the raw cache entry for inspection surfaces.
func (s *HoursCacheService) GetEntry(placeLink string) (*models.CacheEntry, error) {
	return s.hoursDao.GetEntry(placeLink)
}

func (s *HoursCacheService) refresh(ref models.PlaceReference) (*models.CacheEntry, error) {
	doc, err := s.mapsAPI.ResolvePlacePage(ref.PlaceLink)
	if err != nil {
		return nil, err
	}

	partial, source, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	schedule, err := extract.Normalize(partial)
	if err != nil {
		// Normalizer invariant violation is an internal defect; it is logged
		// and treated exactly like any other failed refresh.
		log.Printf("[HoursCacheService] Normalization defect for %s: %v", ref.PlaceLink, err)
		return nil, err
	}

	entry := &models.CacheEntry{
		PlaceLink:     ref.PlaceLink,
		DisplayName:   ref.DisplayName,
		Schedule:      schedule,
		LastRefreshed: s.clock.NowTime(),
		Source:        source,
	}
	if err := s.hoursDao.SetEntry(entry); err != nil {
		return nil, err
	}

	log.Printf("[HoursCacheService] Refreshed hours for %s via %s", ref.PlaceLink, source)
	return entry, nil
}

func (s *HoursCacheService) lockFor(placeLink string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.refreshLocks[placeLink]
	if !ok {
		lock = &sync.Mutex{}
		s.refreshLocks[placeLink] = lock
	}
	return lock
}
