package services

import (
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	redisdao "oh-server/dao/redis"
	"oh-server/models"
)

// defaultPlaces is the constant list of game locations to keep warm.
// Start it empty and populate manually as needed.
var defaultPlaces = []models.PlaceReference{}

// HoursRefresherService periodically re-scrapes opening hours for every known
// place. Refreshes run with bounded concurrency and a small delay between
// launches; the upstream page provider rate-limits bursts.
type HoursRefresherService struct {
	hoursDao          *redisdao.RedisHoursDAO
	hoursCache        *HoursCacheService
	maxConcurrency    int
	interRequestDelay time.Duration
}

// NewHoursRefresherService constructs a new Refresher with dependencies.
func NewHoursRefresherService(
	hoursDao *redisdao.RedisHoursDAO,
	hoursCache *HoursCacheService,
	maxConcurrency int,
	interRequestDelay time.Duration,
) *HoursRefresherService {
	return &HoursRefresherService{
		hoursDao:          hoursDao,
		hoursCache:        hoursCache,
		maxConcurrency:    maxConcurrency,
		interRequestDelay: interRequestDelay,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (hr *HoursRefresherService) StartPeriodicJob(interval time.Duration) {
	go hr.startPeriodicJob(interval)
}

func (hr *HoursRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[HoursRefresherService] Running periodic hours refresher job.")
		if err := hr.RefreshAll(false); err != nil {
			log.Printf("[HoursRefresherService] RefreshAll returned error: %v", err)
		} else {
			log.Println("[HoursRefresherService] RefreshAll completed successfully.")
		}
	}
}

// RefreshAll refreshes every known place: the cached entries plus the static
// defaults. With force set, staleness checks are bypassed entirely (the
// administrative "refresh all now" path).
func (hr *HoursRefresherService) RefreshAll(force bool) error {
	refs, err := hr.collectPlaces()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		log.Println("[HoursRefresherService] No places to refresh; exiting.")
		return nil
	}

	log.Printf("[HoursRefresherService] Refreshing %d places (force=%v)", len(refs), force)

	var g errgroup.Group
	g.SetLimit(hr.maxConcurrency)
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			_, stale, err := hr.hoursCache.GetSchedule(ref, force)
			if err != nil {
				log.Printf("[HoursRefresherService] Refresh failed for %s: %v", ref.PlaceLink, err)
				return nil // one bad place must not abort the sweep
			}
			if stale {
				log.Printf("[HoursRefresherService] Served stale schedule for %s", ref.PlaceLink)
			}
			return nil
		})
		time.Sleep(hr.interRequestDelay)
	}
	return g.Wait()
}

// collectPlaces merges cached place links with the static defaults, deduped
// by place link. Cached entries keep their stored display names.
func (hr *HoursRefresherService) collectPlaces() ([]models.PlaceReference, error) {
	seen := make(map[string]struct{})
	var refs []models.PlaceReference

	for _, ref := range defaultPlaces {
		if _, dup := seen[ref.PlaceLink]; dup {
			continue
		}
		seen[ref.PlaceLink] = struct{}{}
		refs = append(refs, ref)
	}

	links, err := hr.hoursDao.ListPlaceLinks()
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		name := ""
		if entry, err := hr.hoursDao.GetEntry(link); err == nil && entry != nil {
			name = entry.DisplayName
		}
		refs = append(refs, models.PlaceReference{PlaceLink: link, DisplayName: name})
	}

	return refs, nil
}
