package clock

import (
	"log"
	"time"

	"oh-server/models"
)

// Clock resolves "now" into the target region's civil calendar. Injected
// everywhere an Instant is needed so tests can pin time.
type Clock interface {
	Now() models.Instant
	NowTime() time.Time
}

// RegionClock computes instants in a fixed civil timezone. Conversion goes
// through the zone's calendar fields, so seasonal clock changes are handled
// without any fixed-offset arithmetic.
type RegionClock struct {
	location *time.Location
}

// NewRegionClock loads the named timezone. Loading never fails the caller:
// when the zone database is unavailable the clock falls back to UTC, which
// produces wrong weekday/minute answers near midnight, so the fallback is
// logged loudly.
func NewRegionClock(timezone string) *RegionClock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("[RegionClock] Failed to load timezone %q, falling back to UTC: %v", timezone, err)
		loc = time.UTC
	}
	return &RegionClock{location: loc}
}

func (c *RegionClock) Now() models.Instant {
	return InstantAt(time.Now(), c.location)
}

func (c *RegionClock) NowTime() time.Time {
	return time.Now().In(c.location)
}

// InstantAt converts an absolute time into a weekday/minute-of-day instant
// in the given location.
func InstantAt(t time.Time, loc *time.Location) models.Instant {
	local := t.In(loc)
	return models.Instant{
		Weekday:     int(local.Weekday()),
		MinuteOfDay: local.Hour()*60 + local.Minute(),
	}
}
