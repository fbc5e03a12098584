package clock

import (
	"time"

	"oh-server/models"
)

// FixedClock pins time for deterministic tests.
type FixedClock struct {
	Instant models.Instant
	Time    time.Time
}

func NewFixedClock(weekday, minuteOfDay int, at time.Time) *FixedClock {
	return &FixedClock{
		Instant: models.Instant{Weekday: weekday, MinuteOfDay: minuteOfDay},
		Time:    at,
	}
}

func (c *FixedClock) Now() models.Instant {
	return c.Instant
}

func (c *FixedClock) NowTime() time.Time {
	return c.Time
}
