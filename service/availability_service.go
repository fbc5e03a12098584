package services

import (
	"oh-server/clock"
	"oh-server/models"
)

// IsOpen reports whether a venue with the given schedule is open at the given
// instant. Both today's and yesterday's entries are consulted: a window that
// crossed midnight yesterday is still running during today's early minutes,
// and today's own entry says nothing about that.
func IsOpen(ws models.WeeklySchedule, at models.Instant) bool {
	today := ws[at.Weekday]
	if !today.Closed {
		if today.CrossesMidnight() {
			if at.MinuteOfDay >= today.OpenMinute {
				return true
			}
		} else if at.MinuteOfDay >= today.OpenMinute && at.MinuteOfDay < today.CloseMinute {
			return true
		}
	}

	yesterday := ws[(at.Weekday+6)%7]
	if yesterday.CrossesMidnight() && at.MinuteOfDay < yesterday.CloseMinute {
		return true
	}

	return false
}

// MinutesUntilClose returns how many minutes remain until the venue closes,
// or nil when it is closed at the instant. For a midnight-crossing window
// still on the pre-midnight side, the remainder of today plus the next-day
// close offset is returned.
func MinutesUntilClose(ws models.WeeklySchedule, at models.Instant) *int {
	today := ws[at.Weekday]
	if !today.Closed {
		if today.CrossesMidnight() {
			if at.MinuteOfDay >= today.OpenMinute {
				minutes := (models.MinutesPerDay - at.MinuteOfDay) + today.CloseMinute
				return &minutes
			}
		} else if at.MinuteOfDay >= today.OpenMinute && at.MinuteOfDay < today.CloseMinute {
			minutes := today.CloseMinute - at.MinuteOfDay
			return &minutes
		}
	}

	yesterday := ws[(at.Weekday+6)%7]
	if yesterday.CrossesMidnight() && at.MinuteOfDay < yesterday.CloseMinute {
		minutes := yesterday.CloseMinute - at.MinuteOfDay
		return &minutes
	}

	return nil
}

// AvailabilityService answers "is this place open right now" against the
// injected region clock.
type AvailabilityService struct {
	clock clock.Clock
}

// NewAvailabilityService constructs an AvailabilityService with its clock dependency.
func NewAvailabilityService(clk clock.Clock) *AvailabilityService {
	return &AvailabilityService{clock: clk}
}

// StatusNow evaluates a schedule at the clock's current instant.
func (s *AvailabilityService) StatusNow(ws models.WeeklySchedule) (bool, *int) {
	at := s.clock.Now()
	return IsOpen(ws, at), MinutesUntilClose(ws, at)
}
