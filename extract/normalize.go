package extract

import (
	"fmt"

	"oh-server/models"
)

// Normalize turns extractor output into the canonical 7-day schedule. Every
// weekday gets exactly one entry: days the extractor never saw become
// explicit Closed entries, never gaps.
func Normalize(partial models.PartialWeekly) (models.WeeklySchedule, error) {
	var ws models.WeeklySchedule

	for weekday := 0; weekday < 7; weekday++ {
		day, ok := partial[weekday]
		if !ok {
			ws[weekday] = models.DaySchedule{Closed: true}
			continue
		}
		if day.Closed {
			ws[weekday] = models.DaySchedule{Closed: true}
			continue
		}
		if err := validateMinutes(weekday, day); err != nil {
			return models.WeeklySchedule{}, err
		}
		// A close at minute 0 is "midnight ending this day's window", which
		// the crossing convention (close <= open) already encodes; nothing to
		// reinterpret here as long as the minutes are in range.
		ws[weekday] = models.DaySchedule{
			OpenMinute:  day.OpenMinute,
			CloseMinute: day.CloseMinute,
		}
	}

	return ws, nil
}

// NormalizePeriods is the structured-input entry point: callers holding raw
// periods (rather than a scraped page) get the same canonical form.
func NormalizePeriods(periods []models.RawPeriod) (models.WeeklySchedule, error) {
	return Normalize(PeriodsToPartial(periods))
}

func validateMinutes(weekday int, day models.DaySchedule) error {
	if day.OpenMinute < 0 || day.OpenMinute >= models.MinutesPerDay {
		return &models.MalformedScheduleError{
			Reason: fmt.Sprintf("weekday %d open minute %d out of range", weekday, day.OpenMinute),
		}
	}
	if day.CloseMinute < 0 || day.CloseMinute >= models.MinutesPerDay {
		return &models.MalformedScheduleError{
			Reason: fmt.Sprintf("weekday %d close minute %d out of range", weekday, day.CloseMinute),
		}
	}
	return nil
}
