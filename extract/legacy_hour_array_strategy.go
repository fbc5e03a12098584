package extract

import (
	"regexp"
	"strconv"

	"oh-server/models"
)

// legacyDayPattern matches the oldest observed embedding, with bare hour
// integers nested in arrays:
//
//	"Saturday",6,[...],[["9:30AM–4PM",[[9],[16]]]]
//
// Only the bracketed open/close hours are trusted; the leading text repeats
// them with inconsistent formatting.
var legacyDayPattern = regexp.MustCompile(
	`"(Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)",\d+,\[[^\]]*\],\[\["[^"]*",\[\[(\d{1,2})(?:,(\d{1,2}))?\],\[(\d{1,2})(?:,(\d{1,2}))?\]\]`)

// LegacyHourArrayStrategy reads the legacy 24-hour array embedding.
type LegacyHourArrayStrategy struct{}

func NewLegacyHourArrayStrategy() *LegacyHourArrayStrategy {
	return &LegacyHourArrayStrategy{}
}

func (s *LegacyHourArrayStrategy) Name() string {
	return "legacy_hour_array"
}

func (s *LegacyHourArrayStrategy) Extract(body string) models.PartialWeekly {
	partial := make(models.PartialWeekly)

	for _, m := range legacyDayPattern.FindAllStringSubmatch(body, -1) {
		weekday := weekdayIndex(m[1])
		if weekday < 0 {
			continue
		}
		// First occurrence per weekday wins; see PeriodListStrategy.
		if _, dup := partial[weekday]; dup {
			continue
		}

		openHour, _ := strconv.Atoi(m[2])
		closeHour, _ := strconv.Atoi(m[4])
		if openHour > 23 || closeHour > 23 {
			continue
		}

		openMinute := openHour * 60
		if m[3] != "" {
			extra, _ := strconv.Atoi(m[3])
			if extra > 59 {
				continue
			}
			openMinute += extra
		}
		closeMinute := closeHour * 60
		if m[5] != "" {
			extra, _ := strconv.Atoi(m[5])
			if extra > 59 {
				continue
			}
			closeMinute += extra
		}

		partial[weekday] = models.DaySchedule{OpenMinute: openMinute, CloseMinute: closeMinute}
	}

	return partial
}
