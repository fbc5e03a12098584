package extract

import (
	"regexp"
	"strconv"
	"strings"

	"oh-server/models"
)

// ampmDayPattern matches the AM/PM text embedding, one fragment per day:
//
//	"Monday",["9 AM–5 PM"]   or   "Sunday",["Closed"]
//
// The range separator varies between a hyphen, en dash and em dash, and the
// space before AM/PM is sometimes a narrow no-break space.
var ampmDayPattern = regexp.MustCompile(
	`"(Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)",\["([^"]*)"`)

var ampmRangePattern = regexp.MustCompile(
	`(\d{1,2})(?::(\d{2}))?[\s\x{00A0}\x{202F}\x{2009}]*([APap])[Mm]?\.?[\s\x{00A0}\x{202F}\x{2009}]*[–—-][\s\x{00A0}\x{202F}\x{2009}]*(\d{1,2})(?::(\d{2}))?[\s\x{00A0}\x{202F}\x{2009}]*([APap])[Mm]?\.?`)

// AmPmTextStrategy reads the 12-hour text embedding used by upstream pages
// before the structured period list appeared.
type AmPmTextStrategy struct{}

func NewAmPmTextStrategy() *AmPmTextStrategy {
	return &AmPmTextStrategy{}
}

func (s *AmPmTextStrategy) Name() string {
	return "ampm_text"
}

func (s *AmPmTextStrategy) Extract(body string) models.PartialWeekly {
	partial := make(models.PartialWeekly)

	for _, m := range ampmDayPattern.FindAllStringSubmatch(body, -1) {
		weekday := weekdayIndex(m[1])
		if weekday < 0 {
			continue
		}
		// First occurrence per weekday wins; see PeriodListStrategy.
		if _, dup := partial[weekday]; dup {
			continue
		}

		text := m[2]
		if strings.EqualFold(strings.TrimSpace(text), "Closed") {
			partial[weekday] = models.DaySchedule{Closed: true}
			continue
		}

		day, ok := parseAmPmRange(text)
		if !ok {
			continue
		}
		partial[weekday] = day
	}

	return partial
}

// parseAmPmRange converts "9 AM–12 AM" style text into minute offsets.
// 12 AM maps to 0:00 and 12 PM stays 12:00; other PM hours add 12.
func parseAmPmRange(text string) (models.DaySchedule, bool) {
	m := ampmRangePattern.FindStringSubmatch(text)
	if m == nil {
		return models.DaySchedule{}, false
	}

	openMin, ok := toMinuteOfDay(m[1], m[2], m[3])
	if !ok {
		return models.DaySchedule{}, false
	}
	closeMin, ok := toMinuteOfDay(m[4], m[5], m[6])
	if !ok {
		return models.DaySchedule{}, false
	}

	return models.DaySchedule{OpenMinute: openMin, CloseMinute: closeMin}, true
}

func toMinuteOfDay(hourStr, minuteStr, period string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	pm := period == "P" || period == "p"
	if pm && hour != 12 {
		hour += 12
	} else if !pm && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, true
}

func weekdayIndex(name string) int {
	for i, n := range models.WeekdayNames {
		if n == name {
			return i
		}
	}
	return -1
}
