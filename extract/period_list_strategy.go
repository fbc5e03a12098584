package extract

import (
	"regexp"
	"strconv"

	"oh-server/models"
)

// periodPattern matches the structured period embedding: an open triplet of
// [weekday,hour,minute] optionally followed by a close triplet, e.g.
// [[1,9,0],[1,17,0]] or [[3,0,0]] for a day open around the clock.
var periodPattern = regexp.MustCompile(
	`\[\[([0-6]),(\d{1,2}),(\d{1,2})\](?:,\[([0-6]),(\d{1,2}),(\d{1,2})\])?\]`)

// PeriodListStrategy reads the structured open/close period list format, the
// most recent embedding observed on upstream pages.
type PeriodListStrategy struct{}

func NewPeriodListStrategy() *PeriodListStrategy {
	return &PeriodListStrategy{}
}

func (s *PeriodListStrategy) Name() string {
	return "period_list"
}

func (s *PeriodListStrategy) Extract(body string) models.PartialWeekly {
	matches := periodPattern.FindAllStringSubmatch(body, -1)

	var periods []models.RawPeriod
	seen := make(map[int]struct{})
	for _, m := range matches {
		openWeekday, _ := strconv.Atoi(m[1])
		openHour, _ := strconv.Atoi(m[2])
		openMin, _ := strconv.Atoi(m[3])
		if openHour > 23 || openMin > 59 {
			continue
		}

		// Pages embed the schedule redundantly and later duplicates have been
		// observed to carry an adjacent day's data; only the first occurrence
		// per weekday is trusted.
		if _, dup := seen[openWeekday]; dup {
			continue
		}
		seen[openWeekday] = struct{}{}

		period := models.RawPeriod{
			OpenWeekday:  openWeekday,
			OpenMinute:   openHour*60 + openMin,
			CloseWeekday: models.NoClose,
			CloseMinute:  models.NoClose,
		}

		if m[4] != "" {
			closeWeekday, _ := strconv.Atoi(m[4])
			closeHour, _ := strconv.Atoi(m[5])
			closeMin, _ := strconv.Atoi(m[6])
			if closeHour > 23 || closeMin > 59 {
				continue
			}
			period.CloseWeekday = closeWeekday
			period.CloseMinute = closeHour*60 + closeMin
		}

		periods = append(periods, period)
	}

	return PeriodsToPartial(periods)
}

// PeriodsToPartial converts raw periods into per-day extraction results. An
// absent close component means open 24h from the open offset, recorded with
// close == open so the midnight-crossing convention keeps the full window.
func PeriodsToPartial(periods []models.RawPeriod) models.PartialWeekly {
	partial := make(models.PartialWeekly)
	for _, p := range periods {
		if _, dup := partial[p.OpenWeekday]; dup {
			continue
		}
		day := models.DaySchedule{OpenMinute: p.OpenMinute}
		if p.CloseMinute == models.NoClose {
			day.CloseMinute = p.OpenMinute
		} else {
			day.CloseMinute = p.CloseMinute
		}
		partial[p.OpenWeekday] = day
	}
	return partial
}
