package models

// NoClose marks an absent close component on a RawPeriod, meaning the venue
// stays open 24h from the open offset.
const NoClose = -1

// RawPeriod is one open/close interval as reported by a structured page
// source, before normalization. CloseWeekday/CloseMinute are NoClose when
// the source omitted them.
type RawPeriod struct {
	OpenWeekday  int
	OpenMinute   int
	CloseWeekday int
	CloseMinute  int
}

// PartialWeekly is the extractor output: the days a strategy managed to
// recover, keyed by weekday index. Days may be missing; normalization turns
// missing days into explicit Closed entries.
type PartialWeekly map[int]DaySchedule
