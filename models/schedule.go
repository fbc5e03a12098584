package models

// Weekday indices follow the upstream page convention: Sunday = 0 .. Saturday = 6.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const MinutesPerDay = 1440

// WeekdayNames maps weekday indices to the english names used in the
// upstream page fragments.
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DaySchedule is a single day's opening window, or a closed day.
// CloseMinute <= OpenMinute on an open day means the venue closes after
// midnight on the following calendar day. Evaluators must treat that as the
// midnight-crossing signal, never as "already closed".
type DaySchedule struct {
	Closed      bool `json:"closed"`
	OpenMinute  int  `json:"open_minute"`
	CloseMinute int  `json:"close_minute"`
}

// CrossesMidnight reports whether this day's window extends past midnight.
func (d DaySchedule) CrossesMidnight() bool {
	return !d.Closed && d.CloseMinute <= d.OpenMinute
}

// WeeklySchedule always carries exactly one entry per weekday, indexed
// Sunday=0 .. Saturday=6. A day without data is an explicit Closed entry.
type WeeklySchedule [7]DaySchedule

// Instant is a point in time already resolved into the target region's
// civil calendar: weekday index plus minute of day.
type Instant struct {
	Weekday     int `json:"weekday"`
	MinuteOfDay int `json:"minute_of_day"`
}
