package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oh-server/models"
)

func TestNormalize_AlwaysSevenEntries(t *testing.T) {
	// Sparse extractor output: only two weekdays recovered.
	partial := models.PartialWeekly{
		models.Monday: {OpenMinute: 540, CloseMinute: 1020},
		models.Friday: {OpenMinute: 540, CloseMinute: 1020},
	}

	ws, err := Normalize(partial)

	assert.NoError(t, err)
	for weekday := 0; weekday < 7; weekday++ {
		if weekday == models.Monday || weekday == models.Friday {
			assert.False(t, ws[weekday].Closed, "weekday %d should be open", weekday)
		} else {
			// Absence is explicit Closed, never a gap.
			assert.True(t, ws[weekday].Closed, "weekday %d should be closed", weekday)
		}
	}
}

func TestNormalize_EmptyInputIsAllClosed(t *testing.T) {
	ws, err := Normalize(models.PartialWeekly{})

	assert.NoError(t, err)
	for weekday := 0; weekday < 7; weekday++ {
		assert.True(t, ws[weekday].Closed)
	}
}

func TestNormalize_KeepsMidnightCrossingConvention(t *testing.T) {
	partial := models.PartialWeekly{
		models.Thursday: {OpenMinute: 540, CloseMinute: 0}, // 9 AM to midnight
	}

	ws, err := Normalize(partial)

	assert.NoError(t, err)
	assert.True(t, ws[models.Thursday].CrossesMidnight())
	assert.Equal(t, 0, ws[models.Thursday].CloseMinute)
}

func TestNormalize_RejectsOutOfRangeMinutes(t *testing.T) {
	partial := models.PartialWeekly{
		models.Monday: {OpenMinute: 540, CloseMinute: 2000},
	}

	_, err := Normalize(partial)

	var malformed *models.MalformedScheduleError
	assert.ErrorAs(t, err, &malformed)
}

func TestNormalizePeriods_RoundTrip(t *testing.T) {
	periods := []models.RawPeriod{
		{OpenWeekday: models.Monday, OpenMinute: 540, CloseWeekday: models.Monday, CloseMinute: 1140},
		{OpenWeekday: models.Friday, OpenMinute: 1260, CloseWeekday: models.Saturday, CloseMinute: 120},
		{OpenWeekday: models.Wednesday, OpenMinute: 480, CloseWeekday: models.NoClose, CloseMinute: models.NoClose},
	}

	ws, err := NormalizePeriods(periods)

	assert.NoError(t, err)
	assert.Equal(t, models.DaySchedule{OpenMinute: 540, CloseMinute: 1140}, ws[models.Monday])
	assert.True(t, ws[models.Friday].CrossesMidnight())
	assert.True(t, ws[models.Wednesday].CrossesMidnight(), "open-24h period keeps the full window")
	assert.True(t, ws[models.Sunday].Closed)
}
