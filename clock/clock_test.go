package clock

import (
	"testing"
	"time"

	"oh-server/models"
)

func TestInstantAt_CivilCalendarFields(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 2026-08-26 08:09 UTC is 10:09 on a Wednesday in Berlin (CEST, +2).
	at := time.Date(2026, 8, 26, 8, 9, 0, 0, time.UTC)
	instant := InstantAt(at, loc)

	if instant.Weekday != models.Wednesday {
		t.Errorf("Expected Wednesday (%d), got %d", models.Wednesday, instant.Weekday)
	}
	if instant.MinuteOfDay != 10*60+9 {
		t.Errorf("Expected minute %d, got %d", 10*60+9, instant.MinuteOfDay)
	}
}

func TestInstantAt_WeekdayShiftAcrossMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 23:30 UTC on Saturday is already 01:30 Sunday in Berlin during CEST.
	// Evaluating against server-local or UTC weekday here was the original
	// wrong-day bug.
	at := time.Date(2026, 8, 22, 23, 30, 0, 0, time.UTC)
	instant := InstantAt(at, loc)

	if instant.Weekday != models.Sunday {
		t.Errorf("Expected Sunday (%d), got %d", models.Sunday, instant.Weekday)
	}
	if instant.MinuteOfDay != 90 {
		t.Errorf("Expected minute 90, got %d", instant.MinuteOfDay)
	}
}

func TestInstantAt_WinterOffset(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// In January Berlin is CET (+1); a fixed +2 offset would be an hour off.
	at := time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC)
	instant := InstantAt(at, loc)

	if instant.MinuteOfDay != 9*60 {
		t.Errorf("Expected minute %d, got %d", 9*60, instant.MinuteOfDay)
	}
}

func TestNewRegionClock_FallsBackToUTC(t *testing.T) {
	clk := NewRegionClock("No/Such_Zone")

	// Must not panic and must still produce a usable instant.
	instant := clk.Now()
	if instant.Weekday < 0 || instant.Weekday > 6 {
		t.Errorf("Weekday out of range: %d", instant.Weekday)
	}
	if instant.MinuteOfDay < 0 || instant.MinuteOfDay >= models.MinutesPerDay {
		t.Errorf("MinuteOfDay out of range: %d", instant.MinuteOfDay)
	}
}
