package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oh-server/clock"
	redisdao "oh-server/dao/redis"
	"oh-server/db"
	"oh-server/extract"
	"oh-server/models"
	services "oh-server/service"
)

type fakePageAPI struct {
	body string
	fail bool
}

func (f *fakePageAPI) ResolvePlacePage(placeLink string) (*models.RawDocument, error) {
	if f.fail {
		return nil, &models.FetchFailure{URL: placeLink, Err: errors.New("timeout")}
	}
	return &models.RawDocument{PlaceLink: placeLink, CanonicalURL: placeLink, Body: f.body}, nil
}

const handlerWeekBody = `
"Sunday",["Closed"],
"Monday",["9 AM–7 PM"],
"Tuesday",["9 AM–7 PM"],
"Wednesday",["9 AM–7 PM"],
"Thursday",["9 AM–7 PM"],
"Friday",["9 AM–7 PM"],
"Saturday",["9:30 AM–4 PM"]`

func newHandlers(pageAPI *fakePageAPI, at models.Instant) (*HoursHandler, *AdminHandler) {
	dao := redisdao.NewRedisHoursDAO(db.NewMockRedisClient(context.Background()))
	clk := &clock.FixedClock{Instant: at, Time: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)}
	cache := services.NewHoursCacheService(dao, pageAPI, extract.NewExtractor(3), clk, 30*24*time.Hour)
	availability := services.NewAvailabilityService(clk)
	refresher := services.NewHoursRefresherService(dao, cache, 1, 0)
	return NewHoursHandler(cache, availability),
		NewAdminHandler(refresher, cache, "test-secret")
}

func TestHoursHandler_GetStatus_Open(t *testing.T) {
	pageAPI := &fakePageAPI{body: handlerWeekBody}
	hoursHandler, _ := newHandlers(pageAPI, models.Instant{Weekday: models.Monday, MinuteOfDay: 600})

	req := httptest.NewRequest("GET", "/v1/hours/status?link=https://maps.example/share/cafe&name=Cafe", nil)
	rr := httptest.NewRecorder()

	hoursHandler.GetStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "open", resp.Status)
	assert.NotNil(t, resp.MinutesUntilClose)
	assert.Equal(t, 1140-600, *resp.MinutesUntilClose)
}

func TestHoursHandler_GetStatus_ClosedSunday(t *testing.T) {
	pageAPI := &fakePageAPI{body: handlerWeekBody}
	hoursHandler, _ := newHandlers(pageAPI, models.Instant{Weekday: models.Sunday, MinuteOfDay: 600})

	req := httptest.NewRequest("GET", "/v1/hours/status?link=https://maps.example/share/cafe", nil)
	rr := httptest.NewRecorder()

	hoursHandler.GetStatus(rr, req)

	var resp StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "closed", resp.Status)
	assert.Nil(t, resp.MinutesUntilClose)
}

func TestHoursHandler_GetStatus_UnknownOnFailure(t *testing.T) {
	// No cache entry and the fetch fails: the status must be "unknown",
	// never "open" - the caller shows a warning for unknown.
	pageAPI := &fakePageAPI{fail: true}
	hoursHandler, _ := newHandlers(pageAPI, models.Instant{Weekday: models.Monday, MinuteOfDay: 600})

	req := httptest.NewRequest("GET", "/v1/hours/status?link=https://maps.example/share/cafe", nil)
	rr := httptest.NewRecorder()

	hoursHandler.GetStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.Status)
}

func TestAdminHandler_Override(t *testing.T) {
	pageAPI := &fakePageAPI{body: handlerWeekBody}
	_, adminHandler := newHandlers(pageAPI, models.Instant{Weekday: models.Monday, MinuteOfDay: 600})

	body := `{
		"place_link": "https://maps.example/share/cafe",
		"display_name": "Cafe",
		"note": "hours confirmed by phone",
		"schedule": {"1": {"open_minute": 600, "close_minute": 1200}}
	}`
	req := httptest.NewRequest("POST", "/v1/admin/hours/override", strings.NewReader(body))
	req.Header.Set("X-Admin-Secret", "test-secret")
	rr := httptest.NewRecorder()

	adminHandler.OverrideSchedule(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var entry models.CacheEntry
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	assert.Equal(t, "manual_override", entry.Source)
	assert.NotEmpty(t, entry.OverrideID)
	assert.Equal(t, 600, entry.Schedule[models.Monday].OpenMinute)
}

func TestAdminHandler_RejectsWrongSecret(t *testing.T) {
	pageAPI := &fakePageAPI{body: handlerWeekBody}
	_, adminHandler := newHandlers(pageAPI, models.Instant{Weekday: models.Monday, MinuteOfDay: 600})

	req := httptest.NewRequest("POST", "/v1/admin/hours/refresh", nil)
	req.Header.Set("X-Admin-Secret", "wrong")
	rr := httptest.NewRecorder()

	adminHandler.RefreshAll(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminHandler_DisabledWithoutSecret(t *testing.T) {
	pageAPI := &fakePageAPI{body: handlerWeekBody}
	dao := redisdao.NewRedisHoursDAO(db.NewMockRedisClient(context.Background()))
	clk := clock.NewFixedClock(models.Monday, 600, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	cache := services.NewHoursCacheService(dao, pageAPI, extract.NewExtractor(3), clk, 30*24*time.Hour)
	refresher := services.NewHoursRefresherService(dao, cache, 1, 0)
	adminHandler := NewAdminHandler(refresher, cache, "")

	req := httptest.NewRequest("POST", "/v1/admin/hours/refresh", nil)
	rr := httptest.NewRecorder()

	adminHandler.RefreshAll(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
