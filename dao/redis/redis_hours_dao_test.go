package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"oh-server/db"
	"oh-server/models"
)

func testEntry(link string) *models.CacheEntry {
	var schedule models.WeeklySchedule
	for i := range schedule {
		schedule[i] = models.DaySchedule{OpenMinute: 540, CloseMinute: 1140}
	}
	schedule[models.Sunday] = models.DaySchedule{Closed: true}

	return &models.CacheEntry{
		PlaceLink:     link,
		DisplayName:   "Test Cafe",
		Schedule:      schedule,
		LastRefreshed: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Source:        "ampm_text",
	}
}

func TestRedisHoursDAO_SetEntry_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHoursDAO(mockClient)

	entry := testEntry("https://maps.example/share/abc123")

	// Act
	err := dao.SetEntry(entry)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "opening_hours_v1:https://maps.example/share/abc123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	// Verify JSON content
	var storedEntry models.CacheEntry
	if err := json.Unmarshal([]byte(storedValue), &storedEntry); err != nil {
		t.Fatalf("Failed to unmarshal stored entry data: %v", err)
	}

	if storedEntry.PlaceLink != entry.PlaceLink {
		t.Errorf("Expected PlaceLink %s, got %s", entry.PlaceLink, storedEntry.PlaceLink)
	}
	if !storedEntry.Schedule[models.Sunday].Closed {
		t.Errorf("Expected Sunday to round-trip as closed")
	}
}

func TestRedisHoursDAO_GetEntry_Miss(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHoursDAO(mockClient)

	// Act
	entry, err := dao.GetEntry("https://maps.example/share/unknown")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error on cache miss, got %v", err)
	}
	if entry != nil {
		t.Errorf("Expected nil entry on cache miss, got %+v", entry)
	}
}

func TestRedisHoursDAO_ListPlaceLinks(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHoursDAO(mockClient)

	_ = dao.SetEntry(testEntry("https://maps.example/share/abc"))
	_ = dao.SetEntry(testEntry("https://maps.example/share/def"))

	// Act
	links, err := dao.ListPlaceLinks()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(links) != 2 {
		t.Errorf("Expected 2 links, got %d", len(links))
	}

	expected := map[string]bool{
		"https://maps.example/share/abc": true,
		"https://maps.example/share/def": true,
	}
	for _, l := range links {
		if !expected[l] {
			t.Errorf("Unexpected place link: %s", l)
		}
	}
}

func TestRedisHoursDAO_SetEntry_ReplacesWholesale(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHoursDAO(mockClient)

	link := "https://maps.example/share/abc"
	first := testEntry(link)
	first.OverrideNote = "hand patched"
	_ = dao.SetEntry(first)

	second := testEntry(link)
	second.DisplayName = "Renamed Cafe"
	_ = dao.SetEntry(second)

	// Act
	got, err := dao.GetEntry(link)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.DisplayName != "Renamed Cafe" {
		t.Errorf("Expected replaced display name, got %s", got.DisplayName)
	}
	if got.OverrideNote != "" {
		t.Errorf("Expected old override note to be gone after whole-entry replace, got %q", got.OverrideNote)
	}
}
