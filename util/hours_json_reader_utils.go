package util

import (
	"encoding/json"
	"fmt"
	"os"

	"oh-server/models"
)

// ReadPlaceReferencesFromJSON loads the static place-reference list from JSON on disk.
func ReadPlaceReferencesFromJSON(filePath string) ([]models.PlaceReference, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var refs []models.PlaceReference
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place references: %w", err)
	}
	return refs, nil
}

// ReadCacheEntryFromJSON loads a single CacheEntry from JSON on disk.
func ReadCacheEntryFromJSON(filePath string) (*models.CacheEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CacheEntry: %w", err)
	}
	return &entry, nil
}

// ReadRawDocumentBody loads a captured place page body from disk. Used by the
// mock page client and by extraction tests against real captures.
func ReadRawDocumentBody(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return string(data), nil
}
