package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"oh-server/db"
	"oh-server/models"
)

// OPENING_HOURS_KEY_FORMAT keys one cache entry per place link. Entries are
// stored as plain JSON so operators can inspect and hand-check them with
// redis-cli during debugging.
const OPENING_HOURS_KEY_FORMAT = "opening_hours_v1:%s"

const OPENING_HOURS_KEY_PREFIX = "opening_hours_v1:"

// RedisHoursDAO handles opening-hours cache entries using Redis.
type RedisHoursDAO struct {
	client db.RedisClient
}

// NewRedisHoursDAO initializes a RedisHoursDAO with the Redis client.
func NewRedisHoursDAO(client db.RedisClient) *RedisHoursDAO {
	return &RedisHoursDAO{client: client}
}

// GetEntry retrieves the cache entry for a place link. A cache miss returns
// (nil, nil); only transport or decode problems are errors.
func (dao *RedisHoursDAO) GetEntry(placeLink string) (*models.CacheEntry, error) {
	key := fmt.Sprintf(OPENING_HOURS_KEY_FORMAT, placeLink)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hours entry from redis: %w", err)
	}
	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(str), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hours entry JSON: %w", err)
	}
	return &entry, nil
}

// SetEntry replaces the cache entry for the entry's place link wholesale.
// Partial merges are never performed; a refresh either produced a full 7-day
// schedule or it never reaches this method.
func (dao *RedisHoursDAO) SetEntry(entry *models.CacheEntry) error {
	key := fmt.Sprintf(OPENING_HOURS_KEY_FORMAT, entry.PlaceLink)
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal hours entry for %s: %w", entry.PlaceLink, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set hours entry in redis: %w", err)
	}
	return nil
}

// ListPlaceLinks returns the place links of all cached entries.
func (dao *RedisHoursDAO) ListPlaceLinks() ([]string, error) {
	keys, err := dao.client.Keys(OPENING_HOURS_KEY_PREFIX + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list hours keys: %w", err)
	}

	links := make([]string, 0, len(keys))
	for _, k := range keys {
		// strip the prefix to get the raw place link
		links = append(links, strings.TrimPrefix(k, OPENING_HOURS_KEY_PREFIX))
	}
	return links, nil
}

// DeleteEntry removes a cache entry. Only used by operators; the refresh
// pipeline never deletes entries automatically.
func (dao *RedisHoursDAO) DeleteEntry(placeLink string) error {
	key := fmt.Sprintf(OPENING_HOURS_KEY_FORMAT, placeLink)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete hours key %s: %w", key, err)
	}
	log.Printf("[RedisHoursDAO] Deleted hours cache entry for %s", placeLink)
	return nil
}
