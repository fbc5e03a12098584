package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Target civil timezone for all "is it open right now" evaluation.
// Weekday/minute computations must go through this zone, never server time.
const TARGET_TIMEZONE = "Europe/Berlin"

// Hours cache config
const CACHE_STALENESS_THRESHOLD_DAYS = 30

// Refresher config
const HOURS_REFRESHER_SCHEDULE_MINUTES = 60 * 24
const REFRESH_MAX_CONCURRENCY = 3
const REFRESH_INTER_REQUEST_DELAY_MS = 750

// Page fetch config. The upstream page provider rejects non-browser clients,
// so the fetcher always presents a browser identity.
const PAGE_FETCH_TIMEOUT_SECONDS = 15
const PAGE_FETCH_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Server config
const SERVER_ADDRESS = ":8080"

// Extractor config: minimum distinct weekdays a strategy must recover before
// its result is trusted.
const EXTRACTION_MIN_WEEKDAYS = 3

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACE_PAGE_FIXTURE_RESOURCE = "place_page.html"
const CACHE_SNAPSHOT_RESOURCE = "hours_cache_snapshot.json"
const PLACE_REFERENCES_RESOURCE = "place_references.json"

const ADMIN_SECRET_ENV = "OH_ADMIN_SECRET"

func init() {
	// Best effort; env vars may also come from the process environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// AdminSecret returns the shared secret gating administrative endpoints.
// Empty means the admin surface is disabled.
func AdminSecret() string {
	return os.Getenv(ADMIN_SECRET_ENV)
}

// RedisAddress returns the redis address, overridable via OH_REDIS_ADDRESS.
func RedisAddress() string {
	if addr := os.Getenv("OH_REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// StalenessThreshold returns the cache staleness window as a duration.
func StalenessThreshold() time.Duration {
	days := CACHE_STALENESS_THRESHOLD_DAYS
	if raw := os.Getenv("OH_STALENESS_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
