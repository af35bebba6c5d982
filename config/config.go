package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Venue Warmer config
const VENUE_WARMER_SCHEDULE_MINUTES = 60

// Details cache entries go stale with the review feed; expire them.
const VENUE_DETAILS_CACHE_TTL_MINUTES = 120

// Places API
const PLACES_ENDPOINT_BASE_V1 = "https://places.example.com/api/v1"
const PLACES_API_KEY_ENV = "PLACES_API_KEY"

// Search defaults
const DEFAULT_SEARCH_RADIUS_METERS = 1000.0
const MAX_SEARCH_RADIUS_METERS = 10000.0

// Fallback position when a request carries no coordinates (Tokyo Station).
const DEFAULT_POSITION_LAT = 35.681236
const DEFAULT_POSITION_LNG = 139.767125

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NEARBY_SEARCH_RESPONSE_RESOURCE = "nearby_search_response.json"
const VENUE_DETAILS_RESPONSE_RESOURCE = "venue_details_response.json"
const VENUE_STATIC_RESOURCE = "venue_static.json"

// PlacesAPIKey reads the upstream API key from the environment.
func PlacesAPIKey() string {
	return os.Getenv(PLACES_API_KEY_ENV)
}

// BaseDir returns the absolute path of the project root directory.
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

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
