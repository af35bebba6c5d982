package redis

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"df-server/db"
	"df-server/models"
	"df-server/models/venue"
)

const VENUES_GEO_KEY_V1 = "dining_venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "dining_venue_v1:%s"

// VENUE_DETAILS_KEY_FORMAT is used to cache fetched detail records per venue.
const VENUE_DETAILS_KEY_FORMAT = "venue_details_v1:%s"

// RedisVenueDAO handles venue cache operations using Redis.
type RedisVenueDAO struct {
	client     db.RedisClient
	detailsTTL time.Duration
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient, detailsTTL time.Duration) *RedisVenueDAO {
	return &RedisVenueDAO{client: client, detailsTTL: detailsTTL}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.VenueLat, v.VenueLng, v)
}

// GetNearbyVenues retrieves cached venues within a given radius (in meters).
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lng, radiusMeters float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// SetVenueDetails caches the detail record for a venue by its ID. The
// entry expires with the configured TTL so stale reviews age out.
func (dao *RedisVenueDAO) SetVenueDetails(d *models.VenueDetails) error {
	key := fmt.Sprintf(VENUE_DETAILS_KEY_FORMAT, d.VenueID)
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal details for venue %s: %w", d.VenueID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.detailsTTL); err != nil {
		return fmt.Errorf("failed to set venue details in redis: %w", err)
	}
	return nil
}

// GetVenueDetails retrieves the cached detail record for a venue by its ID.
func (dao *RedisVenueDAO) GetVenueDetails(venueID string) (*models.VenueDetails, error) {
	key := fmt.Sprintf(VENUE_DETAILS_KEY_FORMAT, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue details from redis: %w", err)
	}
	var d models.VenueDetails
	if err := json.Unmarshal([]byte(str), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue details JSON: %w", err)
	}
	return &d, nil
}

// DeleteVenueDetails removes the cached detail record for a venue.
func (dao *RedisVenueDAO) DeleteVenueDetails(venueID string) error {
	key := fmt.Sprintf(VENUE_DETAILS_KEY_FORMAT, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue details key %s: %w", key, err)
	}
	return nil
}

// ListCachedDetailVenueIDs returns the venue IDs for all cached details.
func (dao *RedisVenueDAO) ListCachedDetailVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUE_DETAILS_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue details keys: %w", err)
	}

	prefix := fmt.Sprintf(VENUE_DETAILS_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}

	prefix := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
