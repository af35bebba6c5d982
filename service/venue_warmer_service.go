package services

import (
	"log"
	"time"

	"df-server/api/places"
	"df-server/dao/redis"
)

// Location holds latitude and longitude for warm-up jobs.
type Location struct {
	Lat float64
	Lng float64
}

// defaultLocations is the constant list of coordinates to pre-search.
var defaultLocations = []Location{
	{
		// Tokyo Station
		Lat: 35.681236,
		Lng: 139.767125,
	},
	{
		// Shibuya
		Lat: 35.658034,
		Lng: 139.701636,
	},
	{
		// Shinjuku
		Lat: 35.690921,
		Lng: 139.700258,
	},
	{
		// Ikebukuro
		Lat: 35.728926,
		Lng: 139.710380,
	},
	{
		// Ueno
		Lat: 35.713768,
		Lng: 139.777254,
	},
}

const warmerSearchRadiusMeters = 2000.0
const warmerCategory = "restaurant"

// VenueWarmerService periodically pre-searches the default locations and
// caches venues and their detail records, so user searches hit a warm
// geo index.
type VenueWarmerService struct {
	venueDao  *redis.RedisVenueDAO
	placesAPI places.PlacesAPI
}

// NewVenueWarmerService constructs a new warmer with its dependencies.
func NewVenueWarmerService(
	venueDao *redis.RedisVenueDAO,
	placesAPI places.PlacesAPI,
) *VenueWarmerService {
	return &VenueWarmerService{
		venueDao:  venueDao,
		placesAPI: placesAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vw *VenueWarmerService) StartPeriodicJob(interval time.Duration) {
	go vw.startPeriodicJob(interval)
}

func (vw *VenueWarmerService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenueWarmerService] Running periodic venue warm-up job.")
		if err := vw.WarmVenues(); err != nil {
			log.Printf("[VenueWarmerService] WarmVenues returned error: %v", err)
		} else {
			log.Println("[VenueWarmerService] WarmVenues completed successfully.")
		}
	}
}

// WarmVenues runs the two steps: search-and-upsert, then detail pre-fetch.
func (vw *VenueWarmerService) WarmVenues() error {
	ids := vw.searchAndUpsert()
	vw.fetchAndCacheDetails(ids)
	return nil
}

// searchAndUpsert searches every default location, dedupes venues across
// locations by ID and name, upserts them, and returns the unique IDs.
func (vw *VenueWarmerService) searchAndUpsert() []string {
	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	var uniqueIDs []string

	log.Printf("[VenueWarmerService] Searching %d locations", len(defaultLocations))
	for _, loc := range defaultLocations {
		resp, err := vw.placesAPI.NearbySearch(loc.Lat, loc.Lng, warmerSearchRadiusMeters, warmerCategory, "")
		if err != nil {
			log.Printf("[VenueWarmerService] Search failed for %v,%v: %v", loc.Lat, loc.Lng, err)
			continue
		}

		for _, v := range resp.Venues {
			if _, dup := seenIDs[v.VenueID]; dup {
				continue
			}
			if _, dup := seenNames[v.VenueName]; dup {
				log.Printf("[VenueWarmerService] Skipping duplicate venue name=%q", v.VenueName)
				continue
			}

			seenIDs[v.VenueID] = struct{}{}
			seenNames[v.VenueName] = struct{}{}
			uniqueIDs = append(uniqueIDs, v.VenueID)

			if err := vw.venueDao.UpsertVenue(v); err != nil {
				log.Printf("[VenueWarmerService] Upsert failed for %s: %v", v.VenueID, err)
			}
		}
	}
	return uniqueIDs
}

// fetchAndCacheDetails pre-fetches and caches the detail record for each
// venue ID. Individual failures are logged and skipped.
func (vw *VenueWarmerService) fetchAndCacheDetails(ids []string) {
	log.Printf("[VenueWarmerService] Fetching details for %d venues", len(ids))
	for _, vid := range ids {
		resp, err := vw.placesAPI.GetVenueDetails(vid)
		if err != nil {
			log.Printf("[VenueWarmerService] GetVenueDetails failed for %s: %v", vid, err)
			continue
		}

		details := resp.Result
		if details.VenueID == "" {
			details.VenueID = vid
		}
		if err := vw.venueDao.SetVenueDetails(&details); err != nil {
			log.Printf("[VenueWarmerService] SetVenueDetails failed for %s: %v", vid, err)
		}
	}
}

// RefreshCachedDetails re-fetches every detail record currently cached.
func (vw *VenueWarmerService) RefreshCachedDetails() error {
	ids, err := vw.venueDao.ListCachedDetailVenueIDs()
	if err != nil {
		log.Printf("[VenueWarmerService] Error listing cached detail IDs: %v", err)
		return err
	}
	log.Printf("[VenueWarmerService] Found %d cached detail entries", len(ids))

	vw.fetchAndCacheDetails(ids)
	return nil
}
