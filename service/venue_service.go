package services

import (
	"log"
	"time"

	"df-server/api/places"
	"df-server/congestion"
	"df-server/dao/redis"
	"df-server/hours"
	"df-server/models"
	"df-server/models/venue"
	"df-server/pipeline"
	"df-server/signals"
)

// VenueService orchestrates the search flow: upstream nearby search,
// scoring/filter pipeline, cache writes, and per-venue insight
// derivation.
type VenueService struct {
	venueDao  *redis.RedisVenueDAO
	placesAPI places.PlacesAPI
	pipeline  *pipeline.SearchPipeline
	now       func() time.Time
}

// NewVenueService constructs a new VenueService with its dependencies.
// nowFn supplies the evaluation instant; tests pass a frozen clock.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	placesAPI places.PlacesAPI,
	searchPipeline *pipeline.SearchPipeline,
	nowFn func() time.Time) *VenueService {

	if nowFn == nil {
		nowFn = time.Now
	}
	return &VenueService{
		venueDao:  venueDao,
		placesAPI: placesAPI,
		pipeline:  searchPipeline,
		now:       nowFn,
	}
}

// SearchNearby fetches raw candidates around the user and runs them
// through the filter/sort pipeline. Zero upstream matches yield an empty
// slice; hard transport failures surface to the caller untouched.
func (vs *VenueService) SearchNearby(lat, lng float64, criteria models.FilterCriteria) ([]venue.Venue, error) {
	resp, err := vs.placesAPI.NearbySearch(lat, lng, criteria.MaxDistanceMeters,
		string(criteria.Category), criteria.CuisineKeyword)
	if err != nil {
		return nil, err
	}
	if len(resp.Venues) == 0 {
		return []venue.Venue{}, nil
	}

	ranked := vs.pipeline.Search(resp.Venues, lat, lng, criteria, vs.now())

	// Best effort: keep the geo cache warm for the warmer job and any
	// cache-backed consumers. Failures here never fail the search.
	for _, v := range ranked {
		if err := vs.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenueService] Failed to cache venue %s: %v", v.VenueID, err)
		}
	}

	return ranked, nil
}

// GetVenueInsights derives the detail-view signals for one venue:
// ambience tags, smoking policy, review crowd signal, and an open-now
// verdict. A failed detail fetch degrades to an insights value holding
// only the venue ID; it is never an error.
func (vs *VenueService) GetVenueInsights(venueID string) (*models.VenueInsights, error) {
	details := vs.loadDetails(venueID)
	if details == nil {
		return &models.VenueInsights{VenueID: venueID}, nil
	}

	texts := venue.ReviewTexts(details.Reviews)
	return &models.VenueInsights{
		VenueID:       venueID,
		VenueName:     details.VenueName,
		AmbienceTags:  signals.ExtractAmbienceTags(texts),
		SmokingPolicy: signals.ExtractSmokingPolicy(texts),
		CrowdSignal:   congestion.EstimateFromReviews(texts),
		OpenNow:       hours.IsOpenNow(details.WeeklyHours, vs.now()),
		WeeklyHours:   details.WeeklyHours,
		Summary:       details.Summary,
		Website:       details.Website,
		Phone:         details.Phone,
		MapURL:        details.MapURL,
	}, nil
}

// loadDetails tries the cache first, then the transport. Both failures
// are swallowed: the insight view works with whatever is available.
func (vs *VenueService) loadDetails(venueID string) *models.VenueDetails {
	if cached, err := vs.venueDao.GetVenueDetails(venueID); err == nil {
		return cached
	}

	resp, err := vs.placesAPI.GetVenueDetails(venueID)
	if err != nil {
		log.Printf("[VenueService] Detail fetch failed for %s: %v", venueID, err)
		return nil
	}

	details := resp.Result
	if details.VenueID == "" {
		details.VenueID = venueID
	}
	if err := vs.venueDao.SetVenueDetails(&details); err != nil {
		log.Printf("[VenueService] Failed to cache details for %s: %v", venueID, err)
	}
	return &details
}
