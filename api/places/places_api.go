package places

import "df-server/models"

// PlacesAPI defines the interface for the upstream venue search and
// detail endpoints. NearbySearch asks upstream for open-now filtering,
// but callers must not treat that filter as authoritative: the pipeline
// re-derives open/closed itself.
type PlacesAPI interface {
	NearbySearch(lat, lng, radiusMeters float64, category string, keyword string) (*models.NearbySearchResponse, error)
	GetVenueDetails(venueID string) (*models.VenueDetailsResponse, error)
	SetCredentials(apiKey string)
}
