package places

import (
	"fmt"

	"df-server/config"
	"df-server/models"
	"df-server/util"
)

// PlacesApiClientMock serves canned responses from JSON fixtures on disk.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock.
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// NearbySearch returns the fixture nearby-search response regardless of
// the query.
func (c *PlacesApiClientMock) NearbySearch(lat, lng, radiusMeters float64, category string, keyword string) (*models.NearbySearchResponse, error) {
	response, err := util.ReadNearbySearchResponseFromJSON(
		config.GetResourcePath(config.NEARBY_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read nearby search response from json")
		return nil, err
	}
	return response, nil
}

// GetVenueDetails returns the fixture details response regardless of the
// venue ID.
func (c *PlacesApiClientMock) GetVenueDetails(venueID string) (*models.VenueDetailsResponse, error) {
	response, err := util.ReadVenueDetailsResponseFromJSON(
		config.GetResourcePath(config.VENUE_DETAILS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read venue details response from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op on the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {
}
