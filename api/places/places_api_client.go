package places

import (
	"net/url"
	"strconv"

	"df-server/api"
	"df-server/models"
)

// PlacesApiClient embeds the common HTTPClient.
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient.
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the API key sent with every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// NearbySearch retrieves venues around a point. The opened=now hint is
// always passed upstream; the response status is still checked and
// re-derived downstream.
func (c *PlacesApiClient) NearbySearch(lat, lng, radiusMeters float64, category string, keyword string) (*models.NearbySearchResponse, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusMeters, 'f', -1, 64))
	q.Set("type", category)
	q.Set("opened", "now")
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	q.Set("key", c.apiKey)

	var response models.NearbySearchResponse
	if err := c.Request("GET", "/venues/nearby", q, nil, nil, &response); err != nil {
		return nil, err
	}
	if err := statusError(response.Status); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenueDetails retrieves the detail record for one venue.
func (c *PlacesApiClient) GetVenueDetails(venueID string) (*models.VenueDetailsResponse, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)

	var response models.VenueDetailsResponse
	if err := c.Request("GET", "/venues/"+venueID, q, nil, nil, &response); err != nil {
		return nil, err
	}
	if err := statusError(response.Status); err != nil {
		return nil, err
	}
	return &response, nil
}

// statusError converts a non-OK body status into a TransportError.
// ZERO_RESULTS is not an error: it is a valid empty result.
func statusError(status string) error {
	if status == "" || status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	if kind, ok := api.KindFromStatus(status); ok {
		return &api.TransportError{Kind: kind, Message: "places api status: " + status}
	}
	return &api.TransportError{Kind: api.TransportUnavailable, Message: "places api status: " + status}
}
