package models

import "df-server/models/venue"

// NearbySearchResponse is the top-level JSON returned by the places
// nearby-search endpoint. Zero venues with an OK status is a valid,
// empty result.
type NearbySearchResponse struct {
	Status  string        `json:"status"`
	Venues  []venue.Venue `json:"venues"`
	VenuesN int           `json:"venues_n"`
}
