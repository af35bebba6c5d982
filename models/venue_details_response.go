package models

import "df-server/models/venue"

// VenueDetails is the per-venue detail record: weekly hours text, the
// newest reviews, and contact fields. Everything is optional; a partial
// record is still usable.
type VenueDetails struct {
	VenueID     string         `json:"venue_id"`
	VenueName   string         `json:"venue_name"`
	WeeklyHours []string       `json:"weekly_hours,omitempty"`
	Reviews     []venue.Review `json:"reviews,omitempty"`
	Types       []string       `json:"types,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Website     string         `json:"website,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	MapURL      string         `json:"map_url,omitempty"`
}

// VenueDetailsResponse is the top-level JSON returned by the places
// details endpoint.
type VenueDetailsResponse struct {
	Status string       `json:"status"`
	Result VenueDetails `json:"result"`
}
