package venue

import (
	"fmt"

	"df-server/congestion"
	"df-server/hours"
)

// Venue is a dining venue candidate: the raw record returned by the
// places API plus the fields derived per search request.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLng     float64 `json:"venue_lng"`

	// Rating and UserRatingsTotal are 0 when absent.
	Rating           float64 `json:"rating,omitempty"`
	UserRatingsTotal int     `json:"user_ratings_total,omitempty"`

	// PriceLevel is 0..4; nil means the tier is not known.
	PriceLevel *int `json:"price_level,omitempty"`

	Types []string `json:"types,omitempty"`

	// WeeklyHours holds 7 free-text entries, Monday first. Absent or
	// empty means the hours are unknown, not that the venue is closed.
	WeeklyHours []string `json:"weekly_hours,omitempty"`

	// Derived per search request, not part of the upstream record.
	DistanceMeters float64             `json:"distance_meters"`
	OpenNow        hours.Verdict       `json:"open_now,omitempty"`
	Congestion     *congestion.Verdict `json:"congestion,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lng=%f, rating=%.1f)",
		v.VenueID, v.VenueName, v.VenueLat, v.VenueLng, v.Rating)
}
