package models

import (
	"df-server/congestion"
	"df-server/hours"
)

// VenueInsights is the detail-view payload: signals derived from a single
// venue's details plus the contact fields worth forwarding. When the
// detail fetch fails only VenueID is populated; the absence of the rest
// is the degraded state, not an error.
type VenueInsights struct {
	VenueID       string                  `json:"venue_id"`
	VenueName     string                  `json:"venue_name,omitempty"`
	AmbienceTags  []string                `json:"ambience_tags,omitempty"`
	SmokingPolicy string                  `json:"smoking_policy,omitempty"`
	CrowdSignal   congestion.ReviewSignal `json:"crowd_signal,omitempty"`
	OpenNow       hours.Verdict           `json:"open_now,omitempty"`
	WeeklyHours   []string                `json:"weekly_hours,omitempty"`
	Summary       string                  `json:"summary,omitempty"`
	Website       string                  `json:"website,omitempty"`
	Phone         string                  `json:"phone,omitempty"`
	MapURL        string                  `json:"map_url,omitempty"`
}
