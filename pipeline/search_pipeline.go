package pipeline

import (
	"sort"
	"time"

	"df-server/congestion"
	"df-server/hours"
	"df-server/models"
	"df-server/models/venue"
)

// DistanceFunc computes the distance in meters between two points.
// Distance arithmetic is owned by the caller and injected here.
type DistanceFunc func(lat1, lng1, lat2, lng2 float64) float64

// SearchPipeline turns a raw candidate list plus user constraints into a
// ranked result set: derive open-now/congestion/distance per candidate,
// filter, then sort. It holds no mutable state and is safe to share.
type SearchPipeline struct {
	distance DistanceFunc
}

func NewSearchPipeline(distance DistanceFunc) *SearchPipeline {
	return &SearchPipeline{distance: distance}
}

// Search ranks candidates for a user at (userLat, userLng) under the
// given criteria, evaluated at the given instant. Empty input or a fully
// filtered-out input yields an empty slice, never an error. Identical
// inputs at the same instant yield identical output.
func (p *SearchPipeline) Search(candidates []venue.Venue, userLat, userLng float64, criteria models.FilterCriteria, now time.Time) []venue.Venue {
	derived := p.derive(candidates, userLat, userLng, now)
	filtered := p.filter(derived, criteria)
	p.rank(filtered)
	return filtered
}

func (p *SearchPipeline) derive(candidates []venue.Venue, userLat, userLng float64, now time.Time) []venue.Venue {
	out := make([]venue.Venue, len(candidates))
	for i, c := range candidates {
		c.DistanceMeters = p.distance(userLat, userLng, c.VenueLat, c.VenueLng)
		c.OpenNow = hours.IsOpenNow(c.WeeklyHours, now)
		verdict := congestion.Estimate(now.Hour(), now.Weekday(), c.UserRatingsTotal, c.Rating)
		c.Congestion = &verdict
		out[i] = c
	}
	return out
}

func (p *SearchPipeline) filter(candidates []venue.Venue, criteria models.FilterCriteria) []venue.Venue {
	kept := make([]venue.Venue, 0, len(candidates))
	for _, c := range candidates {
		// Strictly open: unknown is excluded along with closed.
		if c.OpenNow != hours.Open {
			continue
		}
		if c.DistanceMeters > criteria.MaxDistanceMeters {
			continue
		}
		if !priceTierAllowed(c.PriceLevel, criteria) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// priceTierAllowed keeps venues with an unknown tier when a range is set:
// absence of the tier is not held against the venue.
func priceTierAllowed(tier *int, criteria models.FilterCriteria) bool {
	if !criteria.HasPriceRange() {
		return true
	}
	if tier == nil {
		return true
	}
	min, max := criteria.PriceRange()
	return *tier >= min && *tier <= max
}

// rank sorts by rating descending, tie-breaking on rating count
// descending. The sort is stable so exact ties keep their upstream
// order.
func (p *SearchPipeline) rank(candidates []venue.Venue) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].UserRatingsTotal > candidates[j].UserRatingsTotal
	})
}
