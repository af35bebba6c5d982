package models

// Category is the venue category requested upstream.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryBar        Category = "bar"
	CategoryBakery     Category = "bakery"
)

// SmokingPreference narrows results by smoking policy. It is matched
// against the extracted policy on the detail view, not in the ranking
// filter stage.
type SmokingPreference string

const (
	SmokingAny        SmokingPreference = "any"
	SmokingAllowed    SmokingPreference = "allowed"
	SmokingProhibited SmokingPreference = "prohibited"
)

// FilterCriteria is an immutable snapshot of the user's search
// constraints, built once per request and passed into the pipeline.
// Category and MaxDistanceMeters always carry a value; the rest are
// optional.
type FilterCriteria struct {
	Category          Category          `json:"category"`
	MaxDistanceMeters float64           `json:"max_distance_meters"`
	PriceMin          *int              `json:"price_min,omitempty"`
	PriceMax          *int              `json:"price_max,omitempty"`
	Smoking           SmokingPreference `json:"smoking,omitempty"`
	CuisineKeyword    string            `json:"cuisine_keyword,omitempty"`
}

// DefaultFilterCriteria returns the criteria used when the caller leaves
// everything unset.
func DefaultFilterCriteria(maxDistanceMeters float64) FilterCriteria {
	return FilterCriteria{
		Category:          CategoryRestaurant,
		MaxDistanceMeters: maxDistanceMeters,
		Smoking:           SmokingAny,
	}
}

// HasPriceRange reports whether a price-tier range was specified.
func (c FilterCriteria) HasPriceRange() bool {
	return c.PriceMin != nil || c.PriceMax != nil
}

// PriceRange returns the inclusive tier bounds, substituting the full
// 0..4 span for whichever end is unset.
func (c FilterCriteria) PriceRange() (min, max int) {
	min, max = 0, 4
	if c.PriceMin != nil {
		min = *c.PriceMin
	}
	if c.PriceMax != nil {
		max = *c.PriceMax
	}
	return min, max
}
