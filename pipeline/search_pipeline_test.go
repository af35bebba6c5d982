package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"df-server/models"
	"df-server/models/venue"
)

// 2026-01-05 12:00 is a Monday lunch hour.
var frozenNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

// flatDistance reports the candidate's latitude as its distance in
// meters, so tests steer the distance filter through coordinates.
func flatDistance(_, _, lat, _ float64) float64 {
	return lat
}

func openAllWeek() []string {
	weekly := make([]string, 7)
	for i := range weekly {
		weekly[i] = "9時00分〜22時00分"
	}
	return weekly
}

func closedAllWeek() []string {
	weekly := make([]string, 7)
	for i := range weekly {
		weekly[i] = "定休日"
	}
	return weekly
}

func candidate(id string, rating float64, ratingCount int, distance float64, weekly []string) venue.Venue {
	return venue.Venue{
		VenueID:          id,
		VenueName:        "venue " + id,
		VenueLat:         distance,
		Rating:           rating,
		UserRatingsTotal: ratingCount,
		WeeklyHours:      weekly,
	}
}

func ids(venues []venue.Venue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.VenueID
	}
	return out
}

func TestSearch_RatingSortWithTieBreak(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		candidate("a", 4.5, 10, 100, openAllWeek()),
		candidate("b", 4.5, 50, 100, openAllWeek()),
		candidate("c", 3.0, 999, 100, openAllWeek()),
	}
	criteria := models.DefaultFilterCriteria(1000)

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.Equal(t, []string{"b", "a", "c"}, ids(ranked),
		"rating desc, tie-break rating count desc")
}

func TestSearch_StableOnExactTies(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		candidate("first", 4.0, 100, 100, openAllWeek()),
		candidate("second", 4.0, 100, 100, openAllWeek()),
		candidate("third", 4.0, 100, 100, openAllWeek()),
	}
	criteria := models.DefaultFilterCriteria(1000)

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.Equal(t, []string{"first", "second", "third"}, ids(ranked),
		"exact ties keep their upstream order")
}

func TestSearch_FiltersNonOpen(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		candidate("open", 4.0, 10, 100, openAllWeek()),
		candidate("closed", 4.8, 10, 100, closedAllWeek()),
		candidate("unknown", 4.9, 10, 100, nil),
	}
	criteria := models.DefaultFilterCriteria(1000)

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.Equal(t, []string{"open"}, ids(ranked),
		"unknown is excluded along with closed")
}

func TestSearch_FiltersDistance(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		candidate("near", 4.0, 10, 500, openAllWeek()),
		candidate("boundary", 4.0, 10, 1000, openAllWeek()),
		candidate("far", 4.0, 10, 1001, openAllWeek()),
	}
	criteria := models.DefaultFilterCriteria(1000)

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.Equal(t, []string{"near", "boundary"}, ids(ranked))
}

func TestSearch_PriceRange(t *testing.T) {
	tier := func(n int) *int { return &n }
	withTier := func(id string, t *int) venue.Venue {
		c := candidate(id, 4.0, 10, 100, openAllWeek())
		c.PriceLevel = t
		return c
	}

	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		withTier("cheap", tier(0)),
		withTier("mid", tier(2)),
		withTier("expensive", tier(4)),
		withTier("unknown-tier", nil),
	}
	min, max := 1, 2
	criteria := models.DefaultFilterCriteria(1000)
	criteria.PriceMin = &min
	criteria.PriceMax = &max

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.ElementsMatch(t, []string{"mid", "unknown-tier"}, ids(ranked),
		"absent price tier gets the benefit of the doubt")
}

func TestSearch_DerivedFields(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{candidate("a", 4.5, 600, 100, openAllWeek())}
	criteria := models.DefaultFilterCriteria(1000)

	ranked := p.Search(candidates, 0, 0, criteria, frozenNow)

	if assert.Len(t, ranked, 1) {
		v := ranked[0]
		assert.Equal(t, 100.0, v.DistanceMeters)
		assert.EqualValues(t, "open", v.OpenNow)
		if assert.NotNil(t, v.Congestion) {
			// Monday lunch (3) + >500 reviews and standout rating (4) = 7
			assert.EqualValues(t, "high", v.Congestion.Level)
		}
	}
}

func TestSearch_EmptyInputs(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	criteria := models.DefaultFilterCriteria(1000)

	assert.Empty(t, p.Search(nil, 0, 0, criteria, frozenNow))
	assert.Empty(t, p.Search([]venue.Venue{}, 0, 0, criteria, frozenNow))

	// All filtered out is an empty result, not an error.
	closed := []venue.Venue{candidate("x", 5, 1, 100, closedAllWeek())}
	assert.Empty(t, p.Search(closed, 0, 0, criteria, frozenNow))
}

func TestSearch_Idempotent(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{
		candidate("a", 4.5, 10, 100, openAllWeek()),
		candidate("b", 4.5, 50, 100, openAllWeek()),
		candidate("c", 3.0, 999, 100, openAllWeek()),
	}
	criteria := models.DefaultFilterCriteria(1000)

	first := p.Search(candidates, 0, 0, criteria, frozenNow)
	second := p.Search(candidates, 0, 0, criteria, frozenNow)

	assert.Equal(t, first, second, "same inputs and instant, same output")
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	p := NewSearchPipeline(flatDistance)
	candidates := []venue.Venue{candidate("a", 4.5, 10, 100, openAllWeek())}

	p.Search(candidates, 0, 0, models.DefaultFilterCriteria(1000), frozenNow)

	assert.Zero(t, candidates[0].DistanceMeters, "input slice must stay untouched")
	assert.Empty(t, candidates[0].OpenNow)
}
