package congestion

import (
	"testing"
	"time"
)

func TestEstimate_Levels(t *testing.T) {
	tests := []struct {
		name        string
		hour        int
		weekday     time.Weekday
		ratingCount int
		rating      float64
		want        Level
	}{
		// lunch peak + weekend (4) + >500 reviews and standout rating (4) = 8
		{"saturday lunch popular", 12, time.Saturday, 600, 4.5, LevelHigh},
		// off-peak weekday (1) + no popularity (0) = 1
		{"tuesday afternoon quiet", 15, time.Tuesday, 10, 3.0, LevelEmpty},
		// lunch weekday (3) + >30 reviews (1) = 4
		{"weekday lunch modest", 12, time.Tuesday, 40, 4.0, LevelMedium},
		// off-peak weekday (1) + standout rating only (1) = 2
		{"off-peak standout rating", 15, time.Tuesday, 0, 4.3, LevelLow},
		// dinner weekend (4) + >100 reviews (2) = 6
		{"saturday dinner popular", 19, time.Saturday, 150, 4.0, LevelHigh},
		// default hour weekday (2) + >100 reviews (2) = 4
		{"morning weekday popular", 9, time.Wednesday, 150, 4.0, LevelMedium},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Estimate(test.hour, test.weekday, test.ratingCount, test.rating)
			if got.Level != test.want {
				t.Errorf("Estimate(%d, %v, %d, %.1f).Level = %s; want %s",
					test.hour, test.weekday, test.ratingCount, test.rating, got.Level, test.want)
			}
		})
	}
}

// Labels and colors are a presentation contract consumed as-is.
func TestEstimate_StableLabelsAndColors(t *testing.T) {
	tests := []struct {
		level Level
		label string
		color string
	}{
		{LevelEmpty, "空いています", "#4caf50"},
		{LevelLow, "やや空いています", "#8bc34a"},
		{LevelMedium, "やや混んでいます", "#ff9800"},
		{LevelHigh, "混んでいます", "#f44336"},
	}

	for _, test := range tests {
		v := verdicts[test.level]
		if v.Label != test.label {
			t.Errorf("label for %s = %q; want %q", test.level, v.Label, test.label)
		}
		if v.Color != test.color {
			t.Errorf("color for %s = %q; want %q", test.level, v.Color, test.color)
		}
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	a := Estimate(12, time.Saturday, 600, 4.5)
	b := Estimate(12, time.Saturday, 600, 4.5)
	if a != b {
		t.Errorf("Estimate is not deterministic: %+v vs %+v", a, b)
	}
}

func TestEstimateFromReviews(t *testing.T) {
	tests := []struct {
		name    string
		reviews []string
		want    ReviewSignal
	}{
		{
			"three crowded of five",
			[]string{"すごく混んでいた", "行列がすごい", "満席でした", "料理が美味しい", "また行きたい"},
			SignalCrowded,
		},
		{
			"one crowded one empty",
			[]string{"混雑していた", "空いていて快適", "普通のお店"},
			SignalUnknown,
		},
		{
			"two empty zero crowded",
			[]string{"ガラガラでした", "平日は空いています", "味は良い"},
			SignalEmpty,
		},
		{"no reviews", nil, SignalUnknown},
		{
			// Both keyword families in one review count once each.
			"single review both signals",
			[]string{"夜は混雑、昼は空いている", "普通のお店"},
			SignalUnknown,
		},
		{
			"empty outvotes crowded",
			[]string{"夜は混雑、昼は空いている", "昼は空いていた"},
			SignalEmpty,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := EstimateFromReviews(test.reviews); got != test.want {
				t.Errorf("EstimateFromReviews = %s; want %s", got, test.want)
			}
		})
	}
}

// Reviews past the first five are ignored entirely.
func TestEstimateFromReviews_CapsAtFive(t *testing.T) {
	reviews := []string{
		"普通", "普通", "普通", "普通", "混んでいた",
		"混雑", "行列",
	}
	if got := EstimateFromReviews(reviews); got != SignalUnknown {
		t.Errorf("reviews beyond the first five leaked in: got %s", got)
	}
}
