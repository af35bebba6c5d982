package congestion

import (
	"strings"
	"time"
)

// Level buckets the heuristic crowd estimate.
type Level string

const (
	LevelEmpty  Level = "empty"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Verdict pairs a crowd level with its display label and color. The
// labels and colors are presentation constants consumed as-is by clients.
type Verdict struct {
	Level Level  `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var verdicts = map[Level]Verdict{
	LevelEmpty:  {Level: LevelEmpty, Label: "空いています", Color: "#4caf50"},
	LevelLow:    {Level: LevelLow, Label: "やや空いています", Color: "#8bc34a"},
	LevelMedium: {Level: LevelMedium, Label: "やや混んでいます", Color: "#ff9800"},
	LevelHigh:   {Level: LevelHigh, Label: "混んでいます", Color: "#f44336"},
}

// Estimate scores the expected crowd level for a venue at a given hour
// and weekday from its review volume and rating. Pure and deterministic:
// same inputs, same verdict.
func Estimate(hour int, weekday time.Weekday, ratingCount int, rating float64) Verdict {
	total := timeScore(hour, weekday) + popularityScore(ratingCount, rating)

	switch {
	case total >= 6:
		return verdicts[LevelHigh]
	case total >= 4:
		return verdicts[LevelMedium]
	case total >= 2:
		return verdicts[LevelLow]
	default:
		return verdicts[LevelEmpty]
	}
}

// timeScore peaks over lunch (11-13) and dinner (18-20), dips in the
// idle afternoon (14-17), with a weekend bump.
func timeScore(hour int, weekday time.Weekday) int {
	score := 2
	switch {
	case (hour >= 11 && hour <= 13) || (hour >= 18 && hour <= 20):
		score = 3
	case hour >= 14 && hour <= 17:
		score = 1
	}
	if weekday == time.Saturday || weekday == time.Sunday {
		score++
	}
	return score
}

// popularityScore uses the highest review-count threshold met, plus one
// for a standout rating.
func popularityScore(ratingCount int, rating float64) int {
	score := 0
	switch {
	case ratingCount > 500:
		score = 3
	case ratingCount > 100:
		score = 2
	case ratingCount > 30:
		score = 1
	}
	if rating >= 4.3 {
		score++
	}
	return score
}

// ReviewSignal is the crowd signal read from review text. It is a
// separate signal from Estimate and the two are never merged.
type ReviewSignal string

const (
	SignalCrowded ReviewSignal = "crowded"
	SignalEmpty   ReviewSignal = "empty"
	SignalUnknown ReviewSignal = "unknown"
)

const maxReviewsExamined = 5

var crowdedKeywords = []string{"混んで", "混雑", "行列", "満席", "並ん", "待ち時間"}

var emptyKeywords = []string{"空いて", "すいて", "ガラガラ", "閑散", "貸切"}

// EstimateFromReviews scans at most the first five reviews (callers pass
// them newest first) and counts each review once per keyword set. A
// signal needs both a majority and at least two supporting reviews;
// anything weaker is Unknown.
func EstimateFromReviews(reviews []string) ReviewSignal {
	crowded, empty := 0, 0

	for i, text := range reviews {
		if i >= maxReviewsExamined {
			break
		}
		if containsAny(text, crowdedKeywords) {
			crowded++
		}
		if containsAny(text, emptyKeywords) {
			empty++
		}
	}

	switch {
	case crowded > empty && crowded >= 2:
		return SignalCrowded
	case empty > crowded && empty >= 2:
		return SignalEmpty
	default:
		return SignalUnknown
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
