package venue

// Review is one free-text review snippet. The places API returns reviews
// newest first and the extractors rely on that order.
type Review struct {
	AuthorName string  `json:"author_name,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Text       string  `json:"text"`
	Time       int64   `json:"time,omitempty"`
}

// ReviewTexts flattens reviews to their text, preserving order.
func ReviewTexts(reviews []Review) []string {
	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = r.Text
	}
	return texts
}
