package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmbienceTags_OrderAndCap(t *testing.T) {
	// Six distinct rules match across the reviews; only the first four
	// in rule order survive.
	reviews := []string{
		"夜景がきれいでデートにぴったり。店内はおしゃれ。",
		"個室があって静かに話せます。",
		"家族で行きました。子連れでも安心。",
	}

	tags := ExtractAmbienceTags(reviews)

	assert.Equal(t, []string{"落ち着いた雰囲気", "おしゃれ", "個室あり", "デート向き"}, tags,
		"tags must follow rule order and cap at 4")
}

func TestExtractAmbienceTags_NoDuplicates(t *testing.T) {
	reviews := []string{"静かなお店", "静かで落ち着く", "とても静か"}

	tags := ExtractAmbienceTags(reviews)

	assert.Equal(t, []string{"落ち着いた雰囲気"}, tags)
}

func TestExtractAmbienceTags_Empty(t *testing.T) {
	assert.Empty(t, ExtractAmbienceTags(nil))
	assert.Empty(t, ExtractAmbienceTags([]string{"ラーメンが美味しい"}))
}

func TestExtractSmokingPolicy_PriorityOrder(t *testing.T) {
	// 喫煙室 outranks the generic 禁煙 even when both appear, and even
	// when the generic match sits in an earlier review.
	reviews := []string{
		"店内は禁煙です",
		"2階に喫煙室があります",
	}

	assert.Equal(t, "分煙・喫煙室あり", ExtractSmokingPolicy(reviews))
}

func TestExtractSmokingPolicy(t *testing.T) {
	tests := []struct {
		name    string
		reviews []string
		want    string
	}{
		{"fully non smoking", []string{"全席禁煙でした"}, "禁煙"},
		{"smoking allowed", []string{"タバコが吸えるのが嬉しい"}, "喫煙可"},
		{"no claim", []string{"味は最高"}, ""},
		{"no reviews", nil, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ExtractSmokingPolicy(test.reviews))
		})
	}
}
