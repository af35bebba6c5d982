package signals

import "strings"

// keywordRule maps any of its alternative substrings to one output label.
type keywordRule struct {
	alternatives []string
	label        string
}

// ambienceRules are evaluated in order; the order decides which tags win
// when the cap is reached.
var ambienceRules = []keywordRule{
	{[]string{"静か", "落ち着"}, "落ち着いた雰囲気"},
	{[]string{"おしゃれ", "オシャレ", "お洒落"}, "おしゃれ"},
	{[]string{"個室"}, "個室あり"},
	{[]string{"デート"}, "デート向き"},
	{[]string{"子連れ", "家族", "ファミリー"}, "家族向け"},
	{[]string{"一人", "ひとり", "おひとり"}, "おひとりさま歓迎"},
	{[]string{"賑やか", "にぎやか", "活気"}, "賑やか"},
	{[]string{"夜景", "景色", "眺め"}, "眺めが良い"},
}

// smokingRules overlap on purpose ("分煙" before the generic "禁煙"/"喫煙"),
// so their order is a contract, not a style choice.
var smokingRules = []keywordRule{
	{[]string{"喫煙室", "喫煙ルーム", "分煙"}, "分煙・喫煙室あり"},
	{[]string{"全席禁煙", "完全禁煙", "禁煙"}, "禁煙"},
	{[]string{"喫煙可", "喫煙OK", "タバコ"}, "喫煙可"},
}

const maxAmbienceTags = 4

// ExtractAmbienceTags classifies review text against the ambience rules
// and returns up to four distinct tags, ordered by rule priority of the
// first match. Matching is a case-insensitive substring scan.
func ExtractAmbienceTags(reviews []string) []string {
	tags := make([]string, 0, maxAmbienceTags)

	for _, rule := range ambienceRules {
		if len(tags) >= maxAmbienceTags {
			break
		}
		for _, text := range reviews {
			if matchesRule(text, rule) {
				tags = append(tags, rule.label)
				break
			}
		}
	}
	return tags
}

// ExtractSmokingPolicy returns the label of the first smoking rule that
// matches any review, scanning rules in priority order. An empty string
// means no claim is made either way.
func ExtractSmokingPolicy(reviews []string) string {
	for _, rule := range smokingRules {
		for _, text := range reviews {
			if matchesRule(text, rule) {
				return rule.label
			}
		}
	}
	return ""
}

func matchesRule(text string, rule keywordRule) bool {
	lowered := strings.ToLower(text)
	for _, alt := range rule.alternatives {
		if strings.Contains(lowered, strings.ToLower(alt)) {
			return true
		}
	}
	return false
}
