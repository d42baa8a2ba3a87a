package classify

import "strings"

// Other is the IT role of titles that match no bucket.
const Other = "سایر"

var roleSeparators = strings.NewReplacer("-", " ", "_", " ")

// ITRole buckets job titles by keyword. Titles are lower-cased and "-"
// and "_" read as spaces, so "Back-End" and "back_end" both hit "back end".
func ITRole(sets []KeywordSet) Classifier {
	rules := make([]Rule, 0, len(sets))
	for _, s := range sets {
		rules = append(rules, s.rule())
	}
	return Classifier{
		Prepare: func(s string) string {
			return roleSeparators.Replace(strings.ToLower(s))
		},
		Rules:    rules,
		Fallback: Other,
		NonText:  Other,
	}
}
