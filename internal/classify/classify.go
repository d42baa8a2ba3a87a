// Package classify maps free-form cells onto small ordered label sets.
// Every classifier is total: anything it does not recognise gets a
// fallback label instead of an error.
package classify

import (
	"strings"

	"jobposts-engine/internal/domain"
)

// Rule is one labelled predicate over prepared text.
type Rule struct {
	Label string
	Match func(string) bool
}

// Classifier checks Rules in order after Prepare; the first match wins.
type Classifier struct {
	Prepare  func(string) string
	Rules    []Rule
	Fallback string
	// NonText is the label for cells that hold no text. Empty means
	// domain.Unspecified.
	NonText string
	// Order overrides the display order returned by Labels.
	Order []string
}

func (c Classifier) Classify(v domain.Value) string {
	s, ok := v.AsText()
	if !ok {
		if c.NonText != "" {
			return c.NonText
		}
		return domain.Unspecified
	}
	return c.ClassifyText(s)
}

func (c Classifier) ClassifyText(s string) string {
	if c.Prepare != nil {
		s = c.Prepare(s)
	}
	for _, r := range c.Rules {
		if r.Match(s) {
			return r.Label
		}
	}
	return c.Fallback
}

// Labels returns every label the classifier can produce, in display order.
func (c Classifier) Labels() []string {
	if len(c.Order) > 0 {
		return append([]string(nil), c.Order...)
	}
	out := make([]string, 0, len(c.Rules)+2)
	seen := map[string]bool{}
	add := func(l string) {
		if l != "" && !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, r := range c.Rules {
		add(r.Label)
	}
	add(c.Fallback)
	add(c.NonText)
	add(domain.Unspecified)
	return out
}

// ContainsAny matches text holding at least one of the needles.
func ContainsAny(needles ...string) func(string) bool {
	return func(s string) bool {
		for _, n := range needles {
			if n != "" && strings.Contains(s, n) {
				return true
			}
		}
		return false
	}
}

// EqualsAny matches text equal to one of the values.
func EqualsAny(values ...string) func(string) bool {
	return func(s string) bool {
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

// KeywordSet is a labelled bag of lower-case keywords.
type KeywordSet struct {
	Label string
	Any   []string
}

func (k KeywordSet) rule() Rule {
	lower := make([]string, 0, len(k.Any))
	for _, n := range k.Any {
		lower = append(lower, strings.ToLower(n))
	}
	return Rule{Label: k.Label, Match: ContainsAny(lower...)}
}

// cut removes each needle in turn.
func cut(s string, needles ...string) string {
	for _, n := range needles {
		s = strings.ReplaceAll(s, n, "")
	}
	return s
}
