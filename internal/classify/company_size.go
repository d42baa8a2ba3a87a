package classify

import "jobposts-engine/internal/domain"

const (
	SizeUnder10  = "زیر ۱۰ نفر"
	Size11To50   = "۱۱ تا ۵۰ نفر"
	Size51To200  = "۵۱ تا ۲۰۰ نفر"
	Size201To500 = "۲۰۱ تا ۵۰۰ نفر"
	Size501To1K  = "۵۰۱ تا ۱۰۰۰ نفر"
	SizeOver1K   = "بیش از ۱۰۰۰ نفر"
)

// CompanySize folds the many spellings of a headcount range onto six
// tiers. Spaces and the words "تا" and "نفر" are removed first, so
// "زیر ۱۰ نفر" and "زیر10نفر" land in the same tier.
var CompanySize = Classifier{
	Prepare: func(s string) string { return cut(s, " ", "تا", "نفر") },
	Rules: []Rule{
		{Label: SizeUnder10, Match: ContainsAny("زیر۱۰", "زیر10")},
		{Label: Size11To50, Match: ContainsAny("۱۱۵۰", "1150")},
		{Label: Size51To200, Match: ContainsAny("۵۱۲۰۰", "51200")},
		{Label: Size201To500, Match: ContainsAny("۲۰۱۵۰۰", "201500")},
		{Label: Size501To1K, Match: ContainsAny("۵۰۱۱۰۰۰", "5011000")},
		{Label: SizeOver1K, Match: ContainsAny("بیشاز۱۰۰۰", "بیشاز1000")},
	},
	Fallback: domain.Unspecified,
}
