package classify

import (
	"strings"

	"jobposts-engine/internal/domain"
)

// CompanyAge translates the English establishment-age ranges of the
// export. Values already in Persian pass through to their own tier.
var CompanyAge = Classifier{
	Prepare: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	Rules: []Rule{
		{Label: "کمتر از ۴ سال", Match: EqualsAny("less than 4 years", "کمتر از ۴ سال")},
		{Label: "۵ تا ۹ سال", Match: EqualsAny("5 - 9 years", "۵ تا ۹ سال")},
		{Label: "۱۰ تا ۱۴ سال", Match: EqualsAny("10 - 14 years", "۱۰ تا ۱۴ سال")},
		{Label: "۱۵ تا ۱۹ سال", Match: EqualsAny("15 - 19 years", "۱۵ تا ۱۹ سال")},
		{Label: "بیش از ۲۰ سال", Match: EqualsAny("more than 20 years", "بیش از ۲۰ سال")},
	},
	Fallback: domain.Unspecified,
}
