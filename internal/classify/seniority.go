package classify

import (
	"strings"

	"jobposts-engine/internal/domain"
)

const (
	SeniorityManager = "مدیر / سرپرست"
	SenioritySenior  = "ارشد"
	SeniorityJunior  = "مقدماتی / کارآموز"
	SeniorityMid     = "سطح میانی"
)

// Seniority infers a level from a job title. Manager keywords are tried
// before senior ones, and senior before junior; a title matching none is
// mid-level.
func Seniority(manager, senior, junior []string) Classifier {
	return Classifier{
		Prepare: strings.ToLower,
		Rules: []Rule{
			KeywordSet{Label: SeniorityManager, Any: manager}.rule(),
			KeywordSet{Label: SenioritySenior, Any: senior}.rule(),
			KeywordSet{Label: SeniorityJunior, Any: junior}.rule(),
		},
		Fallback: SeniorityMid,
		Order: []string{
			SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityManager,
			domain.Unspecified,
		},
	}
}
