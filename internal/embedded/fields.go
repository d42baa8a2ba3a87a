package embedded

import "jobposts-engine/internal/domain"

const (
	AttrSkillTitle    = "TitleFa"
	AttrFieldType     = "FieldType"
	AttrDegreeLevel   = "DegreeLevel"
	AttrLanguageTitle = "Languages_TitleFa"
)

// SkillTitles reads SoftwareSkills[].TitleFa.
func SkillTitles(v domain.Value) []string {
	s, ok := v.AsText()
	if !ok {
		return nil
	}
	return Default.Strings(s, AttrSkillTitle)
}

// AcademicFieldTypes reads AcademicFields[].FieldType.
func AcademicFieldTypes(v domain.Value) []string {
	s, ok := v.AsText()
	if !ok {
		return nil
	}
	return Default.Strings(s, AttrFieldType)
}

// LanguageTitles reads LanguageSkills[].Languages_TitleFa.
func LanguageTitles(v domain.Value) []string {
	s, ok := v.AsText()
	if !ok {
		return nil
	}
	return Default.Strings(s, AttrLanguageTitle)
}

// DegreeLevel reads AcademicFields[0].DegreeLevel.
func DegreeLevel(v domain.Value) string {
	s, ok := v.AsText()
	if !ok {
		return domain.Unspecified
	}
	return Default.First(s, AttrDegreeLevel)
}
