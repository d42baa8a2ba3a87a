package domain

// Unspecified is the label every normalizer falls back to and the text
// default for filled categorical columns.
const Unspecified = "نامشخص"

// Canonical posting columns, after prefix stripping.
const (
	ColRawTitle                = "RawTitle"
	ColMainJobCategory         = "MainJobCategory"
	ColIndustryFa              = "IndustryFa"
	ColProvinceFa              = "ProvinceFa"
	ColWorkTypeFa              = "WorkTypeFa"
	ColMinSalary               = "MinSalary"
	ColMaxSalary               = "MaxSalary"
	ColRequiredMinAge          = "RequiredMinAge"
	ColRequiredMaxAge          = "RequiredMaxAge"
	ColRequiredExperienceYears = "RequiredExperienceYears"
	ColSalaryCanBeShown        = "SalaryCanBeShown"
	ColIsRemote                = "IsRemote"
	ColIsInternship            = "IsInternship"
	ColHasDisabilitySupport    = "HasDisabilitySupport"
	ColSoftwareSkills          = "SoftwareSkills"
	ColAcademicFields          = "AcademicFields"
	ColLanguageSkills          = "LanguageSkills"
	ColPreferredGender         = "PreferredGender"
)

// Transient columns added by analyses; never persisted.
const (
	ColAvgSalary      = "AvgSalary"
	ColAvgRequiredAge = "AvgRequiredAge"
)

// ListColumns hold stringified lists of records.
var ListColumns = []string{ColSoftwareSkills, ColAcademicFields, ColLanguageSkills}
