package domain

// Company columns arrive as Comany_* in some exports and are rewritten.
const (
	ColCompanySizeFa     = "Company_SizeFa"
	ColCompanyIndustryFa = "Company_IndustryFa"
	ColCompanyAge        = "Company_AgeFromEstablishmentYear"
	ColCompanyProvinceFa = "Company_ProvinceFa"
)
