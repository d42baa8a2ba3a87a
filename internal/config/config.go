package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Rule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

type Pair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Fill is a default for missing cells: Text when set, else Number.
type Fill struct {
	Column string   `yaml:"column"`
	Text   *string  `yaml:"text,omitempty"`
	Number *float64 `yaml:"number,omitempty"`
}

type Config struct {
	Input struct {
		Delimiter string   `yaml:"delimiter"`
		NAValues  []string `yaml:"na_values"`
	} `yaml:"input"`

	Columns struct {
		StripPrefixes   []string `yaml:"strip_prefixes"`
		RewritePrefixes []Pair   `yaml:"rewrite_prefixes"`
		Drop            []string `yaml:"drop"`
	} `yaml:"columns"`

	Translate struct {
		Columns       []string `yaml:"columns"`
		MarkupColumns []string `yaml:"markup_columns"`
		Separator     Pair     `yaml:"separator"`
		Dictionary    []Pair   `yaml:"dictionary"`
	} `yaml:"translate"`

	Coerce struct {
		Bools    []string `yaml:"bools"`
		Numerics []string `yaml:"numerics"`
		Fills    []Fill   `yaml:"fills"`
	} `yaml:"coerce"`

	Classify struct {
		Manager []string `yaml:"manager"`
		Senior  []string `yaml:"senior"`
		Junior  []string `yaml:"junior"`
		ITRoles []Rule   `yaml:"it_roles"`
	} `yaml:"classify"`

	Analyze struct {
		SalaryOutlierQuantile float64 `yaml:"salary_outlier_quantile"`
		ExperienceCap         float64 `yaml:"experience_cap"`
		TopN                  int     `yaml:"top_n"`
		MinRoleCount          int     `yaml:"min_role_count"`

		// ITCategories are MainJobCategory values as they read after
		// translation.
		ITCategories []string `yaml:"it_categories"`
	} `yaml:"analyze"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func textFill(col, s string) Fill { return Fill{Column: col, Text: &s} }
func numFill(col string, f float64) Fill {
	return Fill{Column: col, Number: &f}
}

// Default is the JobVision export profile.
func Default() Config {
	var cfg Config

	cfg.Input.Delimiter = ","
	cfg.Input.NAValues = []string{
		"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null",
	}

	cfg.Columns.StripPrefixes = []string{"Jobpost_"}
	cfg.Columns.RewritePrefixes = []Pair{{From: "Comany_", To: "Company_"}}
	cfg.Columns.Drop = []string{
		"RowNumber", "ProvinceEn", "WorkTypeEn", "IndustryEn", "BenefitEn",
		"CityEn", "CompanyOwnershipTypesEn", "SizeEn", "ActivityTypeEn",
		"Company_ProvinceEn",
	}

	cfg.Translate.Columns = []string{"MainJobCategory", "IndustryFa", "Company_IndustryFa", "RawTitle"}
	cfg.Translate.Separator = Pair{From: " / ", To: "، "}
	cfg.Translate.Dictionary = []Pair{
		{From: ".net", To: "دات نت"},
		{From: "net.", To: "دات نت"},
		{From: "net core", To: "دات نت کر"},
		{From: "HSE", To: "بهداشت، ایمنی و محیط زیست"},
		{From: "UI/UX", To: "رابط و تجربه کاربری"},
		{From: "DevOps", To: "دواپس"},
		{From: "Sys-Admin", To: "ادمین سیستم"},
		{From: "MDF", To: "ام‌دی‌اف"},
		{From: "Back-End", To: "بک-اند"},
		{From: "Front-End", To: "فرانت-اند"},
		{From: "Full-Stack", To: "فول-استک"},
		{From: "IT", To: "فناوری اطلاعات"},
		{From: "/", To: "،"},
		{From: "/", To: "-"},
		{From: "and", To: "و"},
		{From: "with", To: "با"},
		{From: "for", To: "برای"},
		{From: "coremvc", To: "دات‌نت کر ام‌وی‌سی"},
	}

	cfg.Coerce.Fills = []Fill{
		textFill("ProvinceFa", "نامشخص"),
		textFill("WorkTypeFa", "نامشخص"),
		textFill("MainJobCategory", "نامشخص"),
		numFill("RequiredExperienceYears", 0),
	}
	cfg.Coerce.Bools = []string{
		"SalaryCanBeShown", "RequiredRelatedExperienceInThisIndustry",
		"HasDisabilitySupport", "IsRemote", "IsInternship",
		"PriorityWithLocalCandidate", "RequiredMilitaryServiceCard",
	}
	cfg.Coerce.Numerics = []string{
		"MinSalary", "MaxSalary", "RequiredMinAge", "RequiredMaxAge",
		"RequiredExperienceYears",
	}

	cfg.Classify.Manager = []string{"manager", "مدیر", "head", "سرپرست", "chief", "رئیس"}
	cfg.Classify.Senior = []string{"senior", "ارشد"}
	cfg.Classify.Junior = []string{"junior", "کارآموز", "intern", "تازه"}
	cfg.Classify.ITRoles = []Rule{
		{Tag: "توسعه دهنده بک-اند", Any: []string{"back end", "backend", "بک اند"}},
		{Tag: "توسعه دهنده فرانت-اند", Any: []string{"front end", "frontend", "فرانت اند"}},
		{Tag: "توسعه دهنده فول-استک", Any: []string{"full stack", "fullstack", "فول استک"}},
		{Tag: "توسعه دهنده اندروید", Any: []string{"android", "اندروید"}},
		{Tag: "توسعه دهنده iOS", Any: []string{"ios"}},
		{Tag: "مهندس DevOps", Any: []string{"devops", "دواپس"}},
		{Tag: "دانشمند / تحلیلگر داده", Any: []string{"data scientist", "دانشمند داده", "تحلیلگر داده"}},
		{Tag: "مهندس شبکه", Any: []string{"network", "شبکه"}},
	}

	cfg.Analyze.SalaryOutlierQuantile = 0.98
	cfg.Analyze.ExperienceCap = 20
	cfg.Analyze.TopN = 20
	cfg.Analyze.MinRoleCount = 500
	cfg.Analyze.ITCategories = []string{
		"توسعه نرم افزار و برنامه نویسی",
		"فناوری اطلاعات، نرم افزار و سخت افزار",
		"شبکه، امنیت، زیرساخت",
		"دواپس، ادمین سیستم",
	}

	return cfg
}
