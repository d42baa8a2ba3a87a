package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobposts-engine/internal/domain"
)

var (
	testManager = []string{"manager", "مدیر", "head", "سرپرست", "chief", "رئیس"}
	testSenior  = []string{"senior", "ارشد"}
	testJunior  = []string{"junior", "کارآموز", "intern", "تازه"}
)

func TestCompanySize(t *testing.T) {
	tests := []struct {
		in   domain.Value
		want string
	}{
		{domain.Text("زیر ۱۰ نفر"), SizeUnder10},
		{domain.Text("زیر10نفر"), SizeUnder10},
		{domain.Text("زیر 10 نفر"), SizeUnder10},
		{domain.Text("۱۱ تا ۵۰ نفر"), Size11To50},
		{domain.Text("11 تا 50 نفر"), Size11To50},
		{domain.Text("۵۱ تا ۲۰۰ نفر"), Size51To200},
		{domain.Text("51 تا 200"), Size51To200},
		{domain.Text("۲۰۱ تا ۵۰۰ نفر"), Size201To500},
		{domain.Text("۵۰۱ تا ۱۰۰۰ نفر"), Size501To1K},
		{domain.Text("بیش از ۱۰۰۰ نفر"), SizeOver1K},
		{domain.Text("بیش از 1000"), SizeOver1K},
		{domain.Text("Under 10"), domain.Unspecified},
		{domain.Text(""), domain.Unspecified},
		{domain.Missing(), domain.Unspecified},
		{domain.Number(10), domain.Unspecified},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CompanySize.Classify(tt.in))
		})
	}
}

func TestCompanySize_Labels(t *testing.T) {
	assert.Equal(t, []string{
		SizeUnder10, Size11To50, Size51To200, Size201To500, Size501To1K, SizeOver1K,
		domain.Unspecified,
	}, CompanySize.Labels())
}

func TestSeniority(t *testing.T) {
	c := Seniority(testManager, testSenior, testJunior)
	tests := []struct {
		name string
		in   domain.Value
		want string
	}{
		{"manager beats senior", domain.Text("Senior Engineering Manager"), SeniorityManager},
		{"persian manager", domain.Text("مدیر فروش ارشد"), SeniorityManager},
		{"senior", domain.Text("SENIOR Go Developer"), SenioritySenior},
		{"senior beats junior", domain.Text("senior intern mentor"), SenioritySenior},
		{"junior", domain.Text("کارآموز حسابداری"), SeniorityJunior},
		{"no keyword", domain.Text("Go Developer"), SeniorityMid},
		{"empty title", domain.Text(""), SeniorityMid},
		{"missing", domain.Missing(), domain.Unspecified},
		{"number", domain.Number(3), domain.Unspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.in))
		})
	}

	assert.Equal(t, []string{
		SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityManager, domain.Unspecified,
	}, c.Labels())
}

func TestExperienceBand(t *testing.T) {
	tests := []struct {
		in   domain.Value
		want string
	}{
		{domain.Number(0), ExpNone},
		{domain.Number(1), ExpNone},
		{domain.Number(1.5), ExpLow},
		{domain.Number(3), ExpLow},
		{domain.Number(7), ExpMid},
		{domain.Number(10), ExpSenior},
		{domain.Number(10.1), ExpVeteran},
		{domain.Text("۵"), ExpMid},
		{domain.Text("abc"), domain.Unspecified},
		{domain.Missing(), domain.Unspecified},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceBand.Classify(tt.in))
		})
	}
	assert.Len(t, ExperienceBand.Labels(), 6)
}

func TestAgeAndSalaryBands(t *testing.T) {
	mean, ok := Mean(domain.Number(22), domain.Number(30))
	assert.True(t, ok)
	assert.Equal(t, "۲۵ تا ۳۰ سال", AgeBand.ClassifyNumber(mean))

	mean, ok = Mean(domain.Missing(), domain.Text("40"))
	assert.True(t, ok)
	assert.Equal(t, 40.0, mean)

	_, ok = Mean(domain.Missing(), domain.Text("x"))
	assert.False(t, ok)

	assert.Equal(t, domain.Unspecified, AgeBand.ClassifyNumber(17))
	assert.Equal(t, domain.Unspecified, AgeBand.ClassifyNumber(70))
	assert.Equal(t, "۴۵ تا ۶۵ سال", AgeBand.ClassifyNumber(65))

	assert.Equal(t, domain.Unspecified, SalaryBand.ClassifyNumber(0))
	assert.Equal(t, domain.Unspecified, SalaryBand.ClassifyNumber(-5))
	assert.Equal(t, "تا ۱۰ میلیون", SalaryBand.ClassifyNumber(8))
	assert.Equal(t, "بیش از ۵۰ میلیون", SalaryBand.ClassifyNumber(80))
}

func TestCompanyAge(t *testing.T) {
	assert.Equal(t, "کمتر از ۴ سال", CompanyAge.Classify(domain.Text("Less than 4 years")))
	assert.Equal(t, "۱۰ تا ۱۴ سال", CompanyAge.Classify(domain.Text(" 10 - 14 years ")))
	assert.Equal(t, "بیش از ۲۰ سال", CompanyAge.Classify(domain.Text("بیش از ۲۰ سال")))
	assert.Equal(t, domain.Unspecified, CompanyAge.Classify(domain.Text("ancient")))
	assert.Equal(t, domain.Unspecified, CompanyAge.Classify(domain.Missing()))
}

func TestITRole(t *testing.T) {
	c := ITRole([]KeywordSet{
		{Label: "بک-اند", Any: []string{"back end", "backend"}},
		{Label: "فرانت-اند", Any: []string{"Front End"}},
		{Label: "دواپس", Any: []string{"devops"}},
	})
	assert.Equal(t, "بک-اند", c.Classify(domain.Text("Senior Back-End Developer")))
	assert.Equal(t, "بک-اند", c.Classify(domain.Text("back_end engineer")))
	assert.Equal(t, "فرانت-اند", c.Classify(domain.Text("FRONT-END dev")))
	assert.Equal(t, "دواپس", c.Classify(domain.Text("DevOps")))
	assert.Equal(t, Other, c.Classify(domain.Text("Accountant")))
	assert.Equal(t, Other, c.Classify(domain.Missing()))
	assert.Equal(t, []string{"بک-اند", "فرانت-اند", "دواپس", Other, domain.Unspecified}, c.Labels())
}

func TestDegreeLevel(t *testing.T) {
	assert.Equal(t, "کارشناسی", DegreeLevel(domain.Text("[{'DegreeLevel': 'کارشناسی'}]")))
	assert.Equal(t, domain.Unspecified, DegreeLevel(domain.Text("[")))
}
