package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	// the duplicated "/" entry is intentional and surfaces as a warning
	assert.NotEmpty(t, res.Warnings)
	assert.NoError(t, Validate(Default()))
}

func TestEnsureUserConfig_WritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Translate.Dictionary, cfg.Translate.Dictionary)
	assert.Equal(t, def.Coerce.Fills, cfg.Coerce.Fills)
	assert.Equal(t, def.Coerce.Bools, cfg.Coerce.Bools)
	assert.Equal(t, def.Columns.Drop, cfg.Columns.Drop)
	assert.Equal(t, def.Classify.ITRoles, cfg.Classify.ITRoles)

	// a second call keeps user edits
	require.NoError(t, os.WriteFile(path, []byte("analyze:\n  top_n: 5\n"), 0o644))
	again, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Analyze.TopN)
}

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
columns:
  strip_prefixes: ["Jobpost_"]
  rewrite_prefixes:
    - from: "Comany_"
      to: "Company_"
translate:
  columns: ["RawTitle"]
  separator: {from: " / ", to: "، "}
  dictionary:
    - {from: "IT", to: "فناوری اطلاعات"}
coerce:
  bools: ["IsRemote"]
  numerics: ["MinSalary"]
  fills:
    - {column: "ProvinceFa", text: "نامشخص"}
    - {column: "RequiredExperienceYears", number: 0}
analyze:
  salary_outlier_quantile: 0.9
  top_n: 10
`
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jobpost_"}, cfg.Columns.StripPrefixes)
	assert.Equal(t, Pair{From: "Comany_", To: "Company_"}, cfg.Columns.RewritePrefixes[0])
	assert.Equal(t, Pair{From: " / ", To: "، "}, cfg.Translate.Separator)
	require.Len(t, cfg.Coerce.Fills, 2)
	require.NotNil(t, cfg.Coerce.Fills[0].Text)
	assert.Equal(t, "نامشخص", *cfg.Coerce.Fills[0].Text)
	require.NotNil(t, cfg.Coerce.Fills[1].Number)
	assert.Equal(t, 0.0, *cfg.Coerce.Fills[1].Number)
	assert.Equal(t, 0.9, cfg.Analyze.SalaryOutlierQuantile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   string
		wantWarn  bool
		checkNorm func(t *testing.T, c Config)
	}{
		{
			name: "trims and dedupes column lists",
			mutate: func(c *Config) {
				c.Coerce.Bools = []string{" IsRemote ", "IsRemote", ""}
			},
			checkNorm: func(t *testing.T, c Config) {
				assert.Equal(t, []string{"IsRemote"}, c.Coerce.Bools)
			},
		},
		{
			name:    "bad delimiter",
			mutate:  func(c *Config) { c.Input.Delimiter = ";;" },
			wantErr: "input.delimiter must be a single character",
		},
		{
			name:    "empty dictionary key",
			mutate:  func(c *Config) { c.Translate.Dictionary = append(c.Translate.Dictionary, Pair{To: "x"}) },
			wantErr: "cannot be empty",
		},
		{
			name:    "bool and numeric overlap",
			mutate:  func(c *Config) { c.Coerce.Bools = append(c.Coerce.Bools, "MinSalary") },
			wantErr: `column "MinSalary" is listed as both bool and numeric`,
		},
		{
			name:    "fill without value",
			mutate:  func(c *Config) { c.Coerce.Fills = append(c.Coerce.Fills, Fill{Column: "X"}) },
			wantErr: "needs text or number",
		},
		{
			name:    "quantile out of range",
			mutate:  func(c *Config) { c.Analyze.SalaryOutlierQuantile = 1.5 },
			wantErr: "salary_outlier_quantile",
		},
		{
			name: "text fill on numeric column warns",
			mutate: func(c *Config) {
				c.Coerce.Fills = append(c.Coerce.Fills, textFill("MinSalary", "?"))
			},
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			out, res := NormalizeAndValidate(cfg)

			if tt.wantErr != "" {
				require.False(t, res.OK())
				assert.Contains(t, joinLines(res.Errors), tt.wantErr)
				assert.Error(t, Validate(cfg))
				return
			}
			assert.True(t, res.OK(), "errors: %v", res.Errors)
			if tt.wantWarn {
				assert.Greater(t, len(res.Warnings), 1)
			}
			if tt.checkNorm != nil {
				tt.checkNorm(t, out)
			}
		})
	}
}

func TestOverlayDictionary(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	before := len(cfg.Translate.Dictionary)

	// absent file is not an error
	require.NoError(t, OverlayDictionary(&cfg, filepath.Join(dir, "absent.yml")))
	assert.Len(t, cfg.Translate.Dictionary, before)

	path := filepath.Join(dir, "dict.yml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary:\n  - {from: \"QA\", to: \"تضمین کیفیت\"}\n"), 0o644))
	require.NoError(t, OverlayDictionary(&cfg, path))
	require.Len(t, cfg.Translate.Dictionary, before+1)
	assert.Equal(t, Pair{From: "QA", To: "تضمین کیفیت"}, cfg.Translate.Dictionary[before])

	require.NoError(t, os.WriteFile(path, []byte("dictionary: [oops"), 0o644))
	assert.Error(t, OverlayDictionary(&cfg, path))
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Analyze.TopN = 0
	path := filepath.Join(t.TempDir(), "config.yml")
	assert.Error(t, SaveAtomic(path, cfg))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
