package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
filter: "BenchmarkCase::"
fail_fast: true
progress: verbose
log_level: debug
reports:
  - name: console_table
    options:
      precision: 2
      aggregate_iterations: true
  - name: json
`

func TestParseConfig_YAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(yamlConfig), "benchkit.yaml")
	require.NoError(t, err)

	assert.Equal(t, "BenchmarkCase::", cfg.Filter)
	assert.True(t, cfg.FailFast)
	assert.Equal(t, "verbose", cfg.Progress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset fields keep their defaults")
	require.Len(t, cfg.Reports, 2)
	assert.Equal(t, "console_table", cfg.Reports[0].Name)
	assert.Equal(t, map[string]any{"precision": 2, "aggregate_iterations": true}, cfg.Reports[0].Options)
	assert.Equal(t, map[string]any{}, cfg.Reports[1].Options)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig_JSON(t *testing.T) {
	data := `{"progress": "none", "no_color": true, "reports": [{"name": "html", "options": {"output": "out/r.html"}}]}`
	cfg, err := ParseConfig([]byte(data), "benchkit.json")
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Progress)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, map[string]any{"output": "out/r.html"}, cfg.Reports[0].Options)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
		want string
	}{
		{"bad json", `{"progress": `, "x.json", "failed to parse JSON config"},
		{"bad yaml", "progress: [", "x.yml", "failed to parse YAML config"},
		{"unknown extension", "progress: [", "x.conf", "unknown format .conf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.path)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchkit.yml")
	require.NoError(t, os.WriteFile(path, []byte("progress: log\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Progress)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"bad filter", func(c *Config) { c.Filter = "([" }, []string{"filter"}},
		{"bad progress", func(c *Config) { c.Progress = "bar" }, []string{"progress"}},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, []string{"log_level"}},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, []string{"log_format"}},
		{"missing report name", func(c *Config) { c.Reports = []ReportConfig{{Name: "json"}, {}} }, []string{"reports[1].name"}},
		{
			name: "several",
			mutate: func(c *Config) {
				c.Progress = ""
				c.LogFormat = ""
			},
			fields: []string{"progress", "log_format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))

			var fields []string
			for _, e := range verrs.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("progress", "bad")
	assert.Equal(t, "progress: bad", errs.Error())

	errs.Add("log_level", "worse")
	assert.Equal(t, "2 validation errors:\n  1. progress: bad\n  2. log_level: worse\n", errs.Error())
}
