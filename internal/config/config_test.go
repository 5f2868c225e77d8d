package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"job_url": "https://example.com/jobs/123",
		"max_keywords": 10,
		"density_limit": 0.05,
		"section_caps": {"skills": 6, "summary": 2},
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/jobs/123", cfg.JobURL)
	assert.Equal(t, 10, cfg.MaxKeywords)
	assert.Equal(t, 0.05, cfg.DensityLimit)
	assert.Equal(t, map[string]int{"skills": 6, "summary": 2}, cfg.SectionCaps)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `{"max_keyword": 5}`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"job": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	jobPath := writeConfigFile(t, "some job description")

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid job file", Config{Job: jobPath}, false},
		{"job and job_url both set", Config{Job: jobPath, JobURL: "https://example.com"}, true},
		{"negative max_keywords", Config{MaxKeywords: -1}, true},
		{"density above one", Config{DensityLimit: 1.5}, true},
		{"negative section cap", Config{SectionCaps: map[string]int{"skills": -2}}, true},
		{"missing resume file", Config{Resume: "/nonexistent/resume.txt"}, true},
		{"missing job file", Config{Job: "/nonexistent/job.txt"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com", MaxKeywords: 5}
	defaults := Config{
		Resume:       "resume.txt",
		JobURL:       "https://default.example.com",
		MaxKeywords:  20,
		DensityLimit: 0.04,
		SectionCaps:  map[string]int{"skills": 3},
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "resume.txt", merged.Resume)
	assert.Equal(t, "https://example.com", merged.JobURL, "explicit value wins over default")
	assert.Equal(t, 5, merged.MaxKeywords)
	assert.Equal(t, 0.04, merged.DensityLimit)
	assert.Equal(t, map[string]int{"skills": 3}, merged.SectionCaps)
}

func TestSettings(t *testing.T) {
	cfg := Config{
		MaxKeywords:  7,
		DensityLimit: 0.06,
		SectionCaps:  map[string]int{"skills": 4, "experience": 2},
	}

	settings := cfg.Settings()

	assert.Equal(t, 7, settings.GlobalKeywordLimit)
	assert.Equal(t, 0.06, settings.KeywordDensityLimit)
	assert.Equal(t, 4, settings.MaxKeywordsPerSection[types.LabelSkills])
	assert.Equal(t, 2, settings.MaxKeywordsPerSection[types.LabelExperience])
	assert.NoError(t, settings.Validate())
}

func TestSettings_Defaults(t *testing.T) {
	settings := (&Config{}).Settings()

	assert.Equal(t, types.DefaultGlobalKeywordLimit, settings.GlobalKeywordLimit)
	assert.Equal(t, types.DefaultKeywordDensityLimit, settings.KeywordDensityLimit)
	assert.Equal(t, types.DefaultSectionCaps(), settings.MaxKeywordsPerSection)
}
