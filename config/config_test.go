package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every recognized variable for the duration of the test,
// t.Setenv first so the original values come back afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envMappings {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "survey.sqlite", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://ailights.org", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "/var/lib/survey/data.sqlite")
	t.Setenv("SURVEY_HTTP_HOST", "127.0.0.1")
	t.Setenv("SURVEY_HTTP_PORT", "9090")
	t.Setenv("SURVEY_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/survey/data.sqlite", cfg.DatabaseURL)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.True(t, cfg.Debug)
}

func TestLoadSplitsCORSOrigins(t *testing.T) {
	t.Setenv("SURVEY_CORS_ORIGINS", "https://ailights.org, https://survey.example.org ,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://ailights.org",
		"https://survey.example.org",
		"http://localhost:5173",
	}, cfg.CORSOrigins)
}

func TestLoadIgnoresUnrelatedVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "1234")
	t.Setenv("SURVEY_UNKNOWN_SETTING", "x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint(8000), cfg.Port)
}

func TestUrlRewritesWildcardHost(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 8000}
	assert.Equal(t, "http://localhost:8000", cfg.Url())

	cfg.Host = "survey.internal"
	assert.Equal(t, "http://survey.internal:8000", cfg.Url())
}
