package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicy_Defaults(t *testing.T) {
	policy, err := LoadPolicy("")
	require.NoError(t, err)

	assert.Equal(t, 10, policy.SmallUnitThreshold)

	start, end := policy.HYTWindow()
	assert.Equal(t, time.Date(2023, time.December, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestLoadPolicy_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := "small_unit_threshold: 5\nhyt_exception_end: \"2027-03-31\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	assert.Equal(t, 5, policy.SmallUnitThreshold)
	start, end := policy.HYTWindow()
	// Unset keys keep their defaults.
	assert.Equal(t, time.Date(2023, time.December, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestLoadPolicy_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad date", content: "hyt_exception_start: \"December 8\"\n"},
		{name: "negative threshold", content: "small_unit_threshold: -1\n"},
		{name: "window inverted", content: "hyt_exception_start: \"2027-01-01\"\nhyt_exception_end: \"2026-01-01\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "policy.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := LoadPolicy(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("POLICY_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.PolicyFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("POLICY_FILE", "policy.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "policy.yaml", cfg.PolicyFile)
}
