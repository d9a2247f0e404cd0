package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tradebook/internal/errors"
)

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Journal.User)
	assert.Equal(t, 100000.0, cfg.Journal.Capital)
	assert.Equal(t, 1.0, cfg.Journal.DefaultRiskPercent)
	assert.Equal(t, filepath.Join(dir, "tradebook.db"), cfg.Journal.DatabasePath)
	assert.Equal(t, "gpt-4o-mini", cfg.Coach.Model)
	assert.True(t, cfg.UI.ColorEnabled)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[journal]
user = "arjun"
capital = 500000.0
default_risk_percent = 2.0
watch_database = true

[coach]
model = "gpt-4o"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "arjun", cfg.Journal.User)
	assert.Equal(t, 500000.0, cfg.Journal.Capital)
	assert.Equal(t, 2.0, cfg.Journal.DefaultRiskPercent)
	assert.True(t, cfg.Journal.WatchDatabase)
	assert.Equal(t, "gpt-4o", cfg.Coach.Model)
}

func TestLoad_CredentialsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[openai]
api_key = "sk-test"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Credentials.OpenAI.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRADEBOOK_USER", "env-user")
	t.Setenv("TRADEBOOK_DB", "/tmp/env.db")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.Journal.User)
	assert.Equal(t, "/tmp/env.db", cfg.Journal.DatabasePath)
	assert.Equal(t, "sk-env", cfg.Credentials.OpenAI.APIKey)
}

func TestValidate(t *testing.T) {
	valid := &Config{}
	valid.Journal.Capital = 100000
	valid.Journal.DefaultRiskPercent = 1
	valid.Journal.DatabasePath = "/tmp/x.db"
	assert.NoError(t, valid.Validate())

	bad := &Config{}
	bad.Journal.Capital = -1
	bad.Journal.DatabasePath = "/tmp/x.db"
	assert.ErrorIs(t, bad.Validate(), apperrors.ErrConfigInvalid)

	risky := &Config{}
	risky.Journal.DefaultRiskPercent = 150
	risky.Journal.DatabasePath = "/tmp/x.db"
	assert.ErrorIs(t, risky.Validate(), apperrors.ErrConfigInvalid)
}
