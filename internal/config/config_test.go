package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("AWSHELL_LLM_MODEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, cfg.Profile)
	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, DefaultLLMModel, cfg.LLM.Model)
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"profile: staging\nregion: eu-west-1\nllm:\n  api_key: from-file\n"), 0600))

	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_REGION", "us-west-2")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("AWSHELL_LLM_MODEL", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Profile, "file value wins when env unset")
	assert.Equal(t, "us-west-2", cfg.Region, "env value wins over file")
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
}

func TestSetPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("AWSHELL_LLM_MODEL", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("region", "ap-southeast-2"))
	require.NoError(t, cfg.Set("llm.model", "claude-opus-4-20250514"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", reloaded.Region)
	assert.Equal(t, "claude-opus-4-20250514", reloaded.LLM.Model)
}

func TestSetRejectsUnknownKeyAndBadFormat(t *testing.T) {
	cfg := &Config{path: filepath.Join(t.TempDir(), "config.yaml")}

	assert.Error(t, cfg.Set("no.such.key", "x"))
	assert.Error(t, cfg.Set("output_format", "xml"))
	assert.False(t, cfg.SetOutput("csv"))
	assert.True(t, cfg.SetOutput("json"))
}
