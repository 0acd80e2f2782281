package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "test-key",
		"model": "gemini-2.0-flash",
		"data_dir": "/tmp/resumes",
		"addr": ":9090",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "/tmp/resumes", cfg.DataDir)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("RESUME_BUILDER_MODEL", "gemini-1.5-pro")
	t.Setenv("RESUME_BUILDER_DATA_DIR", "/data")
	t.Setenv("RESUME_BUILDER_ADDR", ":7070")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestMerge(t *testing.T) {
	cfg := &Config{
		APIKey: "flag-key",
	}
	cfg.Merge(&Config{
		APIKey:  "file-key",
		Model:   "gemini-2.0-flash",
		DataDir: "/data",
		Verbose: true,
	})

	// Values already set win
	assert.Equal(t, "flag-key", cfg.APIKey)

	// Empty fields are filled in
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.True(t, cfg.Verbose)
}

func TestMerge_Nil(t *testing.T) {
	cfg := &Config{APIKey: "key"}
	cfg.Merge(nil)
	assert.Equal(t, "key", cfg.APIKey)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Contains(t, cfg.DataDir, DefaultDataDir)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}

func TestApplyDefaults_KeepsExisting(t *testing.T) {
	cfg := &Config{DataDir: "/custom", Model: "gemini-1.5-pro", Addr: ":9000"}
	cfg.ApplyDefaults()

	assert.Equal(t, "/custom", cfg.DataDir)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestValidate_OutDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	cfg := &Config{OutDir: tmpFile}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out_dir")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{OutDir: t.TempDir()}
	assert.NoError(t, cfg.Validate())
}
