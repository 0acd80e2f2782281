// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when neither the config file nor the environment provides a value.
const (
	DefaultDataDir = ".resume-builder"
	DefaultModel   = "gemini-2.0-flash"
	DefaultAddr    = ":8080"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataDir string `json:"data_dir,omitempty"` // Directory for persisted resume state
	OutDir  string `json:"out_dir,omitempty"`  // Directory for exported artifacts

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Model   string `json:"model,omitempty"`   // Gemini model name
	Addr    string `json:"addr,omitempty"`    // Listen address for the server
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables.
func FromEnv() *Config {
	return &Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("RESUME_BUILDER_MODEL"),
		DataDir: os.Getenv("RESUME_BUILDER_DATA_DIR"),
		OutDir:  os.Getenv("RESUME_BUILDER_OUT_DIR"),
		Addr:    os.Getenv("RESUME_BUILDER_ADDR"),
	}
}

// Merge fills empty fields of c from other. Values already set on c win.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.DataDir == "" {
		c.DataDir = other.DataDir
	}
	if c.OutDir == "" {
		c.OutDir = other.OutDir
	}
	if c.APIKey == "" {
		c.APIKey = other.APIKey
	}
	if c.Model == "" {
		c.Model = other.Model
	}
	if c.Addr == "" {
		c.Addr = other.Addr
	}
	if other.Verbose {
		c.Verbose = true
	}
}

// ApplyDefaults fills any remaining empty fields with defaults.
// The data directory defaults to a dotdir under the user's home.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.DataDir = filepath.Join(home, DefaultDataDir)
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.OutDir != "" {
		if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out_dir' is not a directory: %s", c.OutDir)
		}
	}
	return nil
}
