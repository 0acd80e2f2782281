package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
)

// Flags shared by every subcommand. Command-line arguments override config
// file values, which override environment variables.
var (
	flagConfigPath string
	flagDataDir    string
	flagOutDir     string
	flagAPIKey     string
	flagModel      string
	flagVerbose    bool
)

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory for persisted resume state")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Directory for exported artifacts")
	cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Gemini model name")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig merges flags, the optional config file, and the environment
// into a complete configuration.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = flagOutDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = flagModel
	}
	cfg.Verbose = flagVerbose

	if flagConfigPath != "" {
		fileCfg, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	cfg.Merge(config.FromEnv())
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
