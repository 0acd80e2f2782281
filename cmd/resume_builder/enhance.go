package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/storage"
)

var enhanceCommand = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance the stored resume with Gemini",
	Long:  "Sends the stored resume to Gemini and applies the rewritten summary, descriptions and categorized skills back to it.",
	RunE:  enhanceCmd,
}

func init() {
	addCommonFlags(enhanceCommand)
	rootCmd.AddCommand(enhanceCommand)
}

func enhanceCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (--api-key or GEMINI_API_KEY)")
	}

	backend, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	store, err := resume.Load(backend)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResume(store.Data())
	}

	result, err := enhance.New(client, store).Enhance(ctx)
	if err != nil {
		return fmt.Errorf("enhancement failed: %w", err)
	}

	printer.PrintEnhancement(result)
	return nil
}
