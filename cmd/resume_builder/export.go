package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/storage"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export the stored resume to PDF and HTML",
	Long:  "Renders the stored resume with its selected template and writes PDF and/or HTML artifacts. PDF export requires Chrome/Chromium.",
	RunE:  exportCmd,
}

var exportFormat string

func init() {
	addCommonFlags(exportCommand)
	exportCommand.Flags().StringVarP(&exportFormat, "format", "f", "both", "Artifact format: pdf, html or both")
	rootCmd.AddCommand(exportCommand)
}

func exportCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	backend, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	store, err := resume.Load(backend)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	data := store.Data()
	exporter := export.New(cfg.OutDir)

	var pdfPath, htmlPath string
	switch exportFormat {
	case "pdf":
		pdfPath, err = exporter.PDF(ctx, data)
	case "html":
		htmlPath, err = exporter.HTML(data)
	case "both":
		pdfPath, htmlPath, err = exporter.Both(ctx, data)
	default:
		return fmt.Errorf("unknown format %q (expected pdf, html or both)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintArtifacts(pdfPath, htmlPath)
	return nil
}
