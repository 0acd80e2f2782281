package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume builder HTTP API server",
	Long:  "Serves the wizard REST API: resume sections, step navigation, AI enhancement, rendering and export.",
	RunE:  serveCmd,
}

var serveAddr string

func init() {
	addCommonFlags(serveCommand)
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to :8080)")
	rootCmd.AddCommand(serveCommand)
}

func serveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}

	srv, err := server.New(server.Config{
		Addr:    cfg.Addr,
		DataDir: cfg.DataDir,
		OutDir:  cfg.OutDir,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
