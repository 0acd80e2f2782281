package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

var showCommand = &cobra.Command{
	Use:   "show",
	Short: "Print the stored resume and wizard position",
	RunE:  showCmd,
}

func init() {
	addCommonFlags(showCommand)
	rootCmd.AddCommand(showCommand)
}

func showCmd(cmd *cobra.Command, _ []string) error {
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
	wiz, err := wizard.Load(backend)
	if err != nil {
		return fmt.Errorf("failed to load wizard state: %w", err)
	}

	data := store.Data()
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResume(data)
	if cfg.Verbose {
		printer.PrintExperiences(data.Experiences)
		printer.PrintSkills(data.Skills)
		printer.PrintValidationIssues(validationIssues(data))
	}

	fmt.Printf("Current step: %s\n", wiz.Current())
	return nil
}

// validationIssues validates every stored entry and collects the failures.
func validationIssues(data *types.ResumeData) []types.FieldError {
	var issues []types.FieldError

	collect := func(entry string, err error) {
		if err == nil {
			return
		}
		var fieldErr *types.FieldError
		if errors.As(err, &fieldErr) {
			issues = append(issues, types.FieldError{
				Field:   fmt.Sprintf("%s %s", entry, fieldErr.Field),
				Message: fieldErr.Message,
			})
			return
		}
		issues = append(issues, types.FieldError{Field: entry, Message: err.Error()})
	}

	collect("personal info", data.PersonalInfo.Validate())
	for i := range data.Experiences {
		collect(fmt.Sprintf("experience %d", i+1), data.Experiences[i].Validate())
	}
	for i := range data.Education {
		collect(fmt.Sprintf("education %d", i+1), data.Education[i].Validate())
	}
	for i := range data.Skills {
		collect(fmt.Sprintf("skill %d", i+1), data.Skills[i].Validate())
	}
	for i := range data.Projects {
		collect(fmt.Sprintf("project %d", i+1), data.Projects[i].Validate())
	}
	for i := range data.Certificates {
		collect(fmt.Sprintf("certificate %d", i+1), data.Certificates[i].Validate())
	}
	return issues
}
