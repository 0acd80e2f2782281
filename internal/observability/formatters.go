// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable overview of the current resume.
func (p *Printer) PrintResume(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	name := data.PersonalInfo.FullName
	if name == "" {
		name = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if data.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", data.PersonalInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Template:  %s\n", data.Template))
	if data.Enhanced {
		sb.WriteString("Enhanced:  yes\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience:   %d entries\n", len(data.Experiences)))
	sb.WriteString(fmt.Sprintf("Education:    %d entries\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Skills:       %d entries\n", len(data.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:     %d entries\n", len(data.Projects)))
	sb.WriteString(fmt.Sprintf("Certificates: %d entries", len(data.Certificates)))

	p.printBox("RESUME OVERVIEW", sb.String())
}

// PrintExperiences outputs the work history entries.
func (p *Printer) PrintExperiences(experiences []types.Experience) {
	if len(experiences) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(experiences), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := experiences[i]
		sb.WriteString(fmt.Sprintf("• %s, %s\n", exp.Position, exp.Company))
		desc := exp.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		if desc != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", desc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(experiences) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(experiences)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills grouped by category.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder

	byCategory := make(map[string][]types.Skill)
	var order []string
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "Skills"
		}
		if _, seen := byCategory[cat]; !seen {
			order = append(order, cat)
		}
		byCategory[cat] = append(byCategory[cat], s)
	}

	for i, cat := range order {
		sb.WriteString(fmt.Sprintf("%s:\n", cat))
		items := byCategory[cat]
		count := min(len(items), maxItemsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  • %s", items[j].Name))
			if items[j].Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", items[j].Level))
			}
			sb.WriteString("\n")
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
		if i < len(order)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancement outputs what the enhancement run changed.
func (p *Printer) PrintEnhancement(result *enhance.Enhancement) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.HasSummary {
		summary := result.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString("Summary:  rewritten\n")
		sb.WriteString(fmt.Sprintf("  %s\n", summary))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience descriptions updated: %d\n", len(result.Experiences)))
	sb.WriteString(fmt.Sprintf("Project descriptions updated:    %d\n", len(result.Projects)))
	if result.HasSkills {
		sb.WriteString(fmt.Sprintf("Skills replaced:                 %d", len(result.Skills)))
	} else {
		sb.WriteString("Skills replaced:                 0")
	}

	p.printBox("ENHANCEMENT RESULT", sb.String())
}

// PrintArtifacts outputs the paths of exported files.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintArtifacts(paths ...string) {
	var written []string
	for _, path := range paths {
		if path != "" {
			written = append(written, path)
		}
	}
	if len(written) == 0 {
		return
	}

	var sb strings.Builder
	for i, path := range written {
		if len(path) > 52 {
			path = "..." + path[len(path)-49:]
		}
		sb.WriteString(fmt.Sprintf("• %s", path))
		if i < len(written)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXPORTED ARTIFACTS", sb.String())
}

// PrintValidationIssues outputs field validation failures, or a success box
// when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationIssues(issues []types.FieldError) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VALIDATION ISSUES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	for i, issue := range issues {
		message := issue.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}
