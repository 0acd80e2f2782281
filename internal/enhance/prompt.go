// Package enhance implements the AI enhancement pipeline: it serializes the
// resume aggregate into a plain-text prompt, calls the text-generation
// endpoint, parses the structured response, and merges the result back into
// the resume store as one unit.
package enhance

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// styleWords holds the per-template adjectives injected into the request
// section of the prompt.
type styleWords struct {
	Summary    string
	Experience string
	Project    string
}

var templateStyles = map[types.TemplateID]styleWords{
	types.TemplateModern:       {Summary: "clear and impactful", Experience: "Effective", Project: "Clear"},
	types.TemplateMinimal:      {Summary: "very concise", Experience: "Streamlined", Project: "Brief"},
	types.TemplateCreative:     {Summary: "dynamic and engaging", Experience: "Distinctive", Project: "Innovative"},
	types.TemplateProfessional: {Summary: "formal and detailed", Experience: "Comprehensive", Project: "Detailed"},
}

// BuildPrompt serializes the resume into the outbound enhancement prompt:
// formatting instructions, a template-specific tone directive, labeled
// plain-text blocks for every section, and the exact response grammar the
// parser expects back.
func BuildPrompt(data *types.ResumeData) string {
	template := data.Template
	if !template.Valid() {
		template = types.TemplateModern
	}

	intro := prompts.Format(prompts.MustGet("enhance.json", "enhance-intro"), map[string]string{
		"Template":     string(template),
		"ToneGuidance": prompts.MustGet("enhance.json", "tone-"+string(template)),
	})

	style := templateStyles[template]
	request := prompts.Format(prompts.MustGet("enhance.json", "enhance-request"), map[string]string{
		"Template":        string(template),
		"SummaryStyle":    style.Summary,
		"ExperienceStyle": style.Experience,
		"ProjectStyle":    style.Project,
	})

	var sb strings.Builder
	sb.WriteString(intro)
	sb.WriteString("\n\n")
	writePersonalBlock(&sb, data.PersonalInfo)
	writeExperienceBlock(&sb, data.Experiences)
	writeEducationBlock(&sb, data.Education)
	writeSkillsBlock(&sb, data.Skills)
	writeProjectsBlock(&sb, data.Projects)
	sb.WriteString(request)
	return sb.String()
}

func writePersonalBlock(sb *strings.Builder, info types.PersonalInfo) {
	sb.WriteString("PERSONAL INFORMATION:\n")
	fmt.Fprintf(sb, "- Name: %s\n", info.FullName)
	fmt.Fprintf(sb, "- Email: %s\n", info.Email)
	fmt.Fprintf(sb, "- Phone: %s\n", info.Phone)
	fmt.Fprintf(sb, "- Address: %s\n", info.Address)
	fmt.Fprintf(sb, "- LinkedIn: %s\n", orPlaceholder(info.LinkedIn, "Not provided"))
	fmt.Fprintf(sb, "- Website: %s\n", orPlaceholder(info.Website, "Not provided"))
	fmt.Fprintf(sb, "- Current Summary: %s\n\n", orPlaceholder(info.Summary, "Not provided"))
}

func writeExperienceBlock(sb *strings.Builder, experiences []types.Experience) {
	sb.WriteString("WORK EXPERIENCE:\n")
	for i, exp := range experiences {
		fmt.Fprintf(sb, "Experience %d:\n", i+1)
		fmt.Fprintf(sb, "- Position: %s\n", exp.Position)
		fmt.Fprintf(sb, "- Company: %s\n", exp.Company)
		fmt.Fprintf(sb, "- Location: %s\n", orPlaceholder(exp.Location, "Not specified"))
		fmt.Fprintf(sb, "- Duration: %s to %s\n", exp.StartDate, endOrPresent(exp.EndDate, exp.Current))
		fmt.Fprintf(sb, "- Description: %s\n", exp.Description)
		fmt.Fprintf(sb, "- Achievements: %s\n\n", strings.Join(exp.Achievements, "; "))
	}
	if len(experiences) == 0 {
		sb.WriteString("\n")
	}
}

func writeEducationBlock(sb *strings.Builder, education []types.Education) {
	sb.WriteString("EDUCATION:\n")
	for i, edu := range education {
		fmt.Fprintf(sb, "Education %d:\n", i+1)
		fmt.Fprintf(sb, "- Degree: %s\n", edu.Degree)
		fmt.Fprintf(sb, "- Field: %s\n", edu.Field)
		fmt.Fprintf(sb, "- Institution: %s\n", edu.Institution)
		fmt.Fprintf(sb, "- Location: %s\n", orPlaceholder(edu.Location, "Not specified"))
		fmt.Fprintf(sb, "- Duration: %s to %s\n", edu.StartDate, endOrPresent(edu.EndDate, edu.Current))
		if edu.GPA != "" {
			fmt.Fprintf(sb, "- GPA: %s\n", edu.GPA)
		}
		if len(edu.Achievements) > 0 {
			fmt.Fprintf(sb, "- Achievements: %s\n", strings.Join(edu.Achievements, "; "))
		}
		sb.WriteString("\n")
	}
	if len(education) == 0 {
		sb.WriteString("\n")
	}
}

func writeSkillsBlock(sb *strings.Builder, skills []types.Skill) {
	sb.WriteString("SKILLS:\n")
	for _, skill := range skills {
		fmt.Fprintf(sb, "- %s (Level: %s)\n", skill.Name, skill.Level)
	}
	sb.WriteString("\n")
}

func writeProjectsBlock(sb *strings.Builder, projects []types.Project) {
	sb.WriteString("PROJECTS:\n")
	for i, proj := range projects {
		fmt.Fprintf(sb, "Project %d:\n", i+1)
		fmt.Fprintf(sb, "- Name: %s\n", proj.Name)
		fmt.Fprintf(sb, "- Description: %s\n", proj.Description)
		fmt.Fprintf(sb, "- Technologies: %s\n", strings.Join(proj.Technologies, ", "))
		if proj.URL != "" {
			fmt.Fprintf(sb, "- URL: %s\n", proj.URL)
		}
		if proj.StartDate != "" {
			fmt.Fprintf(sb, "- Duration: %s to %s\n", proj.StartDate, endOrPresent(proj.EndDate, proj.Current))
		}
		sb.WriteString("\n")
	}
	if len(projects) == 0 {
		sb.WriteString("\n")
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func endOrPresent(endDate string, current bool) string {
	if current {
		return "Present"
	}
	return orPlaceholder(endDate, "Not specified")
}
