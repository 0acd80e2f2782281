package enhance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestBuildPrompt_ToneVariesByTemplate(t *testing.T) {
	tests := []struct {
		template types.TemplateID
		want     string
	}{
		{types.TemplateModern, "focus on recent achievements"},
		{types.TemplateMinimal, "eliminate unnecessary words"},
		{types.TemplateCreative, "showcase personality"},
		{types.TemplateProfessional, "emphasis on career progression"},
	}

	for _, tt := range tests {
		t.Run(string(tt.template), func(t *testing.T) {
			data := types.NewResumeData()
			data.Template = tt.template
			prompt := BuildPrompt(data)
			assert.Contains(t, prompt, tt.want)
			assert.Contains(t, prompt, `the "`+string(tt.template)+`" template style`)
		})
	}
}

func TestBuildPrompt_UnknownTemplateFallsBackToModern(t *testing.T) {
	data := types.NewResumeData()
	data.Template = types.TemplateID("fancy")
	prompt := BuildPrompt(data)
	assert.Contains(t, prompt, `the "modern" template style`)
}

func TestBuildPrompt_Placeholders(t *testing.T) {
	data := types.NewResumeData()
	data.PersonalInfo = types.PersonalInfo{FullName: "Ada", Email: "ada@example.com", Phone: "555-0100"}
	prompt := BuildPrompt(data)

	assert.Contains(t, prompt, "- LinkedIn: Not provided")
	assert.Contains(t, prompt, "- Website: Not provided")
	assert.Contains(t, prompt, "- Current Summary: Not provided")
	assert.False(t, strings.Contains(prompt, "{{."), "all placeholders must be resolved")
}

func TestBuildPrompt_SectionOrder(t *testing.T) {
	data := types.NewResumeData()
	prompt := BuildPrompt(data)

	personal := strings.Index(prompt, "PERSONAL INFORMATION:")
	work := strings.Index(prompt, "WORK EXPERIENCE:")
	education := strings.Index(prompt, "EDUCATION:")
	skills := strings.Index(prompt, "SKILLS:")
	projects := strings.Index(prompt, "PROJECTS:")

	assert.True(t, personal >= 0 && personal < work, "personal before work")
	assert.True(t, work < education && education < skills && skills < projects, "sections in order")
}

func TestBuildPrompt_ProjectDetails(t *testing.T) {
	data := types.NewResumeData()
	data.Projects = []types.Project{{
		ID: "p1", Name: "CLI", Description: "A tool.",
		Technologies: types.TechnologyList{"Go", "Cobra"},
		URL:          "https://example.com", StartDate: "2023-01", Current: true,
	}}
	prompt := BuildPrompt(data)

	assert.Contains(t, prompt, "- Technologies: Go, Cobra")
	assert.Contains(t, prompt, "- URL: https://example.com")
	assert.Contains(t, prompt, "- Duration: 2023-01 to Present")
}
