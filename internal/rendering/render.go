// Package rendering provides pure formatting of the resume aggregate into
// standalone HTML documents, one template per visual style.
package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SkillGroup is a category heading with its skills, in order of first
// appearance. Uncategorized skills form a group with an empty name.
type SkillGroup struct {
	Name   string
	Skills []types.Skill
}

// templateData is the view model passed to the style templates.
type templateData struct {
	*types.ResumeData
	SkillGroups []SkillGroup
}

var funcMap = template.FuncMap{
	"formatDate": FormatDate,
	"dateRange":  DateRange,
	"join":       func(items []string, sep string) string { return strings.Join(items, sep) },
}

// templates is parsed once at startup; a bad embedded template is a
// programming error.
var templates = template.Must(
	template.New("resume").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"),
)

// Render formats the resume into a standalone HTML document using its
// selected template style. It only reads the snapshot passed in, so it is
// safe to call repeatedly and concurrently.
func Render(data *types.ResumeData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("resume data is required")
	}
	style := data.Template
	if !style.Valid() {
		style = types.TemplateModern
	}

	tmpl, err := lookupTemplate(string(style))
	if err != nil {
		return "", err
	}

	var result strings.Builder
	err = tmpl.Execute(&result, &templateData{
		ResumeData:  data,
		SkillGroups: groupSkills(data.Skills),
	})
	if err != nil {
		return "", &RenderError{Message: "failed to execute template " + string(style), Cause: err}
	}
	return result.String(), nil
}

// lookupTemplate resolves a style name to its parsed template.
func lookupTemplate(style string) (*template.Template, error) {
	tmpl := templates.Lookup(style + ".tmpl")
	if tmpl == nil {
		return nil, &TemplateError{Message: "no template for style " + style}
	}
	return tmpl, nil
}

// FormatDate renders a stored date as "January 2006". Unparseable or empty
// input is returned as-is.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := types.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// DateRange renders "January 2020 – Present" style ranges.
func DateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := "Present"
	if !current {
		to = FormatDate(end)
	}
	if from == "" {
		return to
	}
	if to == "" {
		return from
	}
	return from + " – " + to
}

// groupSkills buckets skills by category, preserving the order categories
// first appear.
func groupSkills(skills []types.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Name: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}
