// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TemplateID identifies one of the fixed visual resume styles.
type TemplateID string

// Template constants define the supported resume styles.
const (
	TemplateModern       TemplateID = "modern"
	TemplateMinimal      TemplateID = "minimal"
	TemplateCreative     TemplateID = "creative"
	TemplateProfessional TemplateID = "professional"
)

// AllTemplates lists the supported templates in display order.
var AllTemplates = []TemplateID{
	TemplateModern,
	TemplateMinimal,
	TemplateCreative,
	TemplateProfessional,
}

// Valid reports whether the template id is one of the supported styles.
func (t TemplateID) Valid() bool {
	switch t {
	case TemplateModern, TemplateMinimal, TemplateCreative, TemplateProfessional:
		return true
	}
	return false
}

// PersonalInfo holds the singleton contact section of a resume.
type PersonalInfo struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Summary  string `json:"summary,omitempty"`
}

// Experience represents a single work history entry.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution" validate:"required"`
	Degree       string   `json:"degree" validate:"required"`
	Field        string   `json:"field" validate:"required"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Skill represents a single skill entry. Level is a free-text label
// (Beginner, Intermediate, Advanced, Expert, Proficient, Basic); Category
// is populated only by AI enhancement output.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Level    string `json:"level" validate:"required"`
	Category string `json:"category,omitempty"`
}

// TechnologyList is an ordered list of technology names. Legacy snapshots
// stored a single comma-separated string; UnmarshalJSON accepts both forms
// and normalizes to a list.
type TechnologyList []string

// UnmarshalJSON accepts either a JSON array of strings or a single string.
func (t *TechnologyList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("technologies must be a string or a list of strings: %w", err)
	}
	*t = splitTechnologies(single)
	return nil
}

// Project represents a single project entry.
type Project struct {
	ID           string         `json:"id"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description"`
	Technologies TechnologyList `json:"technologies,omitempty"`
	URL          string         `json:"url,omitempty" validate:"omitempty,url"`
	StartDate    string         `json:"start_date,omitempty"`
	EndDate      string         `json:"end_date,omitempty"`
	Current      bool           `json:"current,omitempty"`
}

// Certificate represents a single certification entry.
type Certificate struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   string `json:"date" validate:"required"`
	URL    string `json:"url,omitempty" validate:"omitempty,url"`
}

// ResumeData is the aggregate root holding the full resume document.
// It is persisted as one unit and owns every entity it contains.
type ResumeData struct {
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Experiences  []Experience  `json:"experiences"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
	Template     TemplateID    `json:"template"`
	Enhanced     bool          `json:"enhanced,omitempty"`
}

// NewResumeData returns an empty resume with the default template selected.
func NewResumeData() *ResumeData {
	return &ResumeData{
		Experiences:  []Experience{},
		Education:    []Education{},
		Skills:       []Skill{},
		Projects:     []Project{},
		Certificates: []Certificate{},
		Template:     TemplateModern,
	}
}

// Clone returns a deep copy of the resume aggregate.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Experiences = make([]Experience, len(r.Experiences))
	for i, exp := range r.Experiences {
		exp.Achievements = append([]string(nil), exp.Achievements...)
		clone.Experiences[i] = exp
	}
	clone.Education = make([]Education, len(r.Education))
	for i, edu := range r.Education {
		edu.Achievements = append([]string(nil), edu.Achievements...)
		clone.Education[i] = edu
	}
	clone.Skills = append([]Skill(nil), r.Skills...)
	clone.Projects = make([]Project, len(r.Projects))
	for i, proj := range r.Projects {
		proj.Technologies = append(TechnologyList(nil), proj.Technologies...)
		clone.Projects[i] = proj
	}
	clone.Certificates = append([]Certificate(nil), r.Certificates...)
	return &clone
}

func splitTechnologies(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
