package enhance

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

// Enhancer runs the enhancement pipeline against a resume store.
type Enhancer struct {
	client llm.Client
	store  *resume.Store
}

// New creates an Enhancer backed by the given client and store.
func New(client llm.Client, store *resume.Store) *Enhancer {
	return &Enhancer{client: client, store: store}
}

// Enhance builds the prompt from the current resume snapshot, issues one
// generation call, parses the response, and commits the merged result to the
// store as a single unit. On any failure the store is left untouched and the
// Enhanced flag unchanged.
func (e *Enhancer) Enhance(ctx context.Context) (*Enhancement, error) {
	data := e.store.Data()
	prompt := BuildPrompt(data)

	responseText, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate enhanced resume", Cause: err}
	}

	enhancement, err := ParseResponse(responseText)
	if err != nil {
		return nil, err
	}

	if err := e.store.Apply(func(staged *types.ResumeData) error {
		Merge(staged, enhancement)
		return nil
	}); err != nil {
		return nil, err
	}
	return enhancement, nil
}

// Merge writes an Enhancement into the aggregate in place. Identifiers,
// dates, and structural fields are preserved; out-of-range experience and
// project indexes are ignored. Parsed skills replace the skill list as new
// entities with fresh identifiers.
func Merge(data *types.ResumeData, enh *Enhancement) {
	if enh.HasSummary {
		data.PersonalInfo.Summary = enh.Summary
	}

	for idx, update := range enh.Experiences {
		if idx < 0 || idx >= len(data.Experiences) {
			continue
		}
		data.Experiences[idx].Description = update.Description
		if update.Achievements != nil {
			data.Experiences[idx].Achievements = update.Achievements
		}
	}

	for idx, description := range enh.Projects {
		if idx < 0 || idx >= len(data.Projects) {
			continue
		}
		data.Projects[idx].Description = description
	}

	if enh.HasSkills && len(enh.Skills) > 0 {
		skills := make([]types.Skill, len(enh.Skills))
		for i, skill := range enh.Skills {
			skill.ID = uuid.NewString()
			skills[i] = skill
		}
		data.Skills = skills
	}

	data.Enhanced = true
}
