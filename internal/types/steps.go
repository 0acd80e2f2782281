package types

// Step identifies one stage in the wizard's fixed linear sequence.
type Step string

// Step constants define the wizard stages in their canonical order.
const (
	StepPersonal     Step = "personal"
	StepExperience   Step = "experience"
	StepEducation    Step = "education"
	StepSkills       Step = "skills"
	StepProjects     Step = "projects"
	StepCertificates Step = "certificates"
	StepTemplate     Step = "template"
	StepPreview      Step = "preview"
)

// StepOrder is the fixed sequence the wizard walks through.
var StepOrder = []Step{
	StepPersonal,
	StepExperience,
	StepEducation,
	StepSkills,
	StepProjects,
	StepCertificates,
	StepTemplate,
	StepPreview,
}

// StepIndex returns the position of a step in the sequence, or -1 if the
// step name is not part of the wizard.
func StepIndex(s Step) int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}
