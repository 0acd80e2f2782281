package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestParseResponse_Summary(t *testing.T) {
	enh, err := ParseResponse("SUMMARY: Improved text here\n\nEXPERIENCE 1: Did things.")
	require.NoError(t, err)
	assert.True(t, enh.HasSummary)
	assert.Equal(t, "Improved text here", enh.Summary)
}

func TestParseResponse_SummaryStopsAtNextHeader(t *testing.T) {
	enh, err := ParseResponse("SUMMARY: A strong summary.\nEXPERIENCE 1: Did things.")
	require.NoError(t, err)
	assert.Equal(t, "A strong summary.", enh.Summary)
	assert.Equal(t, "Did things.", enh.Experiences[0].Description)
}

func TestParseResponse_AchievementSplitting(t *testing.T) {
	enh, err := ParseResponse("EXPERIENCE 1: Led team efforts.Achievements: Increased sales by 20%. Reduced costs by 10%.")
	require.NoError(t, err)

	update, ok := enh.Experiences[0]
	require.True(t, ok)
	assert.Equal(t, "Led team efforts.", update.Description)
	assert.Equal(t, []string{"Increased sales by 20%.", "Reduced costs by 10%."}, update.Achievements)
}

func TestParseResponse_AchievementDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Achievements", input: "EXPERIENCE 1: Built systems. Achievements: Shipped v1."},
		{name: "Key accomplishments", input: "EXPERIENCE 1: Built systems. Key accomplishments: Shipped v1."},
		{name: "Notable achievements", input: "EXPERIENCE 1: Built systems. Notable achievements: Shipped v1."},
		{name: "Case insensitive", input: "EXPERIENCE 1: Built systems. ACHIEVEMENTS: Shipped v1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enh, err := ParseResponse(tt.input)
			require.NoError(t, err)
			update := enh.Experiences[0]
			assert.Equal(t, "Built systems.", update.Description)
			assert.Equal(t, []string{"Shipped v1."}, update.Achievements)
		})
	}
}

func TestParseResponse_NoDelimiterKeepsAchievementsUntouched(t *testing.T) {
	enh, err := ParseResponse("EXPERIENCE 1: Delivered projects on time and mentored juniors.")
	require.NoError(t, err)

	update := enh.Experiences[0]
	assert.Equal(t, "Delivered projects on time and mentored juniors.", update.Description)
	assert.Nil(t, update.Achievements)
}

func TestParseResponse_MultipleExperiencesAndProjects(t *testing.T) {
	text := "SUMMARY: Good.\n\n" +
		"EXPERIENCE 1: First role.\nEXPERIENCE 2: Second role.\n\n" +
		"PROJECT 1: First project.\nPROJECT 2: Second project."
	enh, err := ParseResponse(text)
	require.NoError(t, err)

	assert.Len(t, enh.Experiences, 2)
	assert.Equal(t, "Second role.", enh.Experiences[1].Description)
	assert.Len(t, enh.Projects, 2)
	assert.Equal(t, "First project.", enh.Projects[0])
}

func TestParseResponse_SkillsWithCategories(t *testing.T) {
	enh, err := ParseResponse("SKILLS: Programming: Python (Expert), SQL (Intermediate)\nTools: Git (Proficient)")
	require.NoError(t, err)
	require.True(t, enh.HasSkills)

	expected := []types.Skill{
		{Name: "Python", Level: "Expert", Category: "Programming"},
		{Name: "SQL", Level: "Intermediate", Category: "Programming"},
		{Name: "Git", Level: "Proficient", Category: "Tools"},
	}
	assert.Equal(t, expected, enh.Skills)
}

func TestParseResponse_FlatSkillFallback(t *testing.T) {
	enh, err := ParseResponse("SKILLS: Python, SQL (Intermediate), Go")
	require.NoError(t, err)

	expected := []types.Skill{
		{Name: "Python", Level: "Proficient"},
		{Name: "SQL", Level: "Intermediate"},
		{Name: "Go", Level: "Proficient"},
	}
	assert.Equal(t, expected, enh.Skills)
}

func TestParseResponse_SkillsConsumeRemainder(t *testing.T) {
	enh, err := ParseResponse("SKILLS: Languages: Go (Expert)\nDatabases: PostgreSQL (Advanced), Redis")
	require.NoError(t, err)

	require.Len(t, enh.Skills, 3)
	assert.Equal(t, types.Skill{Name: "Redis", Level: "Proficient", Category: "Databases"}, enh.Skills[2])
}

func TestParseResponse_FullGrammar(t *testing.T) {
	text := "SUMMARY: Seasoned engineer with a decade of experience.\n\n" +
		"EXPERIENCE 1: Led the platform team. Achievements: Cut latency by 40%. Grew the team to eight.\n" +
		"EXPERIENCE 2: Built data pipelines end to end.\n\n" +
		"PROJECT 1: Developed an open source CLI used by thousands.\n\n" +
		"SKILLS: Programming: Go (Expert), Python (Advanced)\nInfrastructure: Kubernetes (Intermediate)"
	enh, err := ParseResponse(text)
	require.NoError(t, err)

	assert.Equal(t, "Seasoned engineer with a decade of experience.", enh.Summary)
	assert.Equal(t, "Led the platform team.", enh.Experiences[0].Description)
	assert.Equal(t, []string{"Cut latency by 40%.", "Grew the team to eight."}, enh.Experiences[0].Achievements)
	assert.Equal(t, "Built data pipelines end to end.", enh.Experiences[1].Description)
	assert.Equal(t, "Developed an open source CLI used by thousands.", enh.Projects[0])
	require.Len(t, enh.Skills, 3)
	assert.Equal(t, "Kubernetes", enh.Skills[2].Name)
	assert.Equal(t, "Infrastructure", enh.Skills[2].Category)
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty response", input: ""},
		{name: "Whitespace only", input: "  \n\n  "},
		{name: "No recognizable sections", input: "Here is your improved resume. Good luck!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enh, err := ParseResponse(tt.input)
			require.Error(t, err)
			assert.Nil(t, enh)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestSplitAchievements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Two sentences",
			input:    "Shipped v1. Mentored three engineers.",
			expected: []string{"Shipped v1.", "Mentored three engineers."},
		},
		{
			name:     "Missing trailing period re-terminated",
			input:    "Shipped v1. Mentored three engineers",
			expected: []string{"Shipped v1.", "Mentored three engineers."},
		},
		{
			name:     "Period not followed by capital kept together",
			input:    "Reduced p99 by 1.5 seconds overall.",
			expected: []string{"Reduced p99 by 1.5 seconds overall."},
		},
		{
			name:     "Whitespace fragments dropped",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitAchievements(tt.input))
		})
	}
}
