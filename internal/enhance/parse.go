package enhance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Enhancement is the structured result extracted from the model's response.
// Every section is optional; absent sections leave the corresponding resume
// fields untouched when the enhancement is applied.
type Enhancement struct {
	Summary     string
	HasSummary  bool
	Experiences map[int]ExperienceUpdate
	Projects    map[int]string
	Skills      []types.Skill
	HasSkills   bool
}

// ExperienceUpdate carries the replacement description for one experience
// entry and, when the response contained an achievement delimiter, the
// re-split achievement list.
type ExperienceUpdate struct {
	Description  string
	Achievements []string
}

// DefaultSkillLevel is assigned to parsed skills that carry no explicit
// proficiency label.
const DefaultSkillLevel = "Proficient"

var (
	summaryHeaderRe    = regexp.MustCompile(`^SUMMARY:\s*(.*)$`)
	experienceHeaderRe = regexp.MustCompile(`^EXPERIENCE\s+(\d+):\s*(.*)$`)
	projectHeaderRe    = regexp.MustCompile(`^PROJECT\s+(\d+):\s*(.*)$`)
	skillsHeaderRe     = regexp.MustCompile(`^SKILLS:\s*(.*)$`)

	achievementDelimRe = regexp.MustCompile(`(?i)achievements:|key accomplishments:|notable achievements:`)
	sentenceBoundaryRe = regexp.MustCompile(`\.\s+`)
	skillCategoryRe    = regexp.MustCompile(`^([A-Z][A-Za-z ]*):\s*(.*)$`)
	skillLevelRe       = regexp.MustCompile(`(?i)^(.*?)\s*\((advanced|intermediate|beginner|expert|proficient|basic)\)$`)
)

// ParseResponse scans the response text line by line and partitions it into
// the sections of the expected grammar (SUMMARY, EXPERIENCE n, PROJECT n,
// SKILLS). Sections may appear in any order; a SKILLS section consumes the
// remainder of the text. A response containing no recognizable section is a
// ParseError.
func ParseResponse(text string) (*Enhancement, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "empty response"}
	}

	enh := &Enhancement{
		Experiences: make(map[int]ExperienceUpdate),
		Projects:    make(map[int]string),
	}

	lines := strings.Split(text, "\n")
	matched := false
	for i := 0; i < len(lines); {
		line := lines[i]

		if m := summaryHeaderRe.FindStringSubmatch(line); m != nil {
			matched = true
			// The summary runs until a blank line or the next section header.
			body, next := collectSection(lines, i+1, m[1], true)
			enh.Summary = strings.TrimSpace(body)
			enh.HasSummary = true
			i = next
			continue
		}

		if m := experienceHeaderRe.FindStringSubmatch(line); m != nil {
			matched = true
			body, next := collectSection(lines, i+1, m[2], false)
			if idx, err := strconv.Atoi(m[1]); err == nil {
				enh.Experiences[idx-1] = parseExperienceBody(body)
			}
			i = next
			continue
		}

		if m := projectHeaderRe.FindStringSubmatch(line); m != nil {
			matched = true
			body, next := collectSection(lines, i+1, m[2], false)
			if idx, err := strconv.Atoi(m[1]); err == nil {
				enh.Projects[idx-1] = strings.TrimSpace(body)
			}
			i = next
			continue
		}

		if m := skillsHeaderRe.FindStringSubmatch(line); m != nil {
			matched = true
			rest := append([]string{m[1]}, lines[i+1:]...)
			enh.Skills = parseSkills(strings.TrimSpace(strings.Join(rest, "\n")))
			enh.HasSkills = true
			break
		}

		i++
	}

	if !matched {
		return nil, &ParseError{Message: "no recognizable sections in response"}
	}
	return enh, nil
}

// collectSection gathers lines belonging to the section headed at start-1.
// The first captured fragment comes from the header line itself. When
// stopAtBlank is set the section additionally ends at the first blank line.
// Returns the joined body and the index of the first line not consumed.
func collectSection(lines []string, start int, firstFragment string, stopAtBlank bool) (string, int) {
	body := []string{firstFragment}
	i := start
	for ; i < len(lines); i++ {
		line := lines[i]
		if stopAtBlank && strings.TrimSpace(line) == "" {
			break
		}
		if isSectionHeader(line) {
			break
		}
		body = append(body, line)
	}
	return strings.TrimSpace(strings.Join(body, "\n")), i
}

func isSectionHeader(line string) bool {
	return summaryHeaderRe.MatchString(line) ||
		experienceHeaderRe.MatchString(line) ||
		projectHeaderRe.MatchString(line) ||
		skillsHeaderRe.MatchString(line)
}

// parseExperienceBody splits an experience section into description and
// achievements. When the body contains an achievement delimiter, the text
// before it becomes the description and the text after is split into
// individual achievement sentences; otherwise the whole body is the
// description and the achievement list is left untouched (nil).
func parseExperienceBody(body string) ExperienceUpdate {
	loc := achievementDelimRe.FindStringIndex(body)
	if loc == nil {
		return ExperienceUpdate{Description: strings.TrimSpace(body)}
	}

	update := ExperienceUpdate{Description: strings.TrimSpace(body[:loc[0]])}
	if achievements := splitAchievements(body[loc[1]:]); len(achievements) > 0 {
		update.Achievements = achievements
	}
	return update
}

// splitAchievements splits free text into sentences using a "period followed
// by a capital letter" boundary, trimming fragments, dropping empties, and
// re-terminating each with a period.
func splitAchievements(text string) []string {
	var fragments []string
	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		if loc[1] >= len(text) || text[loc[1]] < 'A' || text[loc[1]] > 'Z' {
			continue
		}
		fragments = append(fragments, text[start:loc[0]+1])
		start = loc[1]
	}
	fragments = append(fragments, text[start:])

	var out []string
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if !strings.HasSuffix(fragment, ".") {
			fragment += "."
		}
		out = append(out, fragment)
	}
	return out
}

// parseSkills builds the replacement skill list from the SKILLS section. If
// any line starts with a capitalized category header ("Programming:"), the
// text is treated as per-category blocks; otherwise as one flat list. Items
// are separated by commas or line breaks; a trailing parenthesized
// proficiency label sets the level, defaulting to DefaultSkillLevel.
func parseSkills(text string) []types.Skill {
	lines := strings.Split(text, "\n")

	categorized := false
	for _, line := range lines {
		if skillCategoryRe.MatchString(strings.TrimSpace(line)) {
			categorized = true
			break
		}
	}

	var skills []types.Skill
	if !categorized {
		for _, item := range splitSkillItems(text) {
			skills = append(skills, parseSkillItem(item, ""))
		}
		return skills
	}

	category := ""
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rest := line
		if m := skillCategoryRe.FindStringSubmatch(line); m != nil {
			category = strings.TrimSpace(m[1])
			rest = m[2]
		} else if category == "" {
			// Items before the first category header have no home.
			continue
		}
		for _, item := range splitSkillItems(rest) {
			skills = append(skills, parseSkillItem(item, category))
		}
	}
	return skills
}

func splitSkillItems(text string) []string {
	var items []string
	for _, item := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '\n' }) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseSkillItem(item, category string) types.Skill {
	if m := skillLevelRe.FindStringSubmatch(item); m != nil {
		return types.Skill{Name: strings.TrimSpace(m[1]), Level: m[2], Category: category}
	}
	return types.Skill{Name: item, Level: DefaultSkillLevel, Category: category}
}
