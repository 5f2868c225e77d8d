package classify

import "github.com/jonathan/resume-optimizer/internal/types"

// headingVocabulary maps each section label to the phrases that identify its
// heading. Matching is case-insensitive substring matching, so "Technical
// Skills" and "TECHNICAL SKILLS:" both land on skills. Kept as a table
// rather than branches so it is testable and extendable in isolation.
var headingVocabulary = []struct {
	Label   types.SectionLabel
	Phrases []string
}{
	{types.LabelSummary, []string{"summary", "objective", "overview", "profile", "about me"}},
	{types.LabelSkills, []string{"skills", "technical skills", "technologies", "competencies", "tech stack"}},
	{types.LabelExperience, []string{"experience", "work history", "employment", "professional background"}},
	{types.LabelProjects, []string{"projects", "portfolio", "personal projects", "selected work"}},
}

// maxHeadingWords bounds how long a line can be and still count as a
// heading. Real section titles are short; a sentence that merely mentions
// "experience" must not start a new section.
const maxHeadingWords = 5
