package insertion

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// keywordSlot is the placeholder every sentence template must contain
// exactly once.
const keywordSlot = "{keyword}"

// Template is a structured sentence pattern with a single keyword slot.
// Templates are validated when a registry is built so a category lookup miss
// can never produce malformed output at insertion time.
type Template struct {
	Pattern string
}

// Render substitutes the keyword's display term into the pattern.
func (t Template) Render(displayTerm string) string {
	return strings.ReplaceAll(t.Pattern, keywordSlot, displayTerm)
}

// Validate checks the pattern carries exactly one keyword slot.
func (t Template) Validate() error {
	if n := strings.Count(t.Pattern, keywordSlot); n != 1 {
		return fmt.Errorf("template %q has %d keyword slots, want 1", t.Pattern, n)
	}
	return nil
}

// experienceTemplates synthesize contextual sentences for the experience
// section, keyed by keyword category.
var experienceTemplates = map[types.KeywordCategory]Template{
	types.CategoryTechnical: {Pattern: "Utilized {keyword} to improve project outcomes."},
	types.CategorySoft:      {Pattern: "Demonstrated strong {keyword} across cross-functional teams."},
	types.CategoryDomain:    {Pattern: "Delivered solutions for {keyword} initiatives."},
	types.CategoryGeneric:   {Pattern: "Worked extensively with {keyword}."},
}

// summaryTemplates produce one professional-statement sentence for the
// summary section.
var summaryTemplates = map[types.KeywordCategory]Template{
	types.CategoryTechnical: {Pattern: "Experienced in {keyword}, contributing to reliable delivery."},
	types.CategorySoft:      {Pattern: "Recognized for {keyword} in collaborative environments."},
	types.CategoryDomain:    {Pattern: "Professional background spanning {keyword}."},
	types.CategoryGeneric:   {Pattern: "Experienced in {keyword}."},
}

// projectTemplates cover the projects section's "new sentence" path; the
// clause integration path uses projectClause instead.
var projectTemplates = map[types.KeywordCategory]Template{
	types.CategoryTechnical: {Pattern: "Built on {keyword} throughout the project."},
	types.CategorySoft:      {Pattern: "Applied {keyword} while coordinating project work."},
	types.CategoryDomain:    {Pattern: "Targeted {keyword} use cases."},
	types.CategoryGeneric:   {Pattern: "Incorporated {keyword} into the project."},
}

// projectClause is spliced onto a short existing sentence.
var projectClause = Template{Pattern: ", leveraging {keyword}"}

// otherTemplate is the conservative fallback for unlabeled sections.
var otherTemplate = Template{Pattern: "Familiar with {keyword}."}

// templateFor resolves a template set by category, falling back to generic.
func templateFor(set map[types.KeywordCategory]Template, cat types.KeywordCategory) Template {
	if t, ok := set[cat]; ok {
		return t
	}
	return set[types.CategoryGeneric]
}

// validateTemplates checks every template in every set. Called by
// NewRegistry so a bad pattern fails construction, not a run.
func validateTemplates() error {
	sets := []map[types.KeywordCategory]Template{
		experienceTemplates, summaryTemplates, projectTemplates,
	}
	for _, set := range sets {
		if _, ok := set[types.CategoryGeneric]; !ok {
			return fmt.Errorf("template set missing generic fallback")
		}
		for _, t := range set {
			if err := t.Validate(); err != nil {
				return err
			}
		}
	}
	if err := projectClause.Validate(); err != nil {
		return err
	}
	return otherTemplate.Validate()
}
