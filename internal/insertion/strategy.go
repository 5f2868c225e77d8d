// Package insertion implements the per-section text mutation strategies.
// Each strategy plans an insertion without mutating the section; the
// orchestrator commits the plan only after the density guard accepts the
// keyword's estimated word cost. Strategies only append or splice new
// content, never delete or reorder what is already there.
package insertion

import (
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Plan is a prospective insertion produced by a strategy. BlockIndex points
// at the block to replace with Block; a negative index means Block is
// appended as a new content block.
type Plan struct {
	BlockIndex int
	Block      types.ContentBlock
	// Delta is the exact text being added, recorded in the report.
	Delta string
	// WordsAdded is Delta's word count, charged against the density budget.
	WordsAdded int
}

// Apply commits the plan to a section.
func (p Plan) Apply(sec *types.Section) {
	if p.BlockIndex >= 0 && p.BlockIndex < len(sec.Blocks) {
		sec.Blocks[p.BlockIndex] = p.Block
		return
	}
	sec.Blocks = append(sec.Blocks, p.Block)
}

// Strategy plans keyword insertions for one section label.
type Strategy interface {
	// Name identifies the strategy in insertion records.
	Name() string
	// Plan returns an insertion plan for the keyword, or ok=false when the
	// section offers no valid insertion point. Plan must not mutate sec.
	Plan(sec types.Section, kw types.Keyword) (Plan, bool)
}

// Registry maps each section label to its strategy.
type Registry map[types.SectionLabel]Strategy

// NewRegistry builds the full strategy set, validating all sentence
// templates up front.
func NewRegistry() (Registry, error) {
	if err := validateTemplates(); err != nil {
		return nil, err
	}
	return Registry{
		types.LabelSkills:     &SkillsStrategy{},
		types.LabelExperience: &ExperienceStrategy{},
		types.LabelProjects:   &ProjectsStrategy{ClauseThreshold: DefaultClauseThreshold},
		types.LabelSummary:    &SummaryStrategy{},
		types.LabelOther:      &OtherStrategy{},
	}, nil
}

// lastParagraphIndex returns the index of the section's last paragraph
// block, or -1 if it has none.
func lastParagraphIndex(sec types.Section) int {
	for i := len(sec.Blocks) - 1; i >= 0; i-- {
		if sec.Blocks[i].Kind == types.BlockParagraph {
			return i
		}
	}
	return -1
}

// appendSentence clones the paragraph block at idx and appends a sentence.
func appendSentence(sec types.Section, idx int, sentence string) types.ContentBlock {
	block := sec.Blocks[idx].Clone()
	block.Sentences = append(block.Sentences, sentence)
	return block
}
