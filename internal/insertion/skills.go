package insertion

import (
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultListDelimiter is used when a skills section has a list block with
// no detected delimiter.
const DefaultListDelimiter = " | "

// SkillsStrategy appends the keyword's display term to the section's
// delimited list, deduplicated against the entries already in the list.
type SkillsStrategy struct{}

func (s *SkillsStrategy) Name() string { return "skills-list-append" }

func (s *SkillsStrategy) Plan(sec types.Section, kw types.Keyword) (Plan, bool) {
	idx := lastListIndex(sec)
	if idx < 0 {
		return Plan{}, false
	}

	// List-level dedupe: an entry like "Python (advanced)" still blocks a
	// "python" insertion because comparison runs on normalized terms.
	for _, item := range sec.Blocks[idx].Items {
		if containsTerm(item, kw.Term) {
			return Plan{}, false
		}
	}

	block := sec.Blocks[idx].Clone()
	if block.Delimiter == "" {
		block.Delimiter = DefaultListDelimiter
	}
	block.Items = append(block.Items, kw.DisplayTerm)

	return Plan{
		BlockIndex: idx,
		Block:      block,
		Delta:      kw.DisplayTerm,
		WordsAdded: max(1, textproc.WordCount(kw.DisplayTerm)),
	}, true
}

// lastListIndex returns the index of the section's last list block, or -1.
func lastListIndex(sec types.Section) int {
	for i := len(sec.Blocks) - 1; i >= 0; i-- {
		if sec.Blocks[i].Kind == types.BlockList {
			return i
		}
	}
	return -1
}

// containsTerm reports whether any normalized word of text equals the
// normalized term.
func containsTerm(text, normalizedTerm string) bool {
	for _, w := range textproc.Normalize(text) {
		if w == normalizedTerm {
			return true
		}
	}
	return false
}
