package insertion

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultClauseThreshold is the sentence length (in words) below which the
// projects strategy extends an existing sentence with a clause instead of
// adding a new one. Longer sentences get a fresh sentence so the splice
// cannot manufacture run-ons.
const DefaultClauseThreshold = 12

// ProjectsStrategy integrates the keyword into an existing short sentence as
// a trailing clause, or synthesizes a new sentence when every candidate
// sentence is already long.
type ProjectsStrategy struct {
	ClauseThreshold int
}

func (s *ProjectsStrategy) Name() string { return "projects-clause" }

func (s *ProjectsStrategy) Plan(sec types.Section, kw types.Keyword) (Plan, bool) {
	idx := lastParagraphIndex(sec)
	if idx < 0 {
		return Plan{}, false
	}

	threshold := s.ClauseThreshold
	if threshold <= 0 {
		threshold = DefaultClauseThreshold
	}

	// Look for the last sentence short enough to take a clause.
	block := sec.Blocks[idx]
	for i := len(block.Sentences) - 1; i >= 0; i-- {
		sentence := block.Sentences[i]
		if textproc.WordCount(sentence) >= threshold {
			continue
		}
		clause := projectClause.Render(kw.DisplayTerm)
		updated := block.Clone()
		updated.Sentences[i] = spliceClause(sentence, clause)
		return Plan{
			BlockIndex: idx,
			Block:      updated,
			Delta:      clause,
			WordsAdded: textproc.WordCount(clause),
		}, true
	}

	sentence := templateFor(projectTemplates, kw.Category).Render(kw.DisplayTerm)
	return Plan{
		BlockIndex: idx,
		Block:      appendSentence(sec, idx, sentence),
		Delta:      sentence,
		WordsAdded: textproc.WordCount(sentence),
	}, true
}

// spliceClause attaches a clause before the sentence's final period, adding
// one if the sentence had no terminal punctuation.
func spliceClause(sentence, clause string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(sentence), ".")
	return trimmed + clause + "."
}
