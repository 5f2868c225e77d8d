package insertion

import (
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// SummaryStrategy appends one professional-statement sentence to the
// summary. Summaries are short by convention, so this strategy carries the
// lowest cap after "other".
type SummaryStrategy struct{}

func (s *SummaryStrategy) Name() string { return "summary-statement" }

func (s *SummaryStrategy) Plan(sec types.Section, kw types.Keyword) (Plan, bool) {
	idx := lastParagraphIndex(sec)
	if idx < 0 {
		return Plan{}, false
	}

	sentence := templateFor(summaryTemplates, kw.Category).Render(kw.DisplayTerm)
	return Plan{
		BlockIndex: idx,
		Block:      appendSentence(sec, idx, sentence),
		Delta:      sentence,
		WordsAdded: textproc.WordCount(sentence),
	}, true
}
