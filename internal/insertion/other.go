package insertion

import (
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// OtherStrategy is the minimal fallback for unrecognized sections: a short
// generic sentence appended to the nearest paragraph.
type OtherStrategy struct{}

func (s *OtherStrategy) Name() string { return "other-append" }

func (s *OtherStrategy) Plan(sec types.Section, kw types.Keyword) (Plan, bool) {
	idx := lastParagraphIndex(sec)
	if idx < 0 {
		return Plan{}, false
	}

	sentence := otherTemplate.Render(kw.DisplayTerm)
	return Plan{
		BlockIndex: idx,
		Block:      appendSentence(sec, idx, sentence),
		Delta:      sentence,
		WordsAdded: textproc.WordCount(sentence),
	}, true
}
