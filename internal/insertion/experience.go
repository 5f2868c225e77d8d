package insertion

import (
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ExperienceStrategy synthesizes a contextual sentence from the category
// templates. In a bullet-structured section it becomes a new bullet; in
// prose it is appended to the most recent paragraph.
type ExperienceStrategy struct{}

func (s *ExperienceStrategy) Name() string { return "experience-sentence" }

func (s *ExperienceStrategy) Plan(sec types.Section, kw types.Keyword) (Plan, bool) {
	idx := lastParagraphIndex(sec)
	if idx < 0 {
		return Plan{}, false
	}

	sentence := templateFor(experienceTemplates, kw.Category).Render(kw.DisplayTerm)
	words := textproc.WordCount(sentence)

	if sec.Blocks[idx].Bullet {
		return Plan{
			BlockIndex: -1,
			Block: types.ContentBlock{
				Kind:      types.BlockParagraph,
				Bullet:    true,
				Sentences: []string{sentence},
			},
			Delta:      sentence,
			WordsAdded: words,
		}, true
	}

	return Plan{
		BlockIndex: idx,
		Block:      appendSentence(sec, idx, sentence),
		Delta:      sentence,
		WordsAdded: words,
	}, true
}
