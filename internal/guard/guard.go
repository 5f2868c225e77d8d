// Package guard enforces the cross-section quality constraints of one
// optimization run: no duplicate keyword insertions and a bounded global
// keyword density. Density is a whole-document invariant, so a single Guard
// value is threaded through the run rather than one per section.
package guard

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Guard tracks which normalized terms the document already contains and the
// running inserted-to-total word ratio. It lives for exactly one run; a new
// run must seed a fresh Guard from the current document so terms the resume
// already carries naturally are never re-inserted. Not safe for concurrent
// use — the insertion loop is single-threaded by design.
type Guard struct {
	seenTerms     map[string]bool
	totalWords    int
	insertedWords int
	accepted      int

	densityLimit float64
	globalLimit  int
}

// New returns a Guard with the given limits and empty state.
func New(densityLimit float64, globalLimit int) *Guard {
	return &Guard{
		seenTerms:    make(map[string]bool),
		densityLimit: densityLimit,
		globalLimit:  globalLimit,
	}
}

// Seed scans the document once, recording its total word count and every
// normalized term already present. Extracted keywords the document already
// contains are charged against the density budget as if they had been
// inserted: density measures how keyword-saturated the document is, not how
// many words this particular run added. A second run over an already
// optimized document therefore starts with the budget the first run spent
// and adds nothing more.
func (g *Guard) Seed(doc types.Document, keywords []types.Keyword) {
	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			g.seedText(sec.Heading)
		}
		for _, block := range sec.Blocks {
			switch block.Kind {
			case types.BlockList:
				for _, item := range block.Items {
					g.seedText(item)
				}
			case types.BlockParagraph:
				g.seedText(strings.Join(block.Sentences, " "))
			}
		}
	}
	for _, kw := range keywords {
		if !g.seenTerms[kw.Term] {
			continue
		}
		words := textproc.WordCount(kw.Term)
		if words < 1 {
			words = 1
		}
		g.insertedWords += words
	}
}

func (g *Guard) seedText(text string) {
	g.totalWords += textproc.WordCount(text)
	for _, term := range textproc.Normalize(text) {
		g.seenTerms[term] = true
	}
}

// TryAccept decides whether a keyword may be inserted with an estimated
// added word count. Rejection reasons, in order: the term is already present
// (naturally or from a prior insertion), the global keyword cap is reached,
// or accepting would push density past the limit. On acceptance the word
// counts and seen set are updated in the same call, so a subsequent
// TryAccept for the same term is rejected.
func (g *Guard) TryAccept(keyword types.Keyword, estimatedWords int) bool {
	if g.seenTerms[keyword.Term] {
		return false
	}
	if g.globalLimit >= 0 && g.accepted >= g.globalLimit {
		return false
	}
	if estimatedWords < 0 {
		estimatedWords = 0
	}
	newInserted := g.insertedWords + estimatedWords
	newTotal := g.totalWords + estimatedWords
	if newTotal > 0 && float64(newInserted)/float64(newTotal) > g.densityLimit {
		return false
	}

	g.seenTerms[keyword.Term] = true
	g.insertedWords = newInserted
	g.totalWords = newTotal
	g.accepted++
	return true
}

// Contains reports whether a normalized term is already present. Strategies
// use it for intra-list dedupe checks that never mutate guard state.
func (g *Guard) Contains(normalizedTerm string) bool {
	return g.seenTerms[normalizedTerm]
}

// Accepted returns the number of keywords accepted so far.
func (g *Guard) Accepted() int { return g.accepted }

// Density returns the current inserted-to-total word ratio.
func (g *Guard) Density() float64 {
	if g.totalWords == 0 {
		return 0
	}
	return float64(g.insertedWords) / float64(g.totalWords)
}

// Exhausted reports whether the global cap has been reached, allowing the
// insertion loop to stop early.
func (g *Guard) Exhausted() bool {
	return g.globalLimit >= 0 && g.accepted >= g.globalLimit
}
