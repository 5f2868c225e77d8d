// Package extraction ranks candidate keywords from a job description using
// tf-idf against a background corpus of generic resume/job-posting English.
package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Extractor scores job-description terms against a fixed background corpus.
// An Extractor is immutable after construction and safe for concurrent use;
// per-run state lives entirely inside Extract.
type Extractor struct {
	docFreq   map[string]int // normalized term -> corpus documents containing it
	corpusLen int
}

// NewExtractor returns an extractor backed by the built-in corpus.
func NewExtractor() *Extractor {
	return NewExtractorWithCorpus(defaultCorpus)
}

// NewExtractorWithCorpus returns an extractor using the given reference
// documents for inverse document frequency.
func NewExtractorWithCorpus(docs []string) *Extractor {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range textproc.Normalize(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	return &Extractor{docFreq: df, corpusLen: len(docs)}
}

// termStats accumulates per-term counts during one extraction.
type termStats struct {
	count    int
	position int    // byte offset of first appearance
	display  string // original casing of first appearance
}

// Extract ranks the terms of a job description by tf-idf, descending, with
// score ties broken by first appearance order. The result is truncated to
// maxCandidates (<= 0 means no limit). An empty or whitespace-only job
// description yields an empty slice, not an error.
func (e *Extractor) Extract(jobDescription string, maxCandidates int) []types.Keyword {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	tokens := textproc.Tokenize(jobDescription)
	stats := make(map[string]*termStats)
	total := 0
	for _, tok := range tokens {
		norm := textproc.NormalizeWord(tok.Text)
		if norm == "" {
			continue
		}
		total++
		if s, ok := stats[norm]; ok {
			s.count++
		} else {
			stats[norm] = &termStats{count: 1, position: tok.Position, display: tok.Text}
		}
	}
	if total == 0 {
		return nil
	}

	keywords := make([]types.Keyword, 0, len(stats))
	for term, s := range stats {
		tf := float64(s.count) / float64(total)
		keywords = append(keywords, types.Keyword{
			Term:        term,
			DisplayTerm: s.display,
			Score:       tf * e.idf(term),
			Position:    s.position,
			Category:    CategoryOf(term),
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Position < keywords[j].Position
	})

	if maxCandidates > 0 && len(keywords) > maxCandidates {
		keywords = keywords[:maxCandidates]
	}
	return keywords
}

// idf uses the smoothed variant log((1+N)/(1+df)) + 1 so terms absent from
// the corpus still get a finite, maximal weight.
func (e *Extractor) idf(term string) float64 {
	df := e.docFreq[term]
	return math.Log(float64(1+e.corpusLen)/float64(1+df)) + 1
}
