// Package optimizer orchestrates one optimization run: keyword extraction,
// section classification, and guarded per-section insertion.
package optimizer

import (
	"github.com/jonathan/resume-optimizer/internal/classify"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/guard"
	"github.com/jonathan/resume-optimizer/internal/insertion"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Optimizer holds the run-independent pieces: the extractor with its
// background corpus and the validated strategy registry. An Optimizer is
// immutable and safe to share; all mutable state (guard, report) is created
// per run, so concurrent runs need no locking.
type Optimizer struct {
	extractor  *extraction.Extractor
	strategies insertion.Registry
}

// New returns an optimizer with the built-in background corpus.
func New() (*Optimizer, error) {
	return NewWithExtractor(extraction.NewExtractor())
}

// NewWithExtractor returns an optimizer using a custom extractor, typically
// one built on a caller-supplied reference corpus.
func NewWithExtractor(e *extraction.Extractor) (*Optimizer, error) {
	reg, err := insertion.NewRegistry()
	if err != nil {
		return nil, &PreconditionError{Message: "invalid strategy registry", Cause: err}
	}
	return &Optimizer{extractor: e, strategies: reg}, nil
}

// Optimize rewrites the document to better match the job description's
// vocabulary, returning the edited document and a report of what was
// inserted. The input document is never mutated. Degenerate input (empty
// document or blank job description) returns an unchanged document and a
// zero report. Invalid settings fail before any work with a
// PreconditionError.
func (o *Optimizer) Optimize(doc types.Document, jobDescription string, settings types.OptimizationSettings) (types.Document, *types.Report, error) {
	if err := settings.Validate(); err != nil {
		return doc, nil, &PreconditionError{Message: "invalid settings", Cause: err}
	}
	caps := settings.MaxKeywordsPerSection
	if caps == nil {
		caps = types.DefaultSectionCaps()
	}

	result := doc.Clone()
	report := types.NewReport()

	// Extraction. No keywords or no content means nothing to do; the run
	// still completes normally with a zero report.
	keywords := o.extractor.Extract(jobDescription, settings.MaxCandidates)
	if len(keywords) == 0 || result.IsEmpty() {
		return result, report, nil
	}

	// Classification happens once, and only when the caller handed over an
	// unclassified document; pre-assigned labels are respected.
	if unlabeled(result) {
		var warnings []string
		result, warnings = classify.Classify(result)
		report.Warnings = warnings
	}

	// Insertion. The guard is scoped to this run and seeded from the
	// document's current content, so naturally present terms never repeat
	// and already-present keywords count toward the density budget. Running
	// the same job description over an optimized document converges.
	g := guard.New(settings.KeywordDensityLimit, settings.GlobalKeywordLimit)
	g.Seed(result, keywords)

	consumed := make([]bool, len(keywords))
	for _, label := range types.SectionPriority {
		if g.Exhausted() {
			break
		}
		o.fillSections(&result, label, caps[label], keywords, consumed, g, report)
	}

	return result, report, nil
}

// fillSections offers unconsumed keywords, in score order, to every section
// carrying the given label until the per-label cap, the global cap, or the
// density limit stops it.
func (o *Optimizer) fillSections(
	doc *types.Document,
	label types.SectionLabel,
	sectionCap int,
	keywords []types.Keyword,
	consumed []bool,
	g *guard.Guard,
	report *types.Report,
) {
	strategy, ok := o.strategies[label]
	if !ok || sectionCap <= 0 {
		return
	}

	inserted := 0
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Label != label {
			continue
		}
		for k, kw := range keywords {
			if inserted >= sectionCap || g.Exhausted() {
				return
			}
			if consumed[k] {
				continue
			}

			// Plan first: the strategy computes the exact text and its word
			// cost without touching the section. A section with no valid
			// insertion point just skips the keyword, which stays available
			// for later sections in priority order.
			plan, ok := strategy.Plan(*sec, kw)
			if !ok {
				continue
			}
			if !g.TryAccept(kw, plan.WordsAdded) {
				// Duplicate or over budget. A duplicate is burned for the
				// whole run; budget rejections also stop mattering because
				// the guard state only tightens. Either way the keyword is
				// not retried here.
				if g.Contains(kw.Term) {
					consumed[k] = true
				}
				continue
			}

			plan.Apply(sec)
			consumed[k] = true
			inserted++
			report.Add(types.InsertionRecord{
				Keyword:    kw,
				Section:    label,
				Strategy:   strategy.Name(),
				Delta:      plan.Delta,
				WordsAdded: plan.WordsAdded,
			})
		}
	}
}

// unlabeled reports whether no section carries a label yet, meaning the
// caller handed over a parsed but unclassified document.
func unlabeled(doc types.Document) bool {
	for _, s := range doc.Sections {
		if s.Label != "" {
			return false
		}
	}
	return true
}
