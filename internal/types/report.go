package types

// InsertionRecord logs one committed keyword insertion. Records are
// append-only for the duration of a run and returned as part of the report.
type InsertionRecord struct {
	Keyword  Keyword      `json:"keyword"`
	Section  SectionLabel `json:"section"`
	Strategy string       `json:"strategy"`
	// Delta is the text that was added (the new list entry, clause, or sentence).
	Delta string `json:"delta"`
	// WordsAdded is the word count of Delta as charged against the density budget.
	WordsAdded int `json:"words_added"`
}

// Report summarizes one optimization run for the caller.
type Report struct {
	KeywordsAdded    int                  `json:"keywords_added"`
	PerSectionCounts map[SectionLabel]int `json:"per_section_counts"`
	Records          []InsertionRecord    `json:"records,omitempty"`
	// Warnings carries non-fatal notes, e.g. sections that fell back to the
	// "other" label during classification.
	Warnings []string `json:"warnings,omitempty"`
}

// NewReport returns an empty report with an initialized counts map.
func NewReport() *Report {
	return &Report{PerSectionCounts: make(map[SectionLabel]int)}
}

// Add appends a record and updates the counters.
func (r *Report) Add(rec InsertionRecord) {
	r.Records = append(r.Records, rec)
	r.PerSectionCounts[rec.Section]++
	r.KeywordsAdded++
}
