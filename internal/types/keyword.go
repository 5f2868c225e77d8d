package types

// KeywordCategory classifies an extracted keyword. Categories steer template
// selection during insertion; unmatched terms fall back to CategoryGeneric.
type KeywordCategory string

const (
	CategoryTechnical KeywordCategory = "technical"
	CategorySoft      KeywordCategory = "soft"
	CategoryDomain    KeywordCategory = "domain"
	CategoryGeneric   KeywordCategory = "generic"
)

// Keyword is a ranked candidate term extracted from a job description.
type Keyword struct {
	// Term is the normalized surface form used for duplicate detection.
	Term string `json:"term"`
	// DisplayTerm preserves the original casing from the job description and
	// is what actually gets inserted into the resume.
	DisplayTerm string `json:"display_term"`
	// Score is the tf-idf score, always >= 0.
	Score float64 `json:"score"`
	// Position is the byte offset of the term's first appearance in the job
	// description; it breaks score ties deterministically.
	Position int `json:"position"`

	Category KeywordCategory `json:"category"`
}
