package types

import "fmt"

// Default limits for one optimization run.
const (
	DefaultGlobalKeywordLimit  = 15
	DefaultKeywordDensityLimit = 0.03
	DefaultMaxCandidates       = 100
)

// DefaultSectionCaps returns the default per-section insertion caps.
func DefaultSectionCaps() map[SectionLabel]int {
	return map[SectionLabel]int{
		LabelSkills:     8,
		LabelExperience: 5,
		LabelProjects:   4,
		LabelSummary:    3,
		LabelOther:      2,
	}
}

// OptimizationSettings bound how aggressively keywords are inserted.
type OptimizationSettings struct {
	// MaxKeywordsPerSection caps insertions per section label. A label
	// missing from the map gets no insertions.
	MaxKeywordsPerSection map[SectionLabel]int `json:"max_keywords_per_section"`
	// GlobalKeywordLimit caps total insertions across the whole document.
	GlobalKeywordLimit int `json:"global_keyword_limit"`
	// KeywordDensityLimit is the ceiling for inserted-words / total-words,
	// exclusive bounds (0, 1).
	KeywordDensityLimit float64 `json:"keyword_density_limit"`
	// MaxCandidates truncates the ranked keyword list before insertion.
	MaxCandidates int `json:"max_candidates"`
}

// DefaultSettings returns the settings used when the caller provides none.
func DefaultSettings() OptimizationSettings {
	return OptimizationSettings{
		MaxKeywordsPerSection: DefaultSectionCaps(),
		GlobalKeywordLimit:    DefaultGlobalKeywordLimit,
		KeywordDensityLimit:   DefaultKeywordDensityLimit,
		MaxCandidates:         DefaultMaxCandidates,
	}
}

// Validate checks that all limits are in range.
func (s OptimizationSettings) Validate() error {
	if s.GlobalKeywordLimit < 0 {
		return fmt.Errorf("settings error: 'global_keyword_limit' must be non-negative")
	}
	if s.KeywordDensityLimit <= 0 || s.KeywordDensityLimit >= 1 {
		return fmt.Errorf("settings error: 'keyword_density_limit' must be in (0, 1)")
	}
	if s.MaxCandidates < 0 {
		return fmt.Errorf("settings error: 'max_candidates' must be non-negative")
	}
	for label, cap := range s.MaxKeywordsPerSection {
		if cap < 0 {
			return fmt.Errorf("settings error: section cap for %q must be non-negative", label)
		}
	}
	return nil
}
