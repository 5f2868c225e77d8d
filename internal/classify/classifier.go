// Package classify assigns section labels to parsed resume documents using
// a curated heading vocabulary.
package classify

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// MatchHeading matches a heading line against the vocabulary and returns the
// section label it identifies. Matching is case-insensitive substring
// matching, restricted to short lines so body sentences that mention
// "experience" do not register as headings.
func MatchHeading(line string) (types.SectionLabel, bool) {
	trimmed := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":"))
	if trimmed == "" || textproc.WordCount(trimmed) > maxHeadingWords {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, entry := range headingVocabulary {
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, phrase) {
				return entry.Label, true
			}
		}
	}
	return "", false
}

// Classify populates the label of every section in the document. It is a
// single forward pass with a current-label register: a recognized heading
// sets the register, an unrecognized or absent heading resets it to "other".
// Earlier decisions are never revisited, so out-of-order or duplicated
// headings yield best-effort labeling. Returns the labeled document and a
// warning per section that fell back to "other".
func Classify(doc types.Document) (types.Document, []string) {
	out := doc.Clone()
	var warnings []string

	current := types.LabelOther
	for i := range out.Sections {
		sec := &out.Sections[i]
		if label, ok := MatchHeading(sec.Heading); ok {
			current = label
		} else {
			current = types.LabelOther
			if sec.Heading != "" {
				warnings = append(warnings, fmt.Sprintf("unrecognized heading %q labeled as other", sec.Heading))
			}
		}
		sec.Label = current
	}
	return out, warnings
}
