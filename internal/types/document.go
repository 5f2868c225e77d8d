// Package types defines the shared data model for the resume optimizer:
// documents, sections, keywords, insertion reports, and settings.
package types

// SectionLabel identifies the kind of resume section a block of content
// belongs to. The label set is closed; anything unrecognized is labeled Other.
type SectionLabel string

const (
	LabelSummary    SectionLabel = "summary"
	LabelSkills     SectionLabel = "skills"
	LabelExperience SectionLabel = "experience"
	LabelProjects   SectionLabel = "projects"
	LabelOther      SectionLabel = "other"
)

// SectionPriority is the fixed order in which sections are offered keywords.
// Skills comes first because it is the highest-signal, lowest-risk insertion
// point.
var SectionPriority = []SectionLabel{
	LabelSkills,
	LabelExperience,
	LabelProjects,
	LabelSummary,
	LabelOther,
}

// BlockKind distinguishes the two content block shapes.
type BlockKind string

const (
	// BlockList is a delimited list of short entries (e.g. "Python | Go | SQL").
	BlockList BlockKind = "list"
	// BlockParagraph is an ordered sequence of sentences. A paragraph may be
	// a bullet item, in which case it renders with a leading bullet marker.
	BlockParagraph BlockKind = "paragraph"
)

// ContentBlock is a single unit of section content: either a delimited list
// or a paragraph of sentences.
type ContentBlock struct {
	Kind      BlockKind `json:"kind"`
	Items     []string  `json:"items,omitempty"`     // list entries (Kind == BlockList)
	Delimiter string    `json:"delimiter,omitempty"` // list delimiter, e.g. " | " or ", "
	Sentences []string  `json:"sentences,omitempty"` // paragraph sentences (Kind == BlockParagraph)
	Bullet    bool      `json:"bullet,omitempty"`    // paragraph is a bullet item
}

// Clone returns a deep copy of the block.
func (b ContentBlock) Clone() ContentBlock {
	out := b
	if b.Items != nil {
		out.Items = make([]string, len(b.Items))
		copy(out.Items, b.Items)
	}
	if b.Sentences != nil {
		out.Sentences = make([]string, len(b.Sentences))
		copy(out.Sentences, b.Sentences)
	}
	return out
}

// Section is a labeled, ordered region of the document. The label, once
// assigned by classification, does not change during optimization.
type Section struct {
	Label   SectionLabel   `json:"label"`
	Heading string         `json:"heading,omitempty"` // original heading line, empty for preamble content
	Blocks  []ContentBlock `json:"blocks"`
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Blocks = make([]ContentBlock, len(s.Blocks))
	for i, b := range s.Blocks {
		out.Blocks[i] = b.Clone()
	}
	return out
}

// Document is an ordered sequence of sections. The optimizer never reorders,
// merges, or deletes sections; only block content receives insertions.
type Document struct {
	Sections []Section `json:"sections"`
}

// Clone returns a deep copy of the document. The optimizer works on a clone
// so that callers keep an untouched input on precondition failure.
func (d Document) Clone() Document {
	out := Document{Sections: make([]Section, len(d.Sections))}
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

// IsEmpty reports whether the document carries no content blocks at all.
func (d Document) IsEmpty() bool {
	for _, s := range d.Sections {
		if len(s.Blocks) > 0 {
			return false
		}
	}
	return true
}

// Labels returns the section labels in document order.
func (d Document) Labels() []SectionLabel {
	labels := make([]SectionLabel, len(d.Sections))
	for i, s := range d.Sections {
		labels[i] = s.Label
	}
	return labels
}
