package parsing

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// RenderText renders a document back to plain text in its original section
// order: headings on their own line, lists re-joined with their delimiter,
// bullets with a "- " marker, paragraphs as joined sentences. Sections are
// separated by a blank line.
func RenderText(doc types.Document) string {
	var b strings.Builder
	for i, sec := range doc.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if sec.Heading != "" {
			b.WriteString(sec.Heading)
			b.WriteString("\n")
		}
		for _, block := range sec.Blocks {
			b.WriteString(renderBlock(block))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderBlock(block types.ContentBlock) string {
	switch block.Kind {
	case types.BlockList:
		delim := block.Delimiter
		if delim == "" {
			delim = " | "
		}
		return strings.Join(block.Items, delim)
	default:
		text := strings.Join(block.Sentences, " ")
		if block.Bullet {
			return "- " + text
		}
		return text
	}
}
