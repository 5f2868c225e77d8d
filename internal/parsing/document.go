// Package parsing converts plain resume text into the structured document
// model and renders optimized documents back to text. Parsing is by design
// line-oriented: headings split sections, bullet markers and delimiters
// decide block shapes, everything else becomes paragraph sentences.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/classify"
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// bulletMarkers are the prefixes that mark a line as a bullet item.
var bulletMarkers = []string{"- ", "* ", "• ", "· "}

// ParseDocument parses resume text into sections and content blocks. Content
// before the first heading-like line lands in a section with an empty
// heading. Labels are left empty; classification is a separate pass.
func ParseDocument(text string) types.Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	doc := types.Document{}
	current := types.Section{}
	started := false

	flush := func() {
		if started && (current.Heading != "" || len(current.Blocks) > 0) {
			doc.Sections = append(doc.Sections, current)
		}
		current = types.Section{}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isHeadingLine(line) {
			flush()
			started = true
			current.Heading = line
			continue
		}
		started = true
		current.Blocks = append(current.Blocks, parseLine(line))
	}
	flush()
	return doc
}

// isHeadingLine decides whether a line starts a new section. Known section
// titles always win; otherwise a short line without terminal punctuation
// that is all-caps or ends with a colon is treated as a heading.
func isHeadingLine(line string) bool {
	if isBulletLine(line) {
		return false
	}
	if _, ok := classify.MatchHeading(line); ok {
		return true
	}
	if textproc.WordCount(line) > 4 || strings.HasSuffix(line, ".") {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	return line == strings.ToUpper(line) && strings.ContainsFunc(line, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

// parseLine converts one content line into a block.
func parseLine(line string) types.ContentBlock {
	if isBulletLine(line) {
		item := strings.TrimSpace(line[strings.IndexAny(line, " ")+1:])
		return types.ContentBlock{
			Kind:      types.BlockParagraph,
			Bullet:    true,
			Sentences: SplitSentences(item),
		}
	}
	if delim, ok := detectListDelimiter(line); ok {
		parts := strings.Split(line, strings.TrimSpace(delim))
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), ".")); p != "" {
				items = append(items, p)
			}
		}
		return types.ContentBlock{Kind: types.BlockList, Items: items, Delimiter: delim}
	}
	return types.ContentBlock{Kind: types.BlockParagraph, Sentences: SplitSentences(line)}
}

// detectListDelimiter recognizes delimited skill lists: pipe-separated
// always, comma-separated when every entry is short enough to be a list
// token rather than prose.
func detectListDelimiter(line string) (string, bool) {
	if strings.Contains(line, "|") {
		return " | ", true
	}
	if strings.Count(line, ",") >= 2 && !strings.Contains(strings.TrimSuffix(line, "."), ". ") {
		for _, part := range strings.Split(line, ",") {
			if textproc.WordCount(part) > 4 {
				return "", false
			}
		}
		return ", ", true
	}
	return "", false
}

func isBulletLine(line string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// SplitSentences splits prose into sentences on terminal punctuation,
// keeping the punctuation attached. It is intentionally simple; the engine
// only needs stable sentence boundaries, not linguistic accuracy.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	runes := []rune(strings.TrimSpace(text))
	for i, r := range runes {
		b.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && (i == len(runes)-1 || runes[i+1] == ' ') {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
