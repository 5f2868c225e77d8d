// Package textproc provides the tokenization and normalization primitives
// shared by keyword extraction and duplicate detection. Both sides must
// normalize identically so a keyword already present in any inflected form
// is recognized as a duplicate.
package textproc

import (
	"strings"
	"unicode"
)

// Token is one raw token with its byte offset in the source text. Offsets
// give the extractor a deterministic tie-break for equal scores.
type Token struct {
	Text     string
	Position int
}

// Tokenize splits text into word tokens, preserving original casing and
// positions. A token is a run of letters and digits; '+', '#', '.', '/' and
// '-' are kept when they appear inside a token so terms like "CI/CD",
// "C++", and "Node.js" survive as single tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	var b strings.Builder
	start := 0

	flush := func(end int) {
		if b.Len() == 0 {
			return
		}
		tok := strings.Trim(b.String(), "./-")
		if tok != "" {
			tokens = append(tokens, Token{Text: tok, Position: start})
		}
		b.Reset()
	}

	for i, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#':
			if b.Len() == 0 {
				start = i
			}
			b.WriteRune(r)
		case (r == '.' || r == '/' || r == '-') && b.Len() > 0:
			// Keep intra-token punctuation; trailing runs are trimmed at flush.
			b.WriteRune(r)
		default:
			flush(i)
		}
	}
	flush(len(text))
	return tokens
}

// Normalize splits raw text into normalized tokens: lowercased, punctuation
// stripped, stop words removed, stemmed. Pure and deterministic.
func Normalize(text string) []string {
	raw := Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		n := NormalizeWord(t.Text)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// NormalizeWord normalizes a single word, returning "" if the word is a stop
// word or too short to be a meaningful term.
func NormalizeWord(word string) string {
	lower := strings.ToLower(strings.Trim(word, "./-"))
	if len(lower) < 2 || IsStopWord(lower) {
		return ""
	}
	return Stem(lower)
}

// NormalizeTerm normalizes a possibly multi-word term into its canonical
// comparison form, joining surviving words with a single space.
func NormalizeTerm(term string) string {
	words := strings.Fields(term)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if n := NormalizeWord(w); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// WordCount counts whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
