package textproc

import "strings"

// Stem reduces an English word to a canonical form by stripping common
// inflectional suffixes. It is a deliberately light stemmer: the goal is that
// "managing", "managed", and "manages" collapse to one form so duplicate
// detection catches inflected reuse, not full Porter-grade conflation.
// Input must already be lowercase.
func Stem(word string) string {
	if len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "i"
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		word = word[:len(word)-1]
	}

	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		word = stripVerbSuffix(word, 3)
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		word = stripVerbSuffix(word, 2)
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		word = word[:len(word)-2]
	}

	return word
}

// stripVerbSuffix removes the final n bytes and repairs the stem. A doubled
// consonant means the base word never had a silent e ("planning" -> "plan"),
// so undoubling and e-restoration are mutually exclusive.
func stripVerbSuffix(word string, n int) string {
	stem := word[:len(word)-n]
	if ud := undouble(stem); ud != stem {
		return ud
	}
	return restoreE(stem)
}

// undouble collapses a doubled final consonant left by suffix stripping
// ("plann" -> "plan"), leaving legitimate doubles like "ll" and "ss" alone.
func undouble(word string) string {
	n := len(word)
	if n < 3 {
		return word
	}
	last := word[n-1]
	if last != word[n-2] {
		return word
	}
	switch last {
	case 'l', 's', 'z':
		return word
	}
	if isVowel(last) {
		return word
	}
	return word[:n-1]
}

// restoreE re-appends the silent e dropped before -ing/-ed when the stem ends
// in a consonant preceded by a consonant plus single vowel ("manag" -> "manage").
func restoreE(word string) string {
	n := len(word)
	if n < 3 {
		return word
	}
	if !isVowel(word[n-1]) && isVowel(word[n-2]) && !isVowel(word[n-3]) {
		switch word[n-1] {
		// Words ending in these rarely had a silent e.
		case 'w', 'x', 'y':
			return word
		}
		return word + "e"
	}
	return word
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
