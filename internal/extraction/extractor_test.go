package extraction

import (
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = "Looking for a Python developer with experience in Docker and Kubernetes for backend systems."

func TestExtract_RanksSpecificTermsHigh(t *testing.T) {
	e := NewExtractor()
	keywords := e.Extract(sampleJD, 0)
	require.NotEmpty(t, keywords)

	terms := make(map[string]types.Keyword)
	for _, kw := range keywords {
		terms[kw.Term] = kw
	}

	for _, want := range []string{"python", "docker", "kubernete", "backend"} {
		_, ok := terms[want]
		assert.True(t, ok, "expected term %q in results", want)
	}

	// "experience" is all over the background corpus and must rank below the
	// technology terms.
	exp, ok := terms["experience"]
	require.True(t, ok)
	assert.Greater(t, terms["docker"].Score, exp.Score)
}

func TestExtract_EmptyAndStopWordOnlyInput(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.Extract("", 10))
	assert.Empty(t, e.Extract("   \n\t ", 10))
	assert.Empty(t, e.Extract("the a an is of", 10))
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor()
	a := e.Extract(sampleJD, 20)
	b := e.Extract(sampleJD, 20)
	assert.Equal(t, a, b)
}

func TestExtract_TiesBrokenByFirstAppearance(t *testing.T) {
	// With an empty corpus every unseen term has identical idf, and each term
	// appears once, so all scores tie; order must follow the text.
	e := NewExtractorWithCorpus(nil)
	keywords := e.Extract("zebra apple mango", 0)

	require.Len(t, keywords, 3)
	assert.Equal(t, "zebra", keywords[0].Term)
	assert.Equal(t, "apple", keywords[1].Term)
	assert.Equal(t, "mango", keywords[2].Term)
}

func TestExtract_TruncatesToMaxCandidates(t *testing.T) {
	e := NewExtractor()
	keywords := e.Extract(sampleJD, 2)
	assert.Len(t, keywords, 2)
}

func TestExtract_PreservesDisplayCasing(t *testing.T) {
	e := NewExtractor()
	keywords := e.Extract(sampleJD, 0)

	for _, kw := range keywords {
		if kw.Term == "docker" {
			assert.Equal(t, "Docker", kw.DisplayTerm)
		}
		if kw.Term == "kubernete" {
			assert.Equal(t, "Kubernetes", kw.DisplayTerm)
		}
	}
}

func TestExtract_CategoryTagging(t *testing.T) {
	e := NewExtractor()
	keywords := e.Extract("Kubernetes leadership fintech widgets", 0)

	byTerm := make(map[string]types.KeywordCategory)
	for _, kw := range keywords {
		byTerm[kw.Term] = kw.Category
	}

	assert.Equal(t, types.CategoryTechnical, byTerm["kubernete"])
	assert.Equal(t, types.CategorySoft, byTerm["leadership"])
	assert.Equal(t, types.CategoryDomain, byTerm["fintech"])
	assert.Equal(t, types.CategoryGeneric, byTerm["widget"])
}

func TestCategoryOf_MatchesInflectedForms(t *testing.T) {
	// "mentoring" and "mentored" normalize identically, so both hit the
	// curated soft-skill entry.
	a := CategoryOf(normalizeOne(t, "mentoring"))
	b := CategoryOf(normalizeOne(t, "mentored"))
	assert.Equal(t, types.CategorySoft, a)
	assert.Equal(t, a, b)
}

func normalizeOne(t *testing.T, word string) string {
	t.Helper()
	e := NewExtractorWithCorpus(nil)
	kws := e.Extract(word, 1)
	require.Len(t, kws, 1)
	return kws[0].Term
}
