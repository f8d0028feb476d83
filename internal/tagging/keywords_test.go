package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	e := NewKeywordExtractor()

	terms := e.Extract("The beach is beautiful. The beach has white sand and clear water.")
	require.NotEmpty(t, terms)
	assert.Equal(t, "beach", terms[0], "most frequent term ranks first")
	assert.NotContains(t, terms, "the", "stop words are removed")
	assert.NotContains(t, terms, "is", "short tokens are removed")
}

func TestKeywordExtractor_RepeatedPhrasesOutrankUnigrams(t *testing.T) {
	e := NewKeywordExtractor()

	ranked := e.ExtractDetailed("Coral reef diving today. Coral reef snorkeling tomorrow.")
	require.NotEmpty(t, ranked)
	assert.Equal(t, "coral reef", ranked[0].Term)
	assert.Equal(t, 2, ranked[0].Frequency)
	assert.InDelta(t, bigramWeight, ranked[0].Weight, 0.001)
	assert.InDelta(t, 3.0, ranked[0].Score, 0.001)
}

func TestKeywordExtractor_SinglePhraseDoesNotQualify(t *testing.T) {
	e := NewKeywordExtractor()

	for _, kw := range e.ExtractDetailed("Ancient harbor town with cobbled streets.") {
		assert.NotContains(t, kw.Term, " ", "one-off phrases must not qualify")
	}
}

func TestKeywordExtractor_EmptyText(t *testing.T) {
	e := NewKeywordExtractor()
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("a an of"))
}

func TestExtractTravelKeywords(t *testing.T) {
	e := NewKeywordExtractor()

	labels := e.ExtractTravelKeywords("Book a hotel near the airport, then join a snorkeling tour on the beach.")
	assert.Equal(t, []string{"lodging", "flight", "tour", "terrain", "activity"}, labels)
}

func TestExtractTravelKeywords_NoMatches(t *testing.T) {
	e := NewKeywordExtractor()
	assert.Empty(t, e.ExtractTravelKeywords("Quarterly revenue grew by nine percent."))
}
