package tagging

import (
	"regexp"
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Keyword ranking parameters.
const (
	minTokenLength     = 3
	minPhraseFrequency = 2
	unigramWeight      = 1.0
	bigramWeight       = 1.5
	trigramWeight      = 2.0
	topKeywords        = 20
	topKeywordsDetail  = 30
)

// Keyword is one ranked term with its frequency evidence.
type Keyword struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"weight"`
	Score     float64 `json:"score"`
}

var keywordStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "have": {}, "had": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {},
	"when": {}, "your": {}, "them": {}, "these": {}, "than": {}, "then": {},
	"its": {}, "also": {}, "into": {}, "more": {}, "some": {}, "such": {},
	"only": {}, "over": {}, "most": {}, "other": {},
}

// KeywordExtractor mines frequency-ranked unigrams and repeated bi/trigram
// phrases from free text.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a keyword extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns the top-ranked keyword terms.
func (e *KeywordExtractor) Extract(text string) []string {
	ranked := e.ExtractDetailed(text)
	if len(ranked) > topKeywords {
		ranked = ranked[:topKeywords]
	}
	terms := make([]string, 0, len(ranked))
	for _, kw := range ranked {
		terms = append(terms, kw.Term)
	}
	return terms
}

// ExtractDetailed returns ranked keywords with frequency and score detail.
// Candidates are unigrams plus bigram/trigram phrases that occur at least
// twice, ranked by frequency times the n-gram weight.
func (e *KeywordExtractor) ExtractDetailed(text string) []Keyword {
	tokens := e.tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	weights := make(map[string]float64)

	for _, token := range tokens {
		counts[token]++
		weights[token] = unigramWeight
	}
	for n, weight := range map[int]float64{2: bigramWeight, 3: trigramWeight} {
		for phrase, freq := range ngramCounts(tokens, n) {
			if freq < minPhraseFrequency {
				continue
			}
			counts[phrase] = freq
			weights[phrase] = weight
		}
	}

	ranked := make([]Keyword, 0, len(counts))
	for term, freq := range counts {
		weight := weights[term]
		ranked = append(ranked, Keyword{
			Term:      term,
			Frequency: freq,
			Weight:    weight,
			Score:     float64(freq) * weight,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Term < ranked[j].Term
	})

	if len(ranked) > topKeywordsDetail {
		ranked = ranked[:topKeywordsDetail]
	}
	return ranked
}

// tokenize segments the text into lower-case word tokens, dropping
// punctuation, stop words, and tokens shorter than three characters.
func (e *KeywordExtractor) tokenize(text string) []string {
	var tokens []string
	segments := words.FromString(strings.ToLower(text))
	for segments.Next() {
		token := strings.TrimSpace(segments.Value())
		if len([]rune(token)) < minTokenLength || !isWordToken(token) {
			continue
		}
		if _, stop := keywordStopWords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func isWordToken(token string) bool {
	for _, r := range token {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'' || r == '-' {
			continue
		}
		return false
	}
	return true
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// travelKeywordPatterns are fixed domain regexes: a hit contributes its
// canonical family label regardless of the exact surface form.
var travelKeywordPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"lodging", regexp.MustCompile(`(?i)\b(?:hotel|hostel|resort|accommodation|lodge|guesthouse)s?\b`)},
	{"flight", regexp.MustCompile(`(?i)\b(?:flight|airline|airport|airfare)s?\b`)},
	{"tour", regexp.MustCompile(`(?i)\b(?:tour|excursion|sightseeing|guide)s?\b`)},
	{"terrain", regexp.MustCompile(`(?i)\b(?:beach|mountain|island|desert|forest|lake)e?s?\b`)},
	{"dining", regexp.MustCompile(`(?i)\b(?:restaurant|cuisine|dining|food|culinary)\b`)},
	{"culture", regexp.MustCompile(`(?i)\b(?:museum|gallery|heritage|historic(?:al)?|cultural)\b`)},
	{"activity", regexp.MustCompile(`(?i)\b(?:hiking|diving|snorkeling|skiing|surfing|kayaking|climbing)\b`)},
	{"transport", regexp.MustCompile(`(?i)\b(?:train|bus|ferry|cruise|taxi|transfer)s?\b`)},
}

// ExtractTravelKeywords returns the travel domain families present in the
// text, in pattern order.
func (e *KeywordExtractor) ExtractTravelKeywords(text string) []string {
	var labels []string
	for _, entry := range travelKeywordPatterns {
		if entry.pattern.MatchString(text) {
			labels = append(labels, entry.label)
		}
	}
	return labels
}
