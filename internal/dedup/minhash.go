package dedup

import (
	"math"
	"strings"
	"unicode"
)

// Signature parameters. 128 independent hash functions over 3-word
// shingles give a Jaccard estimate with roughly +/-0.09 standard error,
// enough resolution for the 0.8 duplicate threshold.
const (
	signatureSize = 128
	shingleSize   = 3
)

// stopWords are dropped before shingling so that filler-word edits do not
// defeat near-duplicate detection.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "by": {}, "from": {}, "is": {}, "are": {}, "was": {},
	"be": {}, "this": {}, "that": {}, "it": {}, "as": {}, "its": {},
}

// tokenize lowercases, strips punctuation, and drops stop-words.
func tokenize(text string) []string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteByte(' ')
		}
	}

	fields := strings.Fields(builder.String())
	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopWords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// shingles returns the contiguous word n-grams of the tokenized text.
// Texts shorter than the shingle size yield a single shingle so that very
// short items still produce a comparable signature.
func shingles(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) < shingleSize {
		return []string{strings.Join(tokens, " ")}
	}

	result := make([]string, 0, len(tokens)-shingleSize+1)
	for i := 0; i+shingleSize <= len(tokens); i++ {
		result = append(result, strings.Join(tokens[i:i+shingleSize], " "))
	}
	return result
}

// seededHash is a multiplicative string hash with per-index seeding.
// It is deliberately weak: adequate for the duplicate-detection behavior
// required here, with a known accuracy ceiling on adversarial inputs.
// Replacing it with an independent universal hash family would require
// re-deriving the similarity threshold.
func seededHash(s string, seed uint64) uint64 {
	h := 1469598103934665603 ^ (seed+1)*0x9E3779B97F4A7C15
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// minhashSignature computes the MinHash signature of the text's shingle
// set: for each of the 128 seeded hash functions, the minimum hash value
// across all shingles.
func minhashSignature(text string) []uint64 {
	items := shingles(text)
	if len(items) == 0 {
		return nil
	}

	signature := make([]uint64, signatureSize)
	for seed := range signature {
		minimum := uint64(math.MaxUint64)
		for _, shingle := range items {
			if h := seededHash(shingle, uint64(seed)); h < minimum {
				minimum = h
			}
		}
		signature[seed] = minimum
	}
	return signature
}

// estimateSimilarity returns the fraction of positions on which two
// signatures agree, an unbiased estimate of the Jaccard similarity of the
// underlying shingle sets.
func estimateSimilarity(a, b []uint64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}
