package normalize

import (
	"regexp"
	"strings"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
)

// Entities holds the candidate fields recognized in free text. All lists
// are deduplicated and ordered by first appearance.
type Entities struct {
	Locations     []string `json:"locations,omitempty"`
	ActivityTypes []string `json:"activityTypes,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Addresses     []string `json:"addresses,omitempty"`
}

// EntityRecognizer extracts candidate locations, activity types, amenities,
// and addresses from free text. This is a pattern-matching approximation,
// not full NLP: terms missing from the gazetteer are expected to be missed.
type EntityRecognizer struct {
	gaz gazetteer.Gazetteer
}

// NewEntityRecognizer creates a recognizer backed by the given gazetteer.
func NewEntityRecognizer(gaz gazetteer.Gazetteer) *EntityRecognizer {
	return &EntityRecognizer{gaz: gaz}
}

// capitalizedPhrase matches runs of capitalized words, the candidate shape
// for location names.
var capitalizedPhrase = regexp.MustCompile(`\b([A-Z][a-zà-ÿ]+(?: [A-Z][a-zà-ÿ]+){0,3})\b`)

// addressPattern matches street-number addresses.
var addressPattern = regexp.MustCompile(`\b\d{1,5}\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Place|Pl)\b\.?`)

var wordSplitter = regexp.MustCompile(`[^a-zà-ÿ]+`)

// ExtractEntities scans text for gazetteer-validated entities. Capitalized
// phrases are location candidates; lowercase unigrams and bigrams are
// activity-type and amenity candidates.
func (r *EntityRecognizer) ExtractEntities(text string) Entities {
	entities := Entities{}
	if text == "" {
		return entities
	}

	seen := make(map[string]bool)

	for _, match := range capitalizedPhrase.FindAllString(text, -1) {
		key := "loc:" + strings.ToLower(match)
		if seen[key] {
			continue
		}
		if r.gaz.IsLocation(match) {
			seen[key] = true
			entities.Locations = append(entities.Locations, match)
		}
	}

	lower := strings.ToLower(text)
	words := wordSplitter.Split(lower, -1)
	for i, word := range words {
		if word == "" {
			continue
		}
		candidates := []string{word}
		if i+1 < len(words) && words[i+1] != "" {
			candidates = append(candidates, word+" "+words[i+1])
		}
		for _, candidate := range candidates {
			if r.gaz.IsActivityType(candidate) && !seen["act:"+candidate] {
				seen["act:"+candidate] = true
				entities.ActivityTypes = append(entities.ActivityTypes, candidate)
			}
			if r.gaz.IsAmenity(candidate) && !seen["amn:"+candidate] {
				seen["amn:"+candidate] = true
				entities.Amenities = append(entities.Amenities, candidate)
			}
		}
	}

	for _, match := range addressPattern.FindAllString(text, -1) {
		key := "addr:" + strings.ToLower(match)
		if !seen[key] {
			seen[key] = true
			entities.Addresses = append(entities.Addresses, match)
		}
	}

	return entities
}
