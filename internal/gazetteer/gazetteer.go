// Package gazetteer provides term lookup capabilities for entity
// recognition. The lookups sit behind a small interface so a real
// geocoder-backed gazetteer can be substituted without touching the
// extraction logic that consumes it.
package gazetteer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Gazetteer answers membership questions about travel terms.
type Gazetteer interface {
	// IsLocation reports whether the term names a known destination,
	// city, region, or country.
	IsLocation(term string) bool
	// IsActivityType reports whether the term names a known activity type.
	IsActivityType(term string) bool
	// IsAmenity reports whether the term names a known amenity.
	IsAmenity(term string) bool
}

// Static is the built-in gazetteer backed by the curated term tables in
// this package. Lookups are case-insensitive and accent-folded.
type Static struct{}

// NewStatic creates a gazetteer backed by the built-in term tables.
func NewStatic() *Static {
	return &Static{}
}

// IsLocation reports whether the term is in the curated location table.
func (s *Static) IsLocation(term string) bool {
	if term == "" {
		return false
	}
	_, ok := locations[normalizeForLookup(term)]
	return ok
}

// IsActivityType reports whether the term is in the curated activity table.
func (s *Static) IsActivityType(term string) bool {
	if term == "" {
		return false
	}
	_, ok := activityTypes[normalizeForLookup(term)]
	return ok
}

// IsAmenity reports whether the term is in the curated amenity table.
func (s *Static) IsAmenity(term string) bool {
	if term == "" {
		return false
	}
	_, ok := amenities[normalizeForLookup(term)]
	return ok
}

// CountryCode returns the ISO alpha-2 code for a country name,
// or "" when unknown.
func CountryCode(name string) string {
	if name == "" {
		return ""
	}
	normalized := normalizeForLookup(name)
	if code, ok := countryCodes[normalized]; ok {
		return code
	}
	// Already a code
	upper := strings.ToUpper(strings.TrimSpace(name))
	if len(upper) == 2 {
		if _, ok := knownCodes[upper]; ok {
			return upper
		}
	}
	return ""
}

// IsCountryCode reports whether code is a known ISO alpha-2 country code.
func IsCountryCode(code string) bool {
	_, ok := knownCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// prefixesToRemove are qualifiers stripped before lookup.
var prefixesToRemove = []string{
	"the ",
	"city of ",
	"isle of ",
	"island of ",
}

// normalizeForLookup prepares a term for map lookup.
func normalizeForLookup(term string) string {
	s := strings.ToLower(strings.TrimSpace(term))

	for _, prefix := range prefixesToRemove {
		if after, found := strings.CutPrefix(s, prefix); found {
			s = after
			break
		}
	}

	return removeAccents(s)
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
