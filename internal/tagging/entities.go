package tagging

import (
	"regexp"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
)

// TaggedEntities groups the named entities found for one content item.
type TaggedEntities struct {
	Locations     []string `json:"locations,omitempty"`
	Attractions   []string `json:"attractions,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
	Dates         []string `json:"dates,omitempty"`
}

// EntityTagger combines structured-field extraction with free-text regex
// families. It is a pattern approximation, not NLP: unlisted or unusually
// cased names are missed and that is acceptable.
type EntityTagger struct{}

// NewEntityTagger creates an entity tagger.
func NewEntityTagger() *EntityTagger {
	return &EntityTagger{}
}

var (
	prepositionLocationPattern = regexp.MustCompile(`(?:\b(?:in|at|near|from|to)\s+)([A-Z][a-zà-ÿ]+(?:\s[A-Z][a-zà-ÿ]+){0,2})`)
	attractionPattern          = regexp.MustCompile(`\b((?:[A-Z][a-zà-ÿ']+\s){1,3}(?:Museum|Palace|Cathedral|Castle|Tower|Bridge|Park|Temple|Basilica|Gallery|Square|Fortress|Abbey|Falls))\b`)
	organizationPattern        = regexp.MustCompile(`\b((?:[A-Z][A-Za-z&']+\s){1,3}(?:Airlines|Airways|Hotels?|Resorts?|Tours?|Travel|Cruises|Railways|Airport))\b`)
	datePatterns               = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?\b`),
		regexp.MustCompile(`\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)(?:\s+\d{4})?\b`),
	}
)

// Extract pulls entities from the content's structured fields first, then
// from its salient text, deduplicating each list.
func (t *EntityTagger) Extract(content domain.NormalizedContent) TaggedEntities {
	entities := TaggedEntities{}

	switch c := content.(type) {
	case *domain.Destination:
		entities.Locations = append(entities.Locations, c.Name)
		if c.Country != "" && c.Country != "Unknown" {
			entities.Locations = append(entities.Locations, c.Country)
		}
		if c.Region != "" {
			entities.Locations = append(entities.Locations, c.Region)
		}
	case *domain.Accommodation:
		if c.Address.City != "" {
			entities.Locations = append(entities.Locations, c.Address.City)
		}
		if c.Address.Country != "" && c.Address.Country != "Unknown" {
			entities.Locations = append(entities.Locations, c.Address.Country)
		}
		entities.Organizations = append(entities.Organizations, c.Name)
	case *domain.Transportation:
		if c.Departure.Location != "" {
			entities.Locations = append(entities.Locations, c.Departure.Location)
		}
		if c.Arrival.Location != "" {
			entities.Locations = append(entities.Locations, c.Arrival.Location)
		}
		if c.Provider != "" {
			entities.Organizations = append(entities.Organizations, c.Provider)
		}
	case *domain.Itinerary:
		if c.StartDate != "" {
			entities.Dates = append(entities.Dates, c.StartDate)
		}
		if c.EndDate != "" {
			entities.Dates = append(entities.Dates, c.EndDate)
		}
	}

	text := content.SalientText()
	for _, m := range prepositionLocationPattern.FindAllStringSubmatch(text, -1) {
		entities.Locations = append(entities.Locations, m[1])
	}
	for _, m := range attractionPattern.FindAllStringSubmatch(text, -1) {
		entities.Attractions = append(entities.Attractions, m[1])
	}
	for _, m := range organizationPattern.FindAllStringSubmatch(text, -1) {
		entities.Organizations = append(entities.Organizations, m[1])
	}
	for _, pattern := range datePatterns {
		entities.Dates = append(entities.Dates, pattern.FindAllString(text, -1)...)
	}

	entities.Locations = unique(entities.Locations)
	entities.Attractions = unique(entities.Attractions)
	entities.Organizations = unique(entities.Organizations)
	entities.Dates = unique(entities.Dates)
	return entities
}
