// Package tagging derives confidence-scored taxonomy tags for normalized
// travel content from keywords, named entities, and a static category tree.
package tagging

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
)

// Confidence model parameters.
const (
	// TagConfidenceThreshold splits accepted tags from suggestions.
	TagConfidenceThreshold = 0.5

	// Minimum keyword overlap for a taxonomy node to count at all.
	matchThreshold = 0.05

	activityBaseConfidence    = 0.6
	activityMatchScale        = 0.4
	destinationBaseConfidence = 0.7
	destinationMatchScale     = 0.3
	geoEntityBonus            = 0.1
	exactTypeConfidence       = 0.9
	defaultTagConfidence      = 0.3
	sparseContentConfidence   = 0.5

	// Keyword-derived (non-rule) tags score lower than rule matches so weak
	// matches land in suggestions instead of accepted tags.
	keywordTagBase  = 0.4
	keywordTagScale = 0.4
	keywordTagCap   = 0.8
)

// ContentTagger orchestrates keyword extraction, entity extraction, and
// taxonomy matching into a TagResult.
type ContentTagger struct {
	keywords  *KeywordExtractor
	entities  *EntityTagger
	taxonomy  *Taxonomy
	telemetry *telemetry.Provider
	log       logger.Logger
}

// NewContentTagger creates a tagger with the static taxonomy. The
// telemetry provider may be nil.
func NewContentTagger(tel *telemetry.Provider, log logger.Logger) *ContentTagger {
	return &ContentTagger{
		keywords:  NewKeywordExtractor(),
		entities:  NewEntityTagger(),
		taxonomy:  NewTaxonomy(),
		telemetry: tel,
		log:       log,
	}
}

// Tag computes tags for one normalized item. Accepted tags also land on
// the content's Tags list as dotted taxonomy paths; suggestions never do.
func (t *ContentTagger) Tag(ctx context.Context, content domain.NormalizedContent) *domain.TagResult {
	start := time.Now()

	text := content.SalientText()
	entities := t.entities.Extract(content)
	topKeywords := t.keywords.Extract(text)
	matches := t.taxonomy.MatchCategories(text, matchThreshold)
	hasGeo := len(entities.Locations) > 0

	tags := t.ruleTags(content, matches, hasGeo)
	tags = mergeTags(tags, t.keywordTags(matches))

	for i := range tags {
		tags[i].Keywords = limitStrings(append(tags[i].Keywords, topKeywords...), 10)
		tags[i].Entities = domain.TagEntities{
			Locations:     entities.Locations,
			Attractions:   entities.Attractions,
			Organizations: entities.Organizations,
		}
		tags[i].Attributes = contentAttributes(content)
	}

	result := partition(tags)
	result.PrimaryCategory = primaryCategory(result, content)

	base := content.Common()
	for _, tag := range result.Tags {
		base.Tags = append(base.Tags, strings.Join(tag.HierarchicalPath, "."))
	}
	if base.Confidence == 0 {
		base.Confidence = sparseContentConfidence
	}

	if t.telemetry != nil {
		t.telemetry.RecordTagging(ctx, time.Since(start), len(result.Tags), len(result.SuggestedTags))
	}
	t.log.Debug("tagged content",
		logger.String("content_id", base.ID),
		logger.String("primary_category", string(result.PrimaryCategory)),
		logger.Int("tags", len(result.Tags)),
		logger.Int("suggested", len(result.SuggestedTags)))
	return result
}

// ruleTags applies the per-variant rule functions. Each variant scores
// taxonomy matches inside its own category subtree.
func (t *ContentTagger) ruleTags(content domain.NormalizedContent, matches []CategoryMatch, hasGeo bool) []domain.ContentTag {
	switch c := content.(type) {
	case *domain.Destination:
		return t.tagByCategory(matches, domain.CategoryDestination, destinationBaseConfidence, destinationMatchScale, hasGeo)
	case *domain.Activity:
		return t.tagByCategory(matches, domain.CategoryActivity, activityBaseConfidence, activityMatchScale, hasGeo)
	case *domain.Accommodation:
		return t.tagAccommodation(c, matches, hasGeo)
	case *domain.Transportation:
		return t.tagByCategory(matches, domain.CategoryTransportation, activityBaseConfidence, activityMatchScale, hasGeo)
	case *domain.Itinerary:
		return t.tagByCategory(matches, domain.CategoryGeneral, activityBaseConfidence, activityMatchScale, hasGeo)
	case *domain.Generic:
		return []domain.ContentTag{{
			Category:         domain.CategoryGeneral,
			Confidence:       defaultTagConfidence,
			HierarchicalPath: []string{string(domain.CategoryGeneral)},
		}}
	}
	return nil
}

// tagByCategory turns the matches under one category subtree into tags
// scored base + matchScore*scale, with the flat geographic bonus capped
// at 1.0. With no subtree match the variant itself still yields a bare
// category tag at base confidence.
func (t *ContentTagger) tagByCategory(matches []CategoryMatch, category domain.ContentCategory, base, scale float64, hasGeo bool) []domain.ContentTag {
	var tags []domain.ContentTag
	for _, m := range matches {
		if m.Category != category {
			continue
		}
		tags = append(tags, domain.ContentTag{
			Category:         category,
			Subcategories:    m.Path[1:],
			Keywords:         m.Matched,
			Confidence:       applyGeoBonus(base+m.Score*scale, hasGeo),
			HierarchicalPath: m.Path,
		})
	}
	if len(tags) == 0 {
		tags = append(tags, domain.ContentTag{
			Category:         category,
			Confidence:       applyGeoBonus(base, hasGeo),
			HierarchicalPath: []string{string(category)},
		})
	}
	return tags
}

// tagAccommodation adds the exact-type short circuit: a declared
// accommodation type that names a taxonomy node scores a flat 0.9.
func (t *ContentTagger) tagAccommodation(c *domain.Accommodation, matches []CategoryMatch, hasGeo bool) []domain.ContentTag {
	if c.Type != "" {
		if path := t.taxonomy.CategoryPath(c.Type); path != nil && path[0] == string(domain.CategoryAccommodation) {
			return []domain.ContentTag{{
				Category:         domain.CategoryAccommodation,
				Subcategories:    path[1:],
				Confidence:       exactTypeConfidence,
				HierarchicalPath: path,
			}}
		}
	}
	return t.tagByCategory(matches, domain.CategoryAccommodation, activityBaseConfidence, activityMatchScale, hasGeo)
}

// keywordTags turns every taxonomy match, regardless of category, into a
// lower-scored tag so cross-category evidence surfaces as suggestions.
func (t *ContentTagger) keywordTags(matches []CategoryMatch) []domain.ContentTag {
	tags := make([]domain.ContentTag, 0, len(matches))
	for _, m := range matches {
		confidence := keywordTagBase + m.Score*keywordTagScale
		if confidence > keywordTagCap {
			confidence = keywordTagCap
		}
		tags = append(tags, domain.ContentTag{
			Category:         m.Category,
			Subcategories:    m.Path[1:],
			Keywords:         m.Matched,
			Confidence:       confidence,
			HierarchicalPath: m.Path,
		})
	}
	return tags
}

// mergeTags deduplicates by category plus first subcategory, keeping the
// higher-confidence tag.
func mergeTags(primary, secondary []domain.ContentTag) []domain.ContentTag {
	merged := make([]domain.ContentTag, 0, len(primary)+len(secondary))
	index := make(map[string]int)

	add := func(tag domain.ContentTag) {
		key := string(tag.Category)
		if len(tag.Subcategories) > 0 {
			key += "." + tag.Subcategories[0]
		}
		if at, ok := index[key]; ok {
			if tag.Confidence > merged[at].Confidence {
				merged[at] = tag
			}
			return
		}
		index[key] = len(merged)
		merged = append(merged, tag)
	}

	for _, tag := range primary {
		add(tag)
	}
	for _, tag := range secondary {
		add(tag)
	}
	return merged
}

// partition splits tags at the confidence threshold and computes the
// overall and per-category confidence summary. Below-threshold tags are
// suggested, never dropped.
func partition(tags []domain.ContentTag) *domain.TagResult {
	result := &domain.TagResult{
		Tags:          []domain.ContentTag{},
		SuggestedTags: []domain.ContentTag{},
		Confidence: domain.TagConfidence{
			ByCategory: make(map[domain.ContentCategory]float64),
		},
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Confidence > tags[j].Confidence })
	for _, tag := range tags {
		if tag.Confidence >= TagConfidenceThreshold {
			result.Tags = append(result.Tags, tag)
		} else {
			result.SuggestedTags = append(result.SuggestedTags, tag)
		}
		if tag.Confidence > result.Confidence.ByCategory[tag.Category] {
			result.Confidence.ByCategory[tag.Category] = tag.Confidence
		}
		if tag.Confidence > result.Confidence.Overall {
			result.Confidence.Overall = tag.Confidence
		}
	}
	return result
}

func primaryCategory(result *domain.TagResult, content domain.NormalizedContent) domain.ContentCategory {
	if len(result.Tags) > 0 {
		return result.Tags[0].Category
	}
	if len(result.SuggestedTags) > 0 {
		return result.SuggestedTags[0].Category
	}
	switch content.Kind() {
	case domain.TypeDestination:
		return domain.CategoryDestination
	case domain.TypeActivity:
		return domain.CategoryActivity
	case domain.TypeAccommodation:
		return domain.CategoryAccommodation
	case domain.TypeTransportation:
		return domain.CategoryTransportation
	}
	return domain.CategoryGeneral
}

func contentAttributes(content domain.NormalizedContent) domain.TagAttributes {
	switch c := content.(type) {
	case *domain.Activity:
		return domain.TagAttributes{Duration: c.Duration}
	case *domain.Accommodation:
		if c.PriceRange != nil {
			return domain.TagAttributes{
				PriceRange: fmt.Sprintf("%s %s-%s",
					c.PriceRange.Min.Currency,
					formatAmount(c.PriceRange.Min.Amount),
					formatAmount(c.PriceRange.Max.Amount)),
			}
		}
	}
	return domain.TagAttributes{}
}

func formatAmount(amount float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}

func applyGeoBonus(confidence float64, hasGeo bool) float64 {
	if hasGeo {
		confidence += geoEntityBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func limitStrings(values []string, limit int) []string {
	values = unique(values)
	if len(values) > limit {
		values = values[:limit]
	}
	return values
}
