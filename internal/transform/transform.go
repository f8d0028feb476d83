// Package transform turns raw scraped or parsed travel content into typed
// normalized records. Each transformer handles one family of raw content
// types and returns nil (not an error) for anything it does not support.
package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
)

// Transformer converts one raw item into one normalized record.
type Transformer interface {
	// Transform returns the normalized content, or nil when the raw
	// content type is not supported by this transformer.
	Transform(raw domain.RawContent) (domain.NormalizedContent, error)
	// Supports reports whether the transformer handles the content type.
	Supports(contentType domain.RawContentType) bool
}

// Content-type detection thresholds and defaults.
const (
	defaultCurrency    = "USD"
	maxDescriptionLen  = 500
	maxTitleLen        = 120
	sparseConfidence   = 0.5
	importantFieldsLen = 6
)

// builder holds the normalizers shared by the concrete transformers and
// implements the variant construction they have in common.
type builder struct {
	dates    *normalize.DateNormalizer
	prices   *normalize.PriceNormalizer
	entities *normalize.EntityRecognizer
	log      logger.Logger
}

func newBuilder(recognizer *normalize.EntityRecognizer, log logger.Logger) builder {
	return builder{
		dates:    normalize.NewDateNormalizer(),
		prices:   normalize.NewPriceNormalizer(),
		entities: recognizer,
		log:      log,
	}
}

// detectContentType infers the target variant: explicit metadata hints win,
// then text heuristics, then metadata shape, then generic.
func (b builder) detectContentType(raw domain.RawContent) domain.NormalizedType {
	if hint := strings.ToLower(strings.TrimSpace(raw.Metadata.ContentType)); hint != "" {
		switch domain.NormalizedType(hint) {
		case domain.TypeDestination, domain.TypeActivity, domain.TypeAccommodation,
			domain.TypeTransportation, domain.TypeItinerary, domain.TypeGeneric:
			return domain.NormalizedType(hint)
		}
	}

	text := strings.ToLower(raw.RawText)
	switch {
	case strings.Contains(text, "check-in") && strings.Contains(text, "check-out"),
		strings.Contains(text, "check in") && strings.Contains(text, "check out"):
		return domain.TypeAccommodation
	case strings.Contains(text, "duration") && strings.Contains(text, "book now"):
		return domain.TypeActivity
	case strings.Contains(text, "day 1") && strings.Contains(text, "day 2"):
		return domain.TypeItinerary
	case raw.Metadata.Coordinates != nil || raw.Metadata.Country != "":
		return domain.TypeDestination
	}
	return domain.TypeGeneric
}

// build constructs the variant for the detected type by merging metadata
// fields, recognizer output, and field-specific extraction.
func (b builder) build(kind domain.NormalizedType, raw domain.RawContent, text string) domain.NormalizedContent {
	base := domain.Base{
		ID:                  uuid.NewString(),
		Source:              raw.Source(),
		OriginalContentType: raw.ContentType,
		ExtractionDate:      raw.ExtractedDate,
		ProcessingDate:      time.Now().UTC(),
		Tags:                metadataTags(raw.Metadata.Keywords),
	}
	found := b.entities.ExtractEntities(text)

	var content domain.NormalizedContent
	switch kind {
	case domain.TypeDestination:
		content = b.buildDestination(base, raw, text, found)
	case domain.TypeActivity:
		content = b.buildActivity(base, raw, text, found)
	case domain.TypeAccommodation:
		content = b.buildAccommodation(base, raw, text, found)
	case domain.TypeTransportation:
		content = b.buildTransportation(base, raw, text, found)
	case domain.TypeItinerary:
		content = b.buildItinerary(base, raw, text)
	case domain.TypeGeneric:
		content = b.buildGeneric(base, raw, text)
	default:
		content = b.buildGeneric(base, raw, text)
	}

	content.Common().Confidence = b.scoreCompleteness(content)
	return content
}

func (b builder) buildDestination(base domain.Base, raw domain.RawContent, text string, found normalize.Entities) *domain.Destination {
	name := firstNonEmpty(raw.Metadata.Title, firstOrEmpty(found.Locations), titleFromText(text))

	country := "Unknown"
	if code := gazetteer.CountryCode(raw.Metadata.Country); code != "" {
		country = code
	} else {
		for _, loc := range found.Locations {
			if code := gazetteer.CountryCode(loc); code != "" {
				country = code
				break
			}
		}
	}

	dest := &domain.Destination{
		Base:        base,
		Name:        name,
		Description: description(raw.Metadata.Description, text),
		Country:     country,
		Coordinates: raw.Metadata.Coordinates,
	}
	if addr := firstOrEmpty(found.Addresses); addr != "" {
		dest.Address = &domain.Address{Street: addr, Country: country}
	}
	return dest
}

func (b builder) buildActivity(base domain.Base, raw domain.RawContent, text string, found normalize.Entities) *domain.Activity {
	activity := &domain.Activity{
		Base:         base,
		Name:         firstNonEmpty(raw.Metadata.Title, titleFromText(text)),
		Description:  description(raw.Metadata.Description, text),
		ActivityType: firstOrEmpty(found.ActivityTypes),
		Price:        b.extractPrice(raw, text),
		Duration:     b.extractDuration(raw, text),
		Rating:       b.extractRating(raw, text),
	}
	activity.OperatingHours = extractOperatingHours(text)
	return activity
}

func (b builder) buildAccommodation(base domain.Base, raw domain.RawContent, text string, found normalize.Entities) *domain.Accommodation {
	country := gazetteer.CountryCode(raw.Metadata.Country)
	if country == "" {
		for _, loc := range found.Locations {
			if code := gazetteer.CountryCode(loc); code != "" {
				country = code
				break
			}
		}
	}
	if country == "" {
		country = "Unknown"
	}

	amenities := raw.Metadata.Amenities
	if len(amenities) == 0 {
		amenities = found.Amenities
	}

	acc := &domain.Accommodation{
		Base:        base,
		Name:        firstNonEmpty(raw.Metadata.Title, titleFromText(text)),
		Type:        strings.ToLower(strings.TrimSpace(raw.Metadata.AccommodationType)),
		Description: description(raw.Metadata.Description, text),
		Address: domain.Address{
			Street:  firstOrEmpty(found.Addresses),
			City:    firstOrEmpty(found.Locations),
			Country: country,
		},
		PriceRange:   b.prices.ExtractPriceRange(text, defaultCurrency, ""),
		CheckInTime:  b.extractClockTime(checkInPattern, text),
		CheckOutTime: b.extractClockTime(checkOutPattern, text),
		Amenities:    amenities,
	}
	return acc
}

var transportModeWords = []struct {
	word string
	mode domain.TransportMode
}{
	{"flight", domain.ModeFlight},
	{"fly", domain.ModeFlight},
	{"airline", domain.ModeFlight},
	{"train", domain.ModeTrain},
	{"rail", domain.ModeTrain},
	{"bus", domain.ModeBus},
	{"coach", domain.ModeBus},
	{"car rental", domain.ModeCarRental},
	{"rental car", domain.ModeCarRental},
	{"taxi", domain.ModeTaxi},
	{"ferry", domain.ModeFerry},
	{"walk", domain.ModeWalk},
}

var fromToPattern = regexp.MustCompile(`(?i)\bfrom\s+([A-Z][a-zà-ÿ]+(?: [A-Z][a-zà-ÿ]+)?)\s+to\s+([A-Z][a-zà-ÿ]+(?: [A-Z][a-zà-ÿ]+)?)`)

func (b builder) buildTransportation(base domain.Base, raw domain.RawContent, text string, found normalize.Entities) *domain.Transportation {
	lower := strings.ToLower(text)
	mode := domain.ModeOther
	for _, candidate := range transportModeWords {
		if strings.Contains(lower, candidate.word) {
			mode = candidate.mode
			break
		}
	}

	transport := &domain.Transportation{
		Base:  base,
		Mode:  mode,
		Price: b.extractPrice(raw, text),
	}

	if m := fromToPattern.FindStringSubmatch(text); m != nil {
		transport.Departure = domain.TransportStop{Location: m[1]}
		transport.Arrival = domain.TransportStop{Location: m[2]}
	} else if len(found.Locations) >= 2 {
		transport.Departure = domain.TransportStop{Location: found.Locations[0]}
		transport.Arrival = domain.TransportStop{Location: found.Locations[1]}
	}
	return transport
}

var dayPlanPattern = regexp.MustCompile(`(?i)\bday\s+(\d+)\b[:.]?\s*`)

func (b builder) buildItinerary(base domain.Base, raw domain.RawContent, text string) *domain.Itinerary {
	itinerary := &domain.Itinerary{
		Base:  base,
		Title: firstNonEmpty(raw.Metadata.Title, titleFromText(text)),
	}

	markers := dayPlanPattern.FindAllStringSubmatchIndex(text, -1)
	for i, marker := range markers {
		day, err := strconv.Atoi(text[marker[2]:marker[3]])
		if err != nil || day < 1 {
			continue
		}
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		segment := strings.TrimSpace(text[marker[1]:end])
		items := splitPlanItems(segment)
		if len(items) > 0 {
			itinerary.DailyPlans = append(itinerary.DailyPlans, domain.DailyPlan{Day: day, Items: items})
		}
	}

	if ranges := b.dates.ExtractDateRanges(text, ""); len(ranges) > 0 {
		itinerary.StartDate = ranges[0].Start
		itinerary.EndDate = ranges[0].End
	}
	return itinerary
}

func (b builder) buildGeneric(base domain.Base, raw domain.RawContent, text string) *domain.Generic {
	return &domain.Generic{
		Base:  base,
		Title: firstNonEmpty(raw.Metadata.Title, titleFromText(text)),
		Text:  text,
	}
}

// priceTextPattern finds a price-looking snippet to hand to the price
// normalizer, including a trailing qualifier when present.
var priceTextPattern = regexp.MustCompile(`(?i)(?:[\$€£¥]\s?\d[\d.,]*|\d[\d.,]*\s?(?:[\$€£¥]|[A-Z]{3}\b))(?:\s*(?:per person|pp|per group|total))?`)

func (b builder) extractPrice(raw domain.RawContent, text string) *domain.Price {
	if raw.Metadata.Price != "" {
		if price := b.prices.NormalizePrice(raw.Metadata.Price, defaultCurrency, ""); price != nil {
			return price
		}
	}
	if snippet := priceTextPattern.FindString(text); snippet != "" {
		return b.prices.NormalizePrice(snippet, defaultCurrency, "")
	}
	return nil
}

var durationTextPattern = regexp.MustCompile(`(?i)(?:half[- ]day|full[- ]day|all day|\d+(?:\.\d+)?\s*(?:hours?|hrs?|minutes?|mins?|days?))`)

// extractDuration returns a canonical "NUMBER unit" duration string, the
// shape downstream validation expects.
func (b builder) extractDuration(raw domain.RawContent, text string) string {
	candidates := []string{raw.Metadata.Duration}
	if snippet := durationTextPattern.FindString(text); snippet != "" {
		candidates = append(candidates, snippet)
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if d := b.dates.NormalizeDuration(candidate); d != nil {
			value, unit := d.Value, d.Unit
			// Weeks fold into days, the largest unit the duration shape
			// carries.
			if unit == "weeks" {
				value *= 7
				unit = "days"
			}
			return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), unit)
		}
	}
	return ""
}

var ratingPattern = regexp.MustCompile(`(?i)(?:rated|rating[: ]*)?(\d(?:\.\d)?)\s*(?:/|out of)\s*5`)

func (b builder) extractRating(raw domain.RawContent, text string) *float64 {
	if raw.Metadata.Rating != nil {
		return raw.Metadata.Rating
	}
	if m := ratingPattern.FindStringSubmatch(text); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil && value >= 0 && value <= 5 {
			return &value
		}
	}
	return nil
}

var (
	checkInPattern  = regexp.MustCompile(`(?i)check[- ]?in[:\s]+(?:from\s+|after\s+)?(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
	checkOutPattern = regexp.MustCompile(`(?i)check[- ]?out[:\s]+(?:by\s+|before\s+|until\s+)?(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
)

func (b builder) extractClockTime(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return b.dates.NormalizeTime(m[1])
}

var operatingHoursPattern = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)(?:\s*(?:-|to|–)\s*(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))?[:\s]+\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*(?:-|to|–)\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)?`)

func extractOperatingHours(text string) []string {
	matches := operatingHoursPattern.FindAllString(text, -1)
	hours := make([]string, 0, len(matches))
	for _, m := range matches {
		hours = append(hours, strings.TrimSpace(m))
	}
	return hours
}

// scoreCompleteness computes confidence as the populated fraction of the
// fixed important-field checklist: title, description, price, rating,
// address, coordinates. A completeness proxy, not a learned score.
func (b builder) scoreCompleteness(content domain.NormalizedContent) float64 {
	var title, desc, price, rating, address, coords bool

	switch v := content.(type) {
	case *domain.Destination:
		title = v.Name != ""
		desc = v.Description != ""
		address = v.Address != nil
		coords = v.Coordinates != nil
	case *domain.Activity:
		title = v.Name != ""
		desc = v.Description != ""
		price = v.Price != nil
		rating = v.Rating != nil
	case *domain.Accommodation:
		title = v.Name != ""
		desc = v.Description != ""
		price = v.PriceRange != nil
		address = v.Address.Country != "" && v.Address.Country != "Unknown"
	case *domain.Transportation:
		title = v.Departure.Location != "" && v.Arrival.Location != ""
		price = v.Price != nil
		address = v.Provider != ""
	case *domain.Itinerary:
		title = v.Title != ""
		desc = len(v.DailyPlans) > 0
	case *domain.Generic:
		title = v.Title != ""
		desc = v.Text != ""
	}

	populated := 0
	for _, ok := range []bool{title, desc, price, rating, address, coords} {
		if ok {
			populated++
		}
	}
	confidence := float64(populated) / importantFieldsLen
	if confidence < sparseConfidence {
		// Sparse evidence floors at the default confidence.
		return sparseConfidence
	}
	return confidence
}

// metadataTags lowercases extractor-provided keywords into initial tags.
// The tagger appends its own category paths later.
func metadataTags(keywords []string) []string {
	var tags []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			tags = append(tags, kw)
		}
	}
	return tags
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// titleFromText falls back to the first sentence or line of the text.
func titleFromText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if idx := strings.IndexAny(text, "\n.!?"); idx > 0 {
		text = text[:idx]
	}
	if len(text) > maxTitleLen {
		text = text[:maxTitleLen]
	}
	return strings.TrimSpace(text)
}

// description prefers the metadata description, falling back to a prefix
// of the raw text.
func description(metaDescription, text string) string {
	if metaDescription != "" {
		return metaDescription
	}
	text = strings.TrimSpace(text)
	if len(text) > maxDescriptionLen {
		return text[:maxDescriptionLen]
	}
	return text
}

var planItemSeparator = regexp.MustCompile(`[\n;•]+|\.\s+`)

func splitPlanItems(segment string) []string {
	parts := planItemSeparator.Split(segment, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.Trim(part, ".-– "))
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
