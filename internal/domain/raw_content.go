package domain

import "time"

// RawContentType identifies the extraction source format of a raw item.
type RawContentType string

// Supported raw content types.
const (
	RawContentHTML     RawContentType = "html"
	RawContentPDFText  RawContentType = "pdf_text"
	RawContentDocxText RawContentType = "docx_text"
)

// RawContent represents loosely-structured travel content as handed over by
// the scraper and document-parser subsystems. It is read-only input: the
// pipeline never mutates it.
type RawContent struct {
	ID            string         `json:"id"`
	SourceURL     string         `json:"sourceUrl,omitempty"`
	FilePath      string         `json:"filePath,omitempty"`
	ContentType   RawContentType `json:"contentType"`
	RawText       string         `json:"rawText"`
	Metadata      Metadata       `json:"metadata"`
	ExtractedDate time.Time      `json:"extractedDate"`
}

// Source returns the provenance of the item: the source URL for scraped
// content, the file path for parsed documents.
func (r RawContent) Source() string {
	if r.SourceURL != "" {
		return r.SourceURL
	}
	return r.FilePath
}

// Metadata is the typed, partial record of extractor-provided hints.
// Only the enumerated keys below are recognized; anything else the extractor
// produced is dropped before the pipeline sees it, keeping transformer logic
// auditable.
type Metadata struct {
	ContentType       string       `json:"contentType,omitempty"`
	Title             string       `json:"title,omitempty"`
	Description       string       `json:"description,omitempty"`
	Price             string       `json:"price,omitempty"`
	Duration          string       `json:"duration,omitempty"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	Images            []string     `json:"images,omitempty"`
	Country           string       `json:"country,omitempty"`
	AccommodationType string       `json:"accommodationType,omitempty"`
	Rating            *float64     `json:"rating,omitempty"`
	Amenities         []string     `json:"amenities,omitempty"`
	Keywords          []string     `json:"keywords,omitempty"`
	BookingURL        string       `json:"bookingUrl,omitempty"`
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
