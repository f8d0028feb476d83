package transform

import (
	"regexp"
	"strings"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
)

// WebTransformer normalizes content scraped from web pages. Scraper output
// is mostly plain text but often carries residual markup and entity
// escapes, which are stripped before extraction.
type WebTransformer struct {
	builder
}

// NewWebTransformer returns a transformer for HTML-sourced content.
func NewWebTransformer(recognizer *normalize.EntityRecognizer, log logger.Logger) *WebTransformer {
	return &WebTransformer{builder: newBuilder(recognizer, log)}
}

// Supports reports whether the content type is HTML.
func (t *WebTransformer) Supports(contentType domain.RawContentType) bool {
	return contentType == domain.RawContentHTML
}

// Transform converts scraped web content into a normalized record, or
// returns nil when the content type is not HTML.
func (t *WebTransformer) Transform(raw domain.RawContent) (domain.NormalizedContent, error) {
	if !t.Supports(raw.ContentType) {
		return nil, nil
	}

	text := cleanWebText(raw.RawText)
	kind := t.detectContentType(raw)
	content := t.build(kind, raw, text)

	t.log.Debug("transformed web content",
		logger.String("id", content.Common().ID),
		logger.String("source", raw.Source()),
		logger.String("type", string(kind)),
		logger.Float64("confidence", content.Common().Confidence))
	return content, nil
}

var (
	residualTagPattern = regexp.MustCompile(`<[^>]*>`)
	whitespaceRuns     = regexp.MustCompile(`[ \t]+`)
	blankLineRuns      = regexp.MustCompile(`\n{3,}`)
)

var htmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// cleanWebText strips residual markup and entity escapes left behind by
// upstream scrapers and collapses whitespace runs.
func cleanWebText(text string) string {
	text = residualTagPattern.ReplaceAllString(text, " ")
	text = htmlEntities.Replace(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
