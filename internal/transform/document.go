package transform

import (
	"regexp"
	"strings"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
)

// DocumentTransformer normalizes text extracted from PDF and Word
// documents. Extractors insert hard line breaks mid-sentence and hyphenate
// across lines, so the text is reflowed before extraction.
type DocumentTransformer struct {
	builder
}

// NewDocumentTransformer returns a transformer for PDF and DOCX text.
func NewDocumentTransformer(recognizer *normalize.EntityRecognizer, log logger.Logger) *DocumentTransformer {
	return &DocumentTransformer{builder: newBuilder(recognizer, log)}
}

// Supports reports whether the content type is extracted document text.
func (t *DocumentTransformer) Supports(contentType domain.RawContentType) bool {
	return contentType == domain.RawContentPDFText || contentType == domain.RawContentDocxText
}

// Transform converts extracted document text into a normalized record, or
// returns nil when the content type is not document text.
func (t *DocumentTransformer) Transform(raw domain.RawContent) (domain.NormalizedContent, error) {
	if !t.Supports(raw.ContentType) {
		return nil, nil
	}

	text := reflowDocumentText(raw.RawText)
	kind := t.detectContentType(raw)
	content := t.build(kind, raw, text)

	t.log.Debug("transformed document content",
		logger.String("id", content.Common().ID),
		logger.String("source", raw.Source()),
		logger.String("type", string(kind)),
		logger.Float64("confidence", content.Common().Confidence))
	return content, nil
}

var (
	hyphenBreakPattern = regexp.MustCompile(`(\p{L})-\n(\p{L})`)
	softBreakPattern   = regexp.MustCompile(`([^\n.!?:;])\n([^\n])`)
	spaceRunPattern    = regexp.MustCompile(`[ \t]{2,}`)
)

// reflowDocumentText rejoins words hyphenated across line breaks and folds
// single line breaks inside sentences back into spaces. Paragraph breaks
// (blank lines) and breaks after sentence punctuation are preserved so the
// day-plan and operating-hours extractors still see line structure.
func reflowDocumentText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hyphenBreakPattern.ReplaceAllString(text, "$1$2")
	text = softBreakPattern.ReplaceAllString(text, "$1 $2")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
