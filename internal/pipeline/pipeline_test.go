package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/dedup"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/transform"
)

func newTestPipeline(opts Options) *Pipeline {
	log := logger.NewNop()
	recognizer := normalize.NewEntityRecognizer(gazetteer.NewStatic())
	transformers := []transform.Transformer{
		transform.NewWebTransformer(recognizer, log),
		transform.NewDocumentTransformer(recognizer, log),
	}
	var deduplicator *dedup.Deduplicator
	if opts.EnableDeduplication {
		deduplicator = dedup.New(opts.DeduplicationThreshold, log)
	}
	return New(transformers, deduplicator, opts, nil, log)
}

func htmlItem(id, title, text string) domain.RawContent {
	return domain.RawContent{
		ID:          id,
		SourceURL:   "https://example.com/" + id,
		ContentType: domain.RawContentHTML,
		RawText:     text,
		Metadata:    domain.Metadata{Title: title},
	}
}

func TestNormalize_SingleItem(t *testing.T) {
	p := newTestPipeline(Options{ValidateOutput: false})

	result := p.Normalize(context.Background(), htmlItem("r1", "Packing tips",
		"Packing tips for long trips. Roll your clothes to save space."))

	require.Len(t, result.Content, 1)
	assert.Empty(t, result.Errors)
	assert.Zero(t, result.DuplicatesRemoved)
	assert.NotEmpty(t, result.Content[0].Common().ID)
}

func TestNormalize_UnsupportedContentType(t *testing.T) {
	p := newTestPipeline(Options{})

	result := p.Normalize(context.Background(), domain.RawContent{
		ID:          "r2",
		ContentType: domain.RawContentType("spreadsheet"),
		RawText:     "irrelevant",
	})

	assert.Empty(t, result.Content)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "r2")
	assert.Contains(t, result.Errors[0], "unsupported content type")
}

func TestNormalize_DuplicateCountedNotErrored(t *testing.T) {
	p := newTestPipeline(Options{EnableDeduplication: true, DeduplicationThreshold: 0.8})
	ctx := context.Background()
	text := "The Louvre is the world's largest art museum and a historic monument in Paris."

	first := p.Normalize(ctx, htmlItem("r3", "Louvre", text))
	require.Len(t, first.Content, 1)
	assert.Zero(t, first.DuplicatesRemoved)

	second := p.Normalize(ctx, htmlItem("r4", "Louvre", text))
	assert.Empty(t, second.Content)
	assert.Empty(t, second.Errors)
	assert.Equal(t, 1, second.DuplicatesRemoved)
}

func TestNormalize_ValidationAdvisory(t *testing.T) {
	p := newTestPipeline(Options{ValidateOutput: true})

	result := p.Normalize(context.Background(), domain.RawContent{
		ID:          "r5",
		ContentType: domain.RawContentHTML,
		RawText:     "A remote island far from everything.",
		Metadata: domain.Metadata{
			Title:       "Remote Island",
			Country:     "France",
			Coordinates: &domain.Coordinates{Lat: 91, Lng: 10},
		},
	})

	// Content is still returned; the coordinate failure is advisory.
	require.Len(t, result.Content, 1)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "coordinates.lat")
}

func TestNormalizeBatch_OrderAndCompleteness(t *testing.T) {
	p := newTestPipeline(Options{BatchSize: 2, Concurrency: 2})
	items := []domain.RawContent{
		htmlItem("a", "Alpha", "First article about travel gear."),
		htmlItem("b", "Bravo", "Second article about visa rules."),
		htmlItem("c", "Charlie", "Third article about street food."),
		htmlItem("d", "Delta", "Fourth article about night trains."),
	}

	result := p.NormalizeBatch(context.Background(), items)

	require.Len(t, result.Content, 4)
	titles := make([]string, 0, len(result.Content))
	for _, content := range result.Content {
		generic, ok := content.(*domain.Generic)
		require.True(t, ok)
		titles = append(titles, generic.Title)
	}
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta"}, titles)
}

func TestNormalizeBatch_Empty(t *testing.T) {
	p := newTestPipeline(Options{})
	result := p.NormalizeBatch(context.Background(), nil)
	assert.Empty(t, result.Content)
	assert.Empty(t, result.Errors)
}

func TestStats(t *testing.T) {
	p := newTestPipeline(Options{EnableDeduplication: true})
	ctx := context.Background()
	text := "Sagrada Familia is a large unfinished basilica in Barcelona designed by Gaudi."

	p.Normalize(ctx, htmlItem("s1", "Sagrada", text))
	p.Normalize(ctx, htmlItem("s2", "Sagrada", text))
	p.Normalize(ctx, domain.RawContent{ID: "s3", ContentType: "bogus"})

	stats := p.Stats()
	assert.Equal(t, int64(3), stats.ItemsProcessed)
	assert.Equal(t, int64(1), stats.ItemsNormalized)
	assert.Equal(t, int64(1), stats.DuplicatesRemoved)
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, 1, stats.DedupIndexSize)
}

func TestContentByType(t *testing.T) {
	result := &Result{Content: []domain.NormalizedContent{
		&domain.Generic{Base: domain.Base{ID: "g"}, Title: "note"},
		&domain.Activity{Base: domain.Base{ID: "a"}, Name: "tour"},
		&domain.Destination{Base: domain.Base{ID: "d"}, Name: "city", Country: "FR"},
	}}

	groups := ContentByType(result)
	assert.Len(t, groups.Generic, 1)
	assert.Len(t, groups.Activities, 1)
	assert.Len(t, groups.Destinations, 1)
	assert.Empty(t, groups.Accommodations)
}
