package tagging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
)

func newTestTagger() *ContentTagger {
	return NewContentTagger(nil, logger.NewNop())
}

func TestTag_ScubaDivingActivity(t *testing.T) {
	tagger := newTestTagger()

	activity := &domain.Activity{
		Base:        domain.Base{ID: "a-1", Confidence: 0.7},
		Name:        "Scuba Diving Experience",
		Description: "Explore the coral reef with certified instructors. Diving gear included.",
	}
	result := tagger.Tag(context.Background(), activity)

	assert.Equal(t, domain.CategoryActivity, result.PrimaryCategory)
	require.NotEmpty(t, result.Tags)
	best := result.Tags[0]
	assert.Equal(t, []string{"activity", "outdoor_adventure", "water_sports"}, best.HierarchicalPath)
	assert.GreaterOrEqual(t, best.Confidence, 0.6)
}

func TestTag_AccommodationExactTypeShortCircuit(t *testing.T) {
	tagger := newTestTagger()

	acc := &domain.Accommodation{
		Base:    domain.Base{ID: "h-1", Confidence: 0.6},
		Name:    "Riverside Bunkhouse",
		Type:    "hostel",
		Address: domain.Address{City: "Porto", Country: "PT"},
	}
	result := tagger.Tag(context.Background(), acc)

	assert.Equal(t, domain.CategoryAccommodation, result.PrimaryCategory)
	require.NotEmpty(t, result.Tags)
	best := result.Tags[0]
	assert.Equal(t, []string{"accommodation", "hostel"}, best.HierarchicalPath)
	assert.InDelta(t, 0.9, best.Confidence, 0.001)
}

func TestTag_DestinationGetsGeoBonus(t *testing.T) {
	tagger := newTestTagger()

	dest := &domain.Destination{
		Base:        domain.Base{ID: "d-1", Confidence: 0.8},
		Name:        "Paris",
		Description: "Visit the capital city and its museums.",
		Country:     "FR",
	}
	result := tagger.Tag(context.Background(), dest)

	assert.Equal(t, domain.CategoryDestination, result.PrimaryCategory)
	require.NotEmpty(t, result.Tags)
	assert.GreaterOrEqual(t, result.Tags[0].Confidence, 0.8)
}

func TestTag_GenericGetsLowConfidenceSuggestion(t *testing.T) {
	tagger := newTestTagger()

	generic := &domain.Generic{
		Base:  domain.Base{ID: "g-1"},
		Title: "Note",
		Text:  "Remember the charger.",
	}
	result := tagger.Tag(context.Background(), generic)

	assert.Empty(t, result.Tags)
	require.NotEmpty(t, result.SuggestedTags)
	assert.Equal(t, domain.CategoryGeneral, result.SuggestedTags[0].Category)
	assert.Equal(t, domain.CategoryGeneral, result.PrimaryCategory)

	// Sparse evidence defaults the content confidence.
	assert.InDelta(t, 0.5, generic.Confidence, 0.001)
}

func TestTag_AcceptedTagsAttachedToContent(t *testing.T) {
	tagger := newTestTagger()

	activity := &domain.Activity{
		Base:        domain.Base{ID: "a-2", Confidence: 0.7},
		Name:        "Mont Blanc Trek",
		Description: "A guided hiking and trekking trail adventure in the mountains.",
	}
	result := tagger.Tag(context.Background(), activity)

	require.NotEmpty(t, result.Tags)
	assert.Contains(t, activity.Tags, "activity.outdoor_adventure.hiking")
}

func TestTag_ConfidenceSummary(t *testing.T) {
	tagger := newTestTagger()

	activity := &domain.Activity{
		Base:        domain.Base{ID: "a-3", Confidence: 0.7},
		Name:        "Kayaking Tour",
		Description: "Kayaking and rafting excursion with sailing options.",
	}
	result := tagger.Tag(context.Background(), activity)

	require.NotEmpty(t, result.Tags)
	assert.Greater(t, result.Confidence.Overall, 0.0)
	assert.Equal(t, result.Tags[0].Confidence, result.Confidence.Overall)
	assert.NotEmpty(t, result.Confidence.ByCategory)
}

func TestMergeTags_KeepsHigherConfidence(t *testing.T) {
	low := domain.ContentTag{Category: domain.CategoryActivity, Subcategories: []string{"outdoor_adventure"}, Confidence: 0.4}
	high := domain.ContentTag{Category: domain.CategoryActivity, Subcategories: []string{"outdoor_adventure"}, Confidence: 0.8}

	merged := mergeTags([]domain.ContentTag{low}, []domain.ContentTag{high})
	require.Len(t, merged, 1)
	assert.InDelta(t, 0.8, merged[0].Confidence, 0.001)
}
