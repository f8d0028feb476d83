package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
)

func TestEntityRecognizer_ExtractEntities_Locations(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Spend three days in Paris before taking the train to Barcelona. Skip Blorwick entirely.")

	assert.Equal(t, []string{"Paris", "Barcelona"}, entities.Locations)
}

func TestEntityRecognizer_ExtractEntities_MultiWordLocations(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Flights from New York to Hong Kong run daily.")

	assert.Contains(t, entities.Locations, "New York")
	assert.Contains(t, entities.Locations, "Hong Kong")
}

func TestEntityRecognizer_ExtractEntities_ActivityTypes(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Enjoy hiking in the morning and snorkeling in the afternoon, or book a wine tasting.")

	assert.Contains(t, entities.ActivityTypes, "hiking")
	assert.Contains(t, entities.ActivityTypes, "snorkeling")
	assert.Contains(t, entities.ActivityTypes, "wine tasting")
}

func TestEntityRecognizer_ExtractEntities_Amenities(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Rooms include free wifi, a swimming pool, and air conditioning.")

	assert.Contains(t, entities.Amenities, "free wifi")
	assert.Contains(t, entities.Amenities, "swimming pool")
	assert.Contains(t, entities.Amenities, "air conditioning")
}

func TestEntityRecognizer_ExtractEntities_Addresses(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Located at 221 Baker Street near the park.")

	assert.Contains(t, entities.Addresses, "221 Baker Street")
}

func TestEntityRecognizer_ExtractEntities_Deduplicates(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("Paris, Paris, and Paris again. Hiking and more hiking.")

	assert.Equal(t, []string{"Paris"}, entities.Locations)
	assert.Equal(t, []string{"hiking"}, entities.ActivityTypes)
}

func TestEntityRecognizer_ExtractEntities_Empty(t *testing.T) {
	r := NewEntityRecognizer(gazetteer.NewStatic())

	entities := r.ExtractEntities("")

	assert.Empty(t, entities.Locations)
	assert.Empty(t, entities.ActivityTypes)
	assert.Empty(t, entities.Amenities)
	assert.Empty(t, entities.Addresses)
}
