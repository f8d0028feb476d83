package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
)

func TestEntityTagger_StructuredFields(t *testing.T) {
	e := NewEntityTagger()

	entities := e.Extract(&domain.Destination{
		Base:    domain.Base{ID: "d-1"},
		Name:    "Lisbon",
		Country: "PT",
		Region:  "Estremadura",
	})

	assert.Contains(t, entities.Locations, "Lisbon")
	assert.Contains(t, entities.Locations, "PT")
	assert.Contains(t, entities.Locations, "Estremadura")
}

func TestEntityTagger_FreeTextPatterns(t *testing.T) {
	e := NewEntityTagger()

	entities := e.Extract(&domain.Generic{
		Base:  domain.Base{ID: "g-1"},
		Title: "A day in Paris",
		Text: "We flew with Delta Airlines and visited the Eiffel Tower on May 15, 2024. " +
			"Tickets booked for 2024-05-15 in Paris.",
	})

	assert.Contains(t, entities.Locations, "Paris")
	assert.Contains(t, entities.Attractions, "Eiffel Tower")
	assert.Contains(t, entities.Organizations, "Delta Airlines")
	assert.Contains(t, entities.Dates, "May 15, 2024")
	assert.Contains(t, entities.Dates, "2024-05-15")
}

func TestEntityTagger_Deduplicates(t *testing.T) {
	e := NewEntityTagger()

	entities := e.Extract(&domain.Generic{
		Base:  domain.Base{ID: "g-2"},
		Title: "Paris again",
		Text:  "We stayed in Paris. Then we returned to Paris.",
	})

	count := 0
	for _, loc := range entities.Locations {
		if loc == "Paris" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEntityTagger_TransportationProvider(t *testing.T) {
	e := NewEntityTagger()

	entities := e.Extract(&domain.Transportation{
		Base:      domain.Base{ID: "t-1"},
		Mode:      domain.ModeTrain,
		Departure: domain.TransportStop{Location: "Vienna"},
		Arrival:   domain.TransportStop{Location: "Budapest"},
		Provider:  "OBB",
	})

	assert.Contains(t, entities.Locations, "Vienna")
	assert.Contains(t, entities.Locations, "Budapest")
	assert.Contains(t, entities.Organizations, "OBB")
}
