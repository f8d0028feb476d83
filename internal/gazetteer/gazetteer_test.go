package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_IsLocation(t *testing.T) {
	g := NewStatic()

	tests := []struct {
		term string
		want bool
	}{
		{"Paris", true},
		{"sao paulo", true},
		{"São Paulo", true},
		{"SÃO PAULO", true},
		{"Zurich", true},
		{"Zürich", true},
		{"The Netherlands", true},
		{"Narnia", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsLocation(tt.term))
		})
	}
}

func TestStatic_IsActivityType(t *testing.T) {
	g := NewStatic()

	assert.True(t, g.IsActivityType("scuba diving"))
	assert.True(t, g.IsActivityType("Hiking"))
	assert.False(t, g.IsActivityType("procrastinating"))
	assert.False(t, g.IsActivityType(""))
}

func TestStatic_IsAmenity(t *testing.T) {
	g := NewStatic()

	assert.True(t, g.IsAmenity("free wifi"))
	assert.True(t, g.IsAmenity("Swimming Pool"))
	assert.False(t, g.IsAmenity("moat"))
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"France", "FR"},
		{"france", "FR"},
		{"United Kingdom", "GB"},
		{"USA", "US"},
		{"fr", "FR"},
		{"FR", "FR"},
		{"ZZ", ""},
		{"Atlantis", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountryCode(tt.name), "input %q", tt.name)
	}
}

func TestIsCountryCode(t *testing.T) {
	assert.True(t, IsCountryCode("FR"))
	assert.True(t, IsCountryCode("jp"))
	assert.False(t, IsCountryCode("ZZ"))
	assert.False(t, IsCountryCode("FRA"))
	assert.False(t, IsCountryCode(""))
}
