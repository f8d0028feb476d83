package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDateNormalizer_NormalizeDate_ISOIdempotence(t *testing.T) {
	n := NewDateNormalizer()

	inputs := []string{
		"2024-05-15",
		"2024-05-15T00:00:00Z",
		"2024-12-31T23:59:59Z",
	}

	for _, input := range inputs {
		if got := n.NormalizeDate(input, "en", reference); got != input {
			t.Errorf("NormalizeDate(%q): got %q, want input unchanged", input, got)
		}
	}
}

func TestDateNormalizer_NormalizeDate_Relative(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"today", "today", "2024-01-01T00:00:00Z"},
		{"tomorrow", "tomorrow", "2024-01-02T00:00:00Z"},
		{"yesterday", "yesterday", "2023-12-31T00:00:00Z"},
		{"in N days", "in 3 days", "2024-01-04T00:00:00Z"},
		{"in N weeks", "in 2 weeks", "2024-01-15T00:00:00Z"},
		{"in N months", "in 1 month", "2024-02-01T00:00:00Z"},
		{"N days ago", "5 days ago", "2023-12-27T00:00:00Z"},
		{"next week", "next week", "2024-01-08T00:00:00Z"},
		{"last week", "last week", "2023-12-25T00:00:00Z"},
		// Reference is a Monday; the next Friday is Jan 5.
		{"next weekday", "next friday", "2024-01-05T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeDate(tt.text, "en", reference))
		})
	}
}

func TestDateNormalizer_NormalizeDate_Absolute(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		name   string
		text   string
		locale string
		want   string
	}{
		{"month first", "March 15, 2024", "en", "2024-03-15T00:00:00Z"},
		{"day first", "15 March 2024", "en", "2024-03-15T00:00:00Z"},
		{"lowercase month", "15 march 2024", "en", "2024-03-15T00:00:00Z"},
		{"abbreviated", "Mar 15, 2024", "en", "2024-03-15T00:00:00Z"},
		{"slash us", "03/15/2024", "en-US", "2024-03-15T00:00:00Z"},
		{"slash european", "15/03/2024", "en-GB", "2024-03-15T00:00:00Z"},
		{"dotted", "15.03.2024", "de", "2024-03-15T00:00:00Z"},
		{"french month", "15 mars 2024", "fr", "2024-03-15T00:00:00Z"},
		{"spanish month", "15 marzo 2024", "es", "2024-03-15T00:00:00Z"},
		{"german month", "15 Dezember 2024", "de", "2024-12-15T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeDate(tt.text, tt.locale, reference))
		})
	}
}

func TestDateNormalizer_NormalizeDate_Unparseable(t *testing.T) {
	n := NewDateNormalizer()

	for _, text := range []string{"", "not a date", "the 99th of Smarch", "12345678"} {
		if got := n.NormalizeDate(text, "en", reference); got != "" {
			t.Errorf("NormalizeDate(%q): got %q, want empty", text, got)
		}
	}
}

func TestDateNormalizer_NormalizeTime(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		text string
		want string
	}{
		{"14:30", "14:30"},
		{"09:05", "09:05"},
		{"3:30 PM", "15:30"},
		{"3:30 am", "03:30"},
		{"12pm", "12:00"},
		{"12am", "00:00"},
		{"12:30 PM", "12:30"},
		{"12:30 AM", "00:30"},
		{"15h", "15:00"},
		{"7", "07:00"},
		{"25:00", ""},
		{"13pm", ""},
		{"noonish", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.NormalizeTime(tt.text), "input %q", tt.text)
	}
}

func TestDateNormalizer_NormalizeDuration(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		text  string
		value float64
		unit  string
	}{
		{"2 hours", 2, "hours"},
		{"90 minutes", 90, "minutes"},
		{"45 min", 45, "minutes"},
		{"3 days", 3, "days"},
		{"1.5 hrs", 1.5, "hours"},
		{"2 weeks", 2, "weeks"},
		{"half day", 0.5, "days"},
		{"Full day tour", 1, "days"},
		{"all day", 1, "days"},
	}

	for _, tt := range tests {
		d := n.NormalizeDuration(tt.text)
		require.NotNil(t, d, "input %q", tt.text)
		assert.Equal(t, tt.value, d.Value, "input %q", tt.text)
		assert.Equal(t, tt.unit, d.Unit, "input %q", tt.text)
	}

	assert.Nil(t, n.NormalizeDuration("a while"))
	assert.Nil(t, n.NormalizeDuration(""))
}

func TestDateNormalizer_ExtractDateRanges(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		name  string
		text  string
		start string
		end   string
	}{
		{"month first", "Visit May 15-20, 2024 for the festival", "2024-05-15T00:00:00Z", "2024-05-20T00:00:00Z"},
		{"day first", "Open 15-20 May 2024", "2024-05-15T00:00:00Z", "2024-05-20T00:00:00Z"},
		{"to separator", "May 15 to 20, 2024", "2024-05-15T00:00:00Z", "2024-05-20T00:00:00Z"},
		{"slash dates", "from 15/05/2024 - 20/05/2024 inclusive", "2024-05-15T00:00:00Z", "2024-05-20T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := n.ExtractDateRanges(tt.text, "en-GB")
			require.Len(t, ranges, 1)
			assert.Equal(t, tt.start, ranges[0].Start)
			assert.Equal(t, tt.end, ranges[0].End)
		})
	}

	assert.Empty(t, n.ExtractDateRanges("no dates here", "en"))
}
