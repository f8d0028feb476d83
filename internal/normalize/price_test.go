package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
)

func TestPriceNormalizer_NormalizePrice_Grouping(t *testing.T) {
	n := NewPriceNormalizer()

	tests := []struct {
		name     string
		text     string
		amount   float64
		currency string
	}{
		{"standard grouping", "$1,234.56", 1234.56, "USD"},
		{"european grouping", "1.234,56 EUR", 1234.56, "EUR"},
		{"european multi group", "1.234.567 EUR", 1234567, "EUR"},
		{"plain decimal", "€99.50", 99.5, "EUR"},
		{"single dot three digits", "$10.999", 11, "USD"},
		{"three decimal currency", "BHD 12.345", 12.345, "BHD"},
		{"decimal comma", "49,99 EUR", 49.99, "EUR"},
		{"thousands only", "1,200 USD", 1200, "USD"},
		{"code before amount", "GBP 75.25", 75.25, "GBP"},
		{"symbol after amount", "120€", 120, "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := n.NormalizePrice(tt.text, "USD", "")
			require.NotNil(t, price)
			assert.Equal(t, tt.amount, price.Amount)
			assert.Equal(t, tt.currency, price.Currency)
		})
	}
}

func TestPriceNormalizer_NormalizePrice_AmbiguousSymbols(t *testing.T) {
	n := NewPriceNormalizer()

	tests := []struct {
		name     string
		text     string
		locale   string
		currency string
	}{
		{"dollar defaults to USD", "$100", "", "USD"},
		{"dollar with canadian locale", "$100", "en-CA", "CAD"},
		{"dollar with australian locale", "$100", "en-AU", "AUD"},
		{"yen defaults to JPY", "¥1000", "", "JPY"},
		{"yen with chinese locale", "¥1000", "zh-CN", "CNY"},
		{"kr defaults to SEK", "100 kr", "", "SEK"},
		{"kr with danish locale", "100 kr", "da-DK", "DKK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := n.NormalizePrice(tt.text, "USD", tt.locale)
			require.NotNil(t, price)
			assert.Equal(t, tt.currency, price.Currency)
		})
	}
}

func TestPriceNormalizer_NormalizePrice_DecimalRounding(t *testing.T) {
	n := NewPriceNormalizer()

	// Zero-decimal currencies round to whole units.
	price := n.NormalizePrice("¥1234.56", "USD", "jp")
	require.NotNil(t, price)
	assert.Equal(t, 1235.0, price.Amount)
	assert.Equal(t, "JPY", price.Currency)

	// Two-decimal currencies round to cents.
	price = n.NormalizePrice("$10.999", "USD", "us")
	require.NotNil(t, price)
	assert.Equal(t, 11.0, price.Amount)
}

func TestPriceNormalizer_NormalizePrice_Qualifiers(t *testing.T) {
	n := NewPriceNormalizer()

	tests := []struct {
		text      string
		priceType domain.PriceType
	}{
		{"$50 per person", domain.PricePerPerson},
		{"$50 pp", domain.PricePerPerson},
		{"$200 per group", domain.PricePerGroup},
		{"$500 total", domain.PriceTotal},
		{"$50", domain.PriceType("")},
	}

	for _, tt := range tests {
		price := n.NormalizePrice(tt.text, "USD", "")
		require.NotNil(t, price, "input %q", tt.text)
		assert.Equal(t, tt.priceType, price.PriceType, "input %q", tt.text)
	}
}

func TestPriceNormalizer_NormalizePrice_FailClosed(t *testing.T) {
	n := NewPriceNormalizer()

	// Unrecognized currency code fails the whole call.
	assert.Nil(t, n.NormalizePrice("100 XXX", "USD", ""))
	// Bare amount with an invalid default currency fails too.
	assert.Nil(t, n.NormalizePrice("100", "NOPE", ""))
	// No digits at all.
	assert.Nil(t, n.NormalizePrice("free", "USD", ""))
	assert.Nil(t, n.NormalizePrice("", "USD", ""))
}

func TestPriceNormalizer_NormalizePrice_DefaultCurrency(t *testing.T) {
	n := NewPriceNormalizer()

	price := n.NormalizePrice("around 250 per night", "EUR", "")
	require.NotNil(t, price)
	assert.Equal(t, 250.0, price.Amount)
	assert.Equal(t, "EUR", price.Currency)
}

func TestPriceNormalizer_ExtractPriceRange(t *testing.T) {
	n := NewPriceNormalizer()

	tests := []struct {
		name     string
		text     string
		min      float64
		max      float64
		currency string
	}{
		{"dash range with code", "100-200 EUR", 100, 200, "EUR"},
		{"to range with code", "100 to 200 EUR", 100, 200, "EUR"},
		{"symbol range", "$50 - $150", 50, 150, "USD"},
		{"symbol on first only", "$50-150", 50, 150, "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := n.ExtractPriceRange(tt.text, "USD", "")
			require.NotNil(t, r)
			assert.Equal(t, tt.min, r.Min.Amount)
			assert.Equal(t, tt.max, r.Max.Amount)
			assert.Equal(t, tt.currency, r.Min.Currency)
			assert.Equal(t, tt.currency, r.Max.Currency)
		})
	}

	// Inverted ranges are returned as-is; the validator owns min<=max.
	r := n.ExtractPriceRange("300-100 EUR", "USD", "")
	require.NotNil(t, r)
	assert.Equal(t, 300.0, r.Min.Amount)
	assert.Equal(t, 100.0, r.Max.Amount)

	assert.Nil(t, n.ExtractPriceRange("no prices", "USD", ""))
}
