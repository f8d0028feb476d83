package domain

// PriceType qualifies what a price covers.
type PriceType string

// Recognized price qualifiers.
const (
	PricePerPerson PriceType = "per_person"
	PricePerGroup  PriceType = "per_group"
	PriceTotal     PriceType = "total"
)

// Price is a normalized currency amount. Currency is an ISO 4217 code
// validated against the known-currency table in the price normalizer.
type Price struct {
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	PriceType PriceType `json:"priceType,omitempty"`
}

// PriceRange is a min/max price pair. Construction does not enforce
// min <= max; that is validated centrally by the pipeline validator.
type PriceRange struct {
	Min Price `json:"min"`
	Max Price `json:"max"`
}
