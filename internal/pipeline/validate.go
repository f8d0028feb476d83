package pipeline

import (
	"fmt"
	"regexp"
	"time"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
)

// Coordinate and rating bounds.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
	maxRating    = 5.0
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	durationPattern     = regexp.MustCompile(`^\d+(?:\.\d+)? (?:hours|minutes|days)$`)
)

// Validator applies type-specific advisory checks to normalized content.
// Failures are reported as human-readable strings, never as errors: content
// with validation failures is still returned to the caller.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns zero or more advisory failure messages of the form
// "<id>: <field> - <message>".
func (v *Validator) Validate(content domain.NormalizedContent) []string {
	switch c := content.(type) {
	case *domain.Destination:
		return v.validateDestination(c)
	case *domain.Activity:
		return v.validateActivity(c)
	case *domain.Accommodation:
		return v.validateAccommodation(c)
	case *domain.Transportation:
		return v.validateTransportation(c)
	case *domain.Itinerary:
		return v.validateItinerary(c)
	case *domain.Generic:
		return nil
	}
	return []string{failure(content.Common().ID, "type", fmt.Sprintf("unrecognized content type %q", content.Kind()))}
}

func (v *Validator) validateDestination(d *domain.Destination) []string {
	var failures []string
	if d.Name == "" {
		failures = append(failures, failure(d.ID, "name", "is required"))
	}
	if !gazetteer.IsCountryCode(d.Country) {
		failures = append(failures, failure(d.ID, "country", fmt.Sprintf("%q is not a known country code", d.Country)))
	}
	if d.Coordinates != nil {
		if d.Coordinates.Lat < minLatitude || d.Coordinates.Lat > maxLatitude {
			failures = append(failures, failure(d.ID, "coordinates.lat", "must be between -90 and 90"))
		}
		if d.Coordinates.Lng < minLongitude || d.Coordinates.Lng > maxLongitude {
			failures = append(failures, failure(d.ID, "coordinates.lng", "must be between -180 and 180"))
		}
	}
	return failures
}

func (v *Validator) validateActivity(a *domain.Activity) []string {
	var failures []string
	if a.Name == "" {
		failures = append(failures, failure(a.ID, "name", "is required"))
	}
	if a.Price != nil {
		if a.Price.Amount < 0 {
			failures = append(failures, failure(a.ID, "price.amount", "must be non-negative"))
		}
		if !currencyCodePattern.MatchString(a.Price.Currency) {
			failures = append(failures, failure(a.ID, "price.currency", "must be a 3-letter currency code"))
		}
	}
	if a.Duration != "" && !durationPattern.MatchString(a.Duration) {
		failures = append(failures, failure(a.ID, "duration", `must match "NUMBER (hours|minutes|days)"`))
	}
	if a.Rating != nil && (*a.Rating < 0 || *a.Rating > maxRating) {
		failures = append(failures, failure(a.ID, "rating", "must be between 0 and 5"))
	}
	return failures
}

// validateAccommodation owns the priceRange min <= max invariant: range
// construction does not enforce it anywhere else.
func (v *Validator) validateAccommodation(a *domain.Accommodation) []string {
	var failures []string
	if a.Name == "" {
		failures = append(failures, failure(a.ID, "name", "is required"))
	}
	if a.Address.Country == "" {
		failures = append(failures, failure(a.ID, "address.country", "is required"))
	}
	if a.PriceRange != nil && a.PriceRange.Min.Amount > a.PriceRange.Max.Amount {
		failures = append(failures, failure(a.ID, "priceRange", "min amount exceeds max amount"))
	}
	return failures
}

func (v *Validator) validateTransportation(tr *domain.Transportation) []string {
	var failures []string
	if tr.Departure.Location == "" {
		failures = append(failures, failure(tr.ID, "departure.location", "is required"))
	}
	if tr.Arrival.Location == "" {
		failures = append(failures, failure(tr.ID, "arrival.location", "is required"))
	}
	if tr.Price != nil && tr.Price.Amount < 0 {
		failures = append(failures, failure(tr.ID, "price.amount", "must be non-negative"))
	}
	return failures
}

func (v *Validator) validateItinerary(i *domain.Itinerary) []string {
	var failures []string
	if i.Title == "" {
		failures = append(failures, failure(i.ID, "title", "is required"))
	}
	if len(i.DailyPlans) == 0 {
		failures = append(failures, failure(i.ID, "dailyPlans", "must contain at least one day"))
	}
	for _, plan := range i.DailyPlans {
		if plan.Day < 1 {
			failures = append(failures, failure(i.ID, "dailyPlans.day", fmt.Sprintf("day number %d must be >= 1", plan.Day)))
		}
	}
	if i.StartDate != "" && i.EndDate != "" {
		start, startErr := time.Parse(time.RFC3339, i.StartDate)
		end, endErr := time.Parse(time.RFC3339, i.EndDate)
		if startErr == nil && endErr == nil && start.After(end) {
			failures = append(failures, failure(i.ID, "startDate", "must not be after endDate"))
		}
	}
	return failures
}

func failure(id, field, message string) string {
	return fmt.Sprintf("%s: %s - %s", id, field, message)
}
