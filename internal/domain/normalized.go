package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// NormalizedType discriminates the NormalizedContent union.
type NormalizedType string

// Normalized content variants.
const (
	TypeDestination    NormalizedType = "destination"
	TypeActivity       NormalizedType = "activity"
	TypeAccommodation  NormalizedType = "accommodation"
	TypeTransportation NormalizedType = "transportation"
	TypeItinerary      NormalizedType = "itinerary"
	TypeGeneric        NormalizedType = "generic"
)

// TransportMode enumerates transportation variants.
type TransportMode string

// Recognized transport modes.
const (
	ModeFlight    TransportMode = "flight"
	ModeTrain     TransportMode = "train"
	ModeBus       TransportMode = "bus"
	ModeCarRental TransportMode = "car_rental"
	ModeTaxi      TransportMode = "taxi"
	ModeFerry     TransportMode = "ferry"
	ModeWalk      TransportMode = "walk"
	ModeOther     TransportMode = "other"
)

// Base carries the identity and provenance fields shared by every
// normalized variant. Created once by a transformer; immutable afterwards
// except for tag attachment.
type Base struct {
	ID                  string         `json:"id"`
	Source              string         `json:"source"`
	OriginalContentType RawContentType `json:"originalContentType"`
	ExtractionDate      time.Time      `json:"extractionDate"`
	ProcessingDate      time.Time      `json:"processingDate"`
	Confidence          float64        `json:"confidence"`
	Tags                []string       `json:"tags,omitempty"`
}

// NormalizedContent is the tagged union of canonical content records.
// Every consumer switches exhaustively on the concrete variant so that
// adding a new content type is a compile-time-checked change.
type NormalizedContent interface {
	// Kind returns the variant discriminator.
	Kind() NormalizedType
	// Common returns the shared base fields. The pointer allows tag
	// attachment, the only mutation permitted after creation.
	Common() *Base
	// SalientText concatenates the identifying text fields used as the
	// unit of comparison for deduplication.
	SalientText() string
}

// Address is a structured location for accommodations and destinations.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Destination is a place a traveller visits.
type Destination struct {
	Base
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Country     string       `json:"country"`
	Region      string       `json:"region,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Address     *Address     `json:"address,omitempty"`
}

// Kind returns TypeDestination.
func (d *Destination) Kind() NormalizedType { return TypeDestination }

// Common returns the shared base fields.
func (d *Destination) Common() *Base { return &d.Base }

// SalientText returns the dedup comparison text for a destination.
func (d *Destination) SalientText() string {
	return joinSalient(d.Name, d.Description, d.Country, d.Region)
}

// Activity is a bookable experience or thing to do.
type Activity struct {
	Base
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ActivityType   string   `json:"activityType,omitempty"`
	Price          *Price   `json:"price,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	OperatingHours []string `json:"operatingHours,omitempty"`
}

// Kind returns TypeActivity.
func (a *Activity) Kind() NormalizedType { return TypeActivity }

// Common returns the shared base fields.
func (a *Activity) Common() *Base { return &a.Base }

// SalientText returns the dedup comparison text for an activity.
func (a *Activity) SalientText() string {
	return joinSalient(a.Name, a.Description, a.ActivityType)
}

// Accommodation is a lodging option.
type Accommodation struct {
	Base
	Name         string      `json:"name"`
	Type         string      `json:"accommodationType,omitempty"`
	Description  string      `json:"description,omitempty"`
	Address      Address     `json:"address"`
	PriceRange   *PriceRange `json:"priceRange,omitempty"`
	CheckInTime  string      `json:"checkInTime,omitempty"`
	CheckOutTime string      `json:"checkOutTime,omitempty"`
	Amenities    []string    `json:"amenities,omitempty"`
}

// Kind returns TypeAccommodation.
func (a *Accommodation) Kind() NormalizedType { return TypeAccommodation }

// Common returns the shared base fields.
func (a *Accommodation) Common() *Base { return &a.Base }

// SalientText returns the dedup comparison text for an accommodation.
func (a *Accommodation) SalientText() string {
	return joinSalient(a.Name, a.Description, a.Address.City, a.Address.Country)
}

// TransportStop is one endpoint of a transportation leg.
type TransportStop struct {
	Location string `json:"location"`
	Time     string `json:"time,omitempty"`
}

// Transportation is a travel leg between two locations.
type Transportation struct {
	Base
	Mode      TransportMode `json:"mode"`
	Departure TransportStop `json:"departure"`
	Arrival   TransportStop `json:"arrival"`
	Provider  string        `json:"provider,omitempty"`
	Price     *Price        `json:"price,omitempty"`
}

// Kind returns TypeTransportation.
func (t *Transportation) Kind() NormalizedType { return TypeTransportation }

// Common returns the shared base fields.
func (t *Transportation) Common() *Base { return &t.Base }

// SalientText returns the dedup comparison text for a transportation leg.
func (t *Transportation) SalientText() string {
	return joinSalient(string(t.Mode), t.Departure.Location, t.Arrival.Location, t.Provider)
}

// DailyPlan is one day of an itinerary.
type DailyPlan struct {
	Day   int      `json:"day"`
	Items []string `json:"items"`
}

// Itinerary is a multi-day travel plan.
type Itinerary struct {
	Base
	Title      string      `json:"title"`
	DailyPlans []DailyPlan `json:"dailyPlans"`
	StartDate  string      `json:"startDate,omitempty"`
	EndDate    string      `json:"endDate,omitempty"`
}

// Kind returns TypeItinerary.
func (i *Itinerary) Kind() NormalizedType { return TypeItinerary }

// Common returns the shared base fields.
func (i *Itinerary) Common() *Base { return &i.Base }

// SalientText returns the dedup comparison text for an itinerary.
func (i *Itinerary) SalientText() string {
	parts := []string{i.Title}
	for _, plan := range i.DailyPlans {
		parts = append(parts, plan.Items...)
	}
	return joinSalient(parts...)
}

// Generic is the catch-all variant when no richer type is inferable.
type Generic struct {
	Base
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Kind returns TypeGeneric.
func (g *Generic) Kind() NormalizedType { return TypeGeneric }

// Common returns the shared base fields.
func (g *Generic) Common() *Base { return &g.Base }

// SalientText returns the dedup comparison text for a generic item.
func (g *Generic) SalientText() string {
	return joinSalient(g.Title, g.Text)
}

func joinSalient(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (d *Destination) MarshalJSON() ([]byte, error) {
	type alias Destination
	return marshalWithType(TypeDestination, (*alias)(d))
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (a *Activity) MarshalJSON() ([]byte, error) {
	type alias Activity
	return marshalWithType(TypeActivity, (*alias)(a))
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (a *Accommodation) MarshalJSON() ([]byte, error) {
	type alias Accommodation
	return marshalWithType(TypeAccommodation, (*alias)(a))
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (t *Transportation) MarshalJSON() ([]byte, error) {
	type alias Transportation
	return marshalWithType(TypeTransportation, (*alias)(t))
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (i *Itinerary) MarshalJSON() ([]byte, error) {
	type alias Itinerary
	return marshalWithType(TypeItinerary, (*alias)(i))
}

// MarshalJSON injects the "type" discriminator alongside the variant fields.
func (g *Generic) MarshalJSON() ([]byte, error) {
	type alias Generic
	return marshalWithType(TypeGeneric, (*alias)(g))
}

func marshalWithType(kind NormalizedType, payload any) ([]byte, error) {
	inner, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(inner, &fields); err != nil {
		return nil, err
	}
	fields["type"], err = json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// DecodeNormalizedContent unmarshals a JSON document into the concrete
// variant named by its "type" field.
func DecodeNormalizedContent(data []byte) (NormalizedContent, error) {
	var envelope struct {
		Type NormalizedType `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode content envelope: %w", err)
	}

	var (
		content NormalizedContent
		err     error
	)
	switch envelope.Type {
	case TypeDestination:
		v := &Destination{}
		err = json.Unmarshal(data, v)
		content = v
	case TypeActivity:
		v := &Activity{}
		err = json.Unmarshal(data, v)
		content = v
	case TypeAccommodation:
		v := &Accommodation{}
		err = json.Unmarshal(data, v)
		content = v
	case TypeTransportation:
		v := &Transportation{}
		err = json.Unmarshal(data, v)
		content = v
	case TypeItinerary:
		v := &Itinerary{}
		err = json.Unmarshal(data, v)
		content = v
	case TypeGeneric:
		v := &Generic{}
		err = json.Unmarshal(data, v)
		content = v
	default:
		return nil, fmt.Errorf("unknown content type %q", envelope.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s content: %w", envelope.Type, err)
	}
	return content, nil
}
