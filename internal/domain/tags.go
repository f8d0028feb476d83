package domain

// ContentCategory is a top-level node of the travel taxonomy.
type ContentCategory string

// Top-level taxonomy categories.
const (
	CategoryDestination    ContentCategory = "destination"
	CategoryActivity       ContentCategory = "activity"
	CategoryAccommodation  ContentCategory = "accommodation"
	CategoryTransportation ContentCategory = "transportation"
	CategoryDining         ContentCategory = "dining"
	CategoryShopping       ContentCategory = "shopping"
	CategoryPracticalInfo  ContentCategory = "practical_info"
	CategoryGeneral        ContentCategory = "general"
)

// TagEntities groups the named entities attached to a tag.
type TagEntities struct {
	Locations     []string `json:"locations,omitempty"`
	Attractions   []string `json:"attractions,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
}

// TagAttributes carries qualifying attributes derived from the content.
type TagAttributes struct {
	PriceRange  string   `json:"priceRange,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Suitability []string `json:"suitability,omitempty"`
	Season      []string `json:"season,omitempty"`
}

// ContentTag is one confidence-scored taxonomy assignment.
type ContentTag struct {
	Category         ContentCategory `json:"category"`
	Subcategories    []string        `json:"subcategories,omitempty"`
	Keywords         []string        `json:"keywords,omitempty"`
	Entities         TagEntities     `json:"entities"`
	Attributes       TagAttributes   `json:"attributes"`
	Confidence       float64         `json:"confidence"`
	HierarchicalPath []string        `json:"hierarchicalPath,omitempty"`
}

// TagConfidence summarizes tagging confidence overall and per category.
type TagConfidence struct {
	Overall    float64                     `json:"overall"`
	ByCategory map[ContentCategory]float64 `json:"byCategory"`
}

// TagResult is the output of the content tagger: accepted tags above the
// confidence threshold, the below-threshold suggestions, and the scores.
type TagResult struct {
	PrimaryCategory ContentCategory `json:"primaryCategory"`
	Tags            []ContentTag    `json:"tags"`
	SuggestedTags   []ContentTag    `json:"suggestedTags"`
	Confidence      TagConfidence   `json:"confidence"`
}
