package models

// Category is the application's closed classification of a search intent.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryHotel      Category = "hotel"
	CategoryAttraction Category = "attraction"
	CategoryShopping   Category = "shopping"
	CategoryCafe       Category = "cafe"
	CategoryGeneric    Category = "generic"
)

// Place represents a single candidate location as returned by the provider.
// PlaceID is an opaque provider-assigned identifier, unique per physical
// place within one search session; records without a PlaceID are never
// deduplicated against each other.
type Place struct {
	PlaceID          string   `json:"place_id,omitempty"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Location         LatLng   `json:"location"`
	Types            []string `json:"types,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	PhotoReferences  []string `json:"photo_references,omitempty"`
}

// SearchRequest represents one aggregated place search. Center is the
// reference coordinate (usually the viewport center); it need not be the
// centroid of Bounds.
type SearchRequest struct {
	Query    string   `json:"query"`
	Category Category `json:"category,omitempty"` // empty = infer from query
	Center   *LatLng  `json:"center,omitempty"`
	Bounds   *Bounds  `json:"bounds,omitempty"`
}

// RankedPlace pairs a Place with its proximity score in [0,1];
// higher means closer to the request's reference coordinate.
type RankedPlace struct {
	Place
	Score float64 `json:"score"`
}

// DisplayLocation is the display-ready record handed to the map renderer.
type DisplayLocation struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Type    string  `json:"type"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating,omitempty"`
	Score   float64 `json:"score"`
}

// Prediction is a single raw autocomplete prediction from the provider.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id,omitempty"`
}

// Suggestion is one resolved autocomplete prediction.
type Suggestion struct {
	Description string `json:"description"`
	Place       *Place `json:"place,omitempty"`
}
