package google

// Provider status values. Only StatusOK is treated as success; everything
// else degrades to "no results from this call" and is logged as a warning.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusUnknownError   = "UNKNOWN_ERROR"
)

// searchResponse represents the paged Places search API response shape
// shared by text search and nearby search.
type searchResponse struct {
	Results       []placeResult `json:"results"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// findPlaceResponse represents the Find Place From Text API response
type findPlaceResponse struct {
	Candidates   []placeResult `json:"candidates"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// autocompleteResponse represents the Place Autocomplete API response
type autocompleteResponse struct {
	Predictions  []prediction `json:"predictions"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// placeResult represents a single place result from the Places API
type placeResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Vicinity         string    `json:"vicinity,omitempty"`
	Geometry         *geometry `json:"geometry,omitempty"`
	Types            []string  `json:"types,omitempty"`
	Rating           float64   `json:"rating,omitempty"`
	UserRatingsTotal int       `json:"user_ratings_total,omitempty"`
	Photos           []photo   `json:"photos,omitempty"`
	BusinessStatus   string    `json:"business_status,omitempty"`
}

// geometry represents the geometry information of a place
type geometry struct {
	Location *latLng `json:"location,omitempty"`
}

// latLng represents a geographic coordinate on the wire
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// photo represents a place photo reference
type photo struct {
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	PhotoReference string `json:"photo_reference"`
}

// directionsResponse represents the Directions API response
type directionsResponse struct {
	Routes       []route `json:"routes"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type route struct {
	Summary          string   `json:"summary,omitempty"`
	Legs             []leg    `json:"legs"`
	OverviewPolyline polyline `json:"overview_polyline"`
}

type leg struct {
	Distance      textValue `json:"distance"`
	Duration      textValue `json:"duration"`
	StartAddress  string    `json:"start_address,omitempty"`
	EndAddress    string    `json:"end_address,omitempty"`
	StartLocation *latLng   `json:"start_location,omitempty"`
	EndLocation   *latLng   `json:"end_location,omitempty"`
}

type textValue struct {
	Text  string `json:"text,omitempty"`
	Value int    `json:"value"`
}

type polyline struct {
	Points string `json:"points,omitempty"`
}
