package models

// TravelMode enumerates the routing modes accepted by the directions provider.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// ValidTravelMode reports whether mode is one of the supported values.
func ValidTravelMode(mode TravelMode) bool {
	switch mode {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	}
	return false
}

// DirectionsRequest asks the provider for a route between two endpoints.
// Origin and Destination are free-form (address, place name, or "lat,lng").
type DirectionsRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Mode        TravelMode `json:"mode"`
}

// Route is the provider-computed route summary. Atlas performs no routing
// of its own; distance and duration come straight from the provider.
type Route struct {
	Summary         string  `json:"summary,omitempty"`
	DistanceMeters  int     `json:"distance_meters"`
	DurationSeconds int     `json:"duration_seconds"`
	StartAddress    string  `json:"start_address,omitempty"`
	EndAddress      string  `json:"end_address,omitempty"`
	Polyline        string  `json:"polyline,omitempty"`
	Start           *LatLng `json:"start,omitempty"`
	End             *LatLng `json:"end,omitempty"`
}
