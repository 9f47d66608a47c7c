package models

// LatLng represents a geographic coordinate in degrees (WGS 84)
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds represents a rectangular geographic viewport defined by its
// southwest and northeast corners. A valid rectangle satisfies
// Southwest.Lat <= Northeast.Lat.
type Bounds struct {
	Southwest LatLng `json:"southwest"`
	Northeast LatLng `json:"northeast"`
}
