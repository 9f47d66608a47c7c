// Package geo provides the pure coordinate math used by search:
// great-circle distance, bounds containment, and the bounds-derived
// provider search radius.
package geo

import (
	"math"

	"github.com/ternarybob/atlas/internal/models"
)

const (
	earthRadiusKm = 6371.0

	// Radius derived from a viewport is buffered slightly so results just
	// off-screen still surface, then capped to bound provider query cost.
	boundsRadiusBuffer  = 1.2
	maxRadiusMeters     = 20000.0
	defaultRadiusMeters = 50000.0
)

// DistanceKm returns the great-circle distance between a and b in
// kilometers using the haversine formula. Symmetric, non-negative,
// and zero when a == b.
func DistanceKm(a, b models.LatLng) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinBounds reports whether point lies inside bounds, corners inclusive.
// A nil bounds disables filtering and always returns true.
func WithinBounds(point models.LatLng, bounds *models.Bounds) bool {
	if bounds == nil {
		return true
	}
	return point.Lat >= bounds.Southwest.Lat && point.Lat <= bounds.Northeast.Lat &&
		point.Lng >= bounds.Southwest.Lng && point.Lng <= bounds.Northeast.Lng
}

// BoundsRadiusMeters derives a provider search radius from a viewport:
// half the diagonal, buffered by 1.2 and capped at 20 km. A nil bounds
// falls back to the fixed 50 km default.
func BoundsRadiusMeters(bounds *models.Bounds) float64 {
	if bounds == nil {
		return defaultRadiusMeters
	}

	diagonalKm := DistanceKm(bounds.Southwest, bounds.Northeast)
	radius := diagonalKm / 2 * boundsRadiusBuffer * 1000

	if radius > maxRadiusMeters {
		return maxRadiusMeters
	}
	return radius
}
