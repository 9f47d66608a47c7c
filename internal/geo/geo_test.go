package geo

import (
	"math"
	"testing"

	"github.com/ternarybob/atlas/internal/models"
)

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b models.LatLng
	}{
		{models.LatLng{Lat: 40.7580, Lng: -73.9855}, models.LatLng{Lat: 40.7489, Lng: -73.9680}},
		{models.LatLng{Lat: -33.8688, Lng: 151.2093}, models.LatLng{Lat: 51.5074, Lng: -0.1278}},
		{models.LatLng{Lat: 0, Lng: 0}, models.LatLng{Lat: 0, Lng: 180}},
	}

	for _, p := range pairs {
		ab := DistanceKm(p.a, p.b)
		ba := DistanceKm(p.b, p.a)
		if ab != ba {
			t.Errorf("DistanceKm not symmetric: %v vs %v", ab, ba)
		}
		if ab < 0 {
			t.Errorf("DistanceKm negative: %v", ab)
		}
	}
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := models.LatLng{Lat: 40.7580, Lng: -73.9855}
	if d := DistanceKm(p, p); d != 0 {
		t.Errorf("Expected zero distance for identical points, got %v", d)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Times Square to Empire State Building, roughly 1.1 km
	timesSquare := models.LatLng{Lat: 40.7580, Lng: -73.9855}
	empireState := models.LatLng{Lat: 40.7484, Lng: -73.9857}

	d := DistanceKm(timesSquare, empireState)
	if math.Abs(d-1.07) > 0.1 {
		t.Errorf("Expected ~1.07 km, got %v", d)
	}
}

func TestWithinBounds(t *testing.T) {
	bounds := &models.Bounds{
		Southwest: models.LatLng{Lat: 40.70, Lng: -74.02},
		Northeast: models.LatLng{Lat: 40.78, Lng: -73.95},
	}

	tests := []struct {
		name  string
		point models.LatLng
		want  bool
	}{
		{"inside", models.LatLng{Lat: 40.7580, Lng: -73.9855}, true},
		{"north of bounds", models.LatLng{Lat: 40.90, Lng: -73.90}, false},
		{"south of bounds", models.LatLng{Lat: 40.60, Lng: -74.00}, false},
		{"on southwest corner", models.LatLng{Lat: 40.70, Lng: -74.02}, true},
		{"on northeast corner", models.LatLng{Lat: 40.78, Lng: -73.95}, true},
		{"east of bounds", models.LatLng{Lat: 40.75, Lng: -73.80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinBounds(tt.point, bounds); got != tt.want {
				t.Errorf("WithinBounds(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestWithinBounds_NilBounds(t *testing.T) {
	if !WithinBounds(models.LatLng{Lat: 89, Lng: 179}, nil) {
		t.Error("Expected nil bounds to disable filtering")
	}
}

func TestBoundsRadiusMeters_Default(t *testing.T) {
	if r := BoundsRadiusMeters(nil); r != 50000 {
		t.Errorf("Expected 50000 m default radius, got %v", r)
	}
}

func TestBoundsRadiusMeters_SmallViewport(t *testing.T) {
	// A viewport a few city blocks across should produce a buffered
	// half-diagonal well under the cap.
	bounds := &models.Bounds{
		Southwest: models.LatLng{Lat: 40.755, Lng: -73.990},
		Northeast: models.LatLng{Lat: 40.760, Lng: -73.982},
	}

	r := BoundsRadiusMeters(bounds)
	half := DistanceKm(bounds.Southwest, bounds.Northeast) / 2 * 1000

	if r <= half {
		t.Errorf("Expected buffered radius > half diagonal (%v), got %v", half, r)
	}
	if math.Abs(r-half*1.2) > 0.001 {
		t.Errorf("Expected half diagonal * 1.2 = %v, got %v", half*1.2, r)
	}
}

func TestBoundsRadiusMeters_CappedAt20km(t *testing.T) {
	// A country-sized viewport must be capped.
	bounds := &models.Bounds{
		Southwest: models.LatLng{Lat: 40.0, Lng: -75.0},
		Northeast: models.LatLng{Lat: 42.0, Lng: -72.0},
	}

	if r := BoundsRadiusMeters(bounds); r != 20000 {
		t.Errorf("Expected radius capped at 20000 m, got %v", r)
	}
}
