package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ternarybob/atlas/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a standard success JSON response.
func WriteSuccess(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// parseFloat extracts a float query parameter. Returns the value and true
// only when the parameter is present and numeric.
func parseFloat(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseLatLng extracts a coordinate pair from two query parameters.
// Both must be present and numeric for the pair to count.
func parseLatLng(r *http.Request, latName, lngName string) *models.LatLng {
	lat, okLat := parseFloat(r, latName)
	lng, okLng := parseFloat(r, lngName)
	if !okLat || !okLng {
		return nil
	}
	return &models.LatLng{Lat: lat, Lng: lng}
}

// parseBounds extracts viewport bounds from sw_lat/sw_lng/ne_lat/ne_lng
// query parameters. All four must be present for bounds to apply.
func parseBounds(r *http.Request) *models.Bounds {
	sw := parseLatLng(r, "sw_lat", "sw_lng")
	ne := parseLatLng(r, "ne_lat", "ne_lng")
	if sw == nil || ne == nil {
		return nil
	}
	return &models.Bounds{Southwest: *sw, Northeast: *ne}
}
