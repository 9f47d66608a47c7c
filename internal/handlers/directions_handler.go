package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
)

// DirectionsHandler handles routing HTTP requests
type DirectionsHandler struct {
	directionsService interfaces.DirectionsService
	logger            arbor.ILogger
}

// NewDirectionsHandler creates a new directions handler with dependencies
func NewDirectionsHandler(directionsService interfaces.DirectionsService, logger arbor.ILogger) *DirectionsHandler {
	return &DirectionsHandler{
		directionsService: directionsService,
		logger:            logger,
	}
}

// DirectionsHandler handles GET /api/directions requests. Query
// parameters: origin, destination (free-form text or "lat,lng"), mode
// (driving/walking/bicycling/transit, defaults to driving).
func (h *DirectionsHandler) DirectionsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")
	mode := models.TravelMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = models.TravelModeDriving
	}

	if origin == "" || destination == "" {
		WriteError(w, http.StatusBadRequest, "Both origin and destination are required")
		return
	}
	if !models.ValidTravelMode(mode) {
		WriteError(w, http.StatusBadRequest, "Invalid travel mode")
		return
	}

	ctx := r.Context()
	route, err := h.directionsService.Route(ctx, models.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrProviderUnavailable) {
			WriteError(w, http.StatusServiceUnavailable, "Directions functionality is unavailable: places provider is not configured")
			return
		}
		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("origin", origin).
				Str("destination", destination).
				Msg("Failed to fetch directions")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to fetch directions")
		return
	}

	if route == nil {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"route": nil,
			"found": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"route": route,
		"found": true,
	})
}
