package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/interfaces"
)

// LocationHandler handles result selection HTTP requests
type LocationHandler struct {
	eventService interfaces.EventService
	logger       arbor.ILogger
}

// NewLocationHandler creates a new location handler with dependencies
func NewLocationHandler(eventService interfaces.EventService, logger arbor.ILogger) *LocationHandler {
	return &LocationHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// selectRequest is the body of POST /api/locations/select.
type selectRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// SelectHandler handles POST /api/locations/select requests. Selecting a
// result publishes a location_selected event; WebSocket clients receive
// it and pan the map.
func (h *LocationHandler) SelectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" && req.ID == "" {
		WriteError(w, http.StatusBadRequest, "Either id or name is required")
		return
	}

	event := interfaces.Event{
		Type: interfaces.EventLocationSelected,
		Payload: map[string]interface{}{
			"id":   req.ID,
			"name": req.Name,
			"lat":  req.Lat,
			"lng":  req.Lng,
		},
	}

	if err := h.eventService.Publish(r.Context(), event); err != nil {
		if h.logger != nil {
			h.logger.Error().Err(err).Str("id", req.ID).Msg("Failed to publish location selection")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to publish location selection")
		return
	}

	if h.logger != nil {
		h.logger.Debug().
			Str("id", req.ID).
			Str("name", req.Name).
			Msg("Location selected")
	}

	WriteSuccess(w, "Location selection published")
}
