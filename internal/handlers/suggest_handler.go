package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/common"
	"github.com/ternarybob/atlas/internal/interfaces"
)

// SuggestHandler handles autocomplete suggestion HTTP requests
type SuggestHandler struct {
	suggestService interfaces.SuggestService
	logger         arbor.ILogger
}

// NewSuggestHandler creates a new suggestion handler with dependencies
func NewSuggestHandler(suggestService interfaces.SuggestService, logger arbor.ILogger) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		logger:         logger,
	}
}

// SuggestHandler handles GET /api/suggest requests. Query parameters:
// q (partial input), session (autocomplete session token; one is issued
// when absent), lat/lng (bias center).
func (h *SuggestHandler) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	input := r.URL.Query().Get("q")
	sessionToken := r.URL.Query().Get("session")
	if sessionToken == "" {
		// A fresh token starts a new provider billing session; the client
		// should echo it back for subsequent keystrokes.
		sessionToken = common.NewSessionToken()
	}
	center := parseLatLng(r, "lat", "lng")

	ctx := r.Context()
	suggestions, err := h.suggestService.Suggest(ctx, input, sessionToken, center)
	if err != nil {
		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("input", input).
				Msg("Failed to fetch suggestions")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions":   suggestions,
		"count":         len(suggestions),
		"session_token": sessionToken,
	})
}
