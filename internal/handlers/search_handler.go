package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
	"github.com/ternarybob/atlas/internal/search"
)

// SearchHandler handles place search HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	logger        arbor.ILogger
}

// NewSearchHandler creates a new search handler with dependencies
func NewSearchHandler(searchService interfaces.SearchService, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// SearchHandler handles GET /api/search requests. Query parameters:
// q (search text), category (optional explicit category), lat/lng
// (viewport center), sw_lat/sw_lng/ne_lat/ne_lng (viewport bounds).
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	category := models.Category(strings.ToLower(r.URL.Query().Get("category")))
	center := parseLatLng(r, "lat", "lng")
	bounds := parseBounds(r)

	if h.logger != nil {
		h.logger.Info().
			Str("query", query).
			Str("category", string(category)).
			Bool("has_center", center != nil).
			Bool("has_bounds", bounds != nil).
			Msg("Search request received")
	}

	req := models.SearchRequest{
		Query:    query,
		Category: category,
		Center:   center,
		Bounds:   bounds,
	}

	ctx := r.Context()
	ranked, err := h.searchService.Search(ctx, req)
	if err != nil {
		if errors.Is(err, interfaces.ErrProviderUnavailable) {
			if h.logger != nil {
				h.logger.Warn().
					Str("query", query).
					Msg("Search unavailable: places provider is not configured")
			}
			WriteError(w, http.StatusServiceUnavailable, "Search functionality is unavailable: places provider is not configured")
			return
		}

		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("query", query).
				Msg("Failed to execute search")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to execute search")
		return
	}

	locations := search.ToDisplayLocations(ranked)

	if h.logger != nil {
		h.logger.Debug().
			Str("query", query).
			Int("results", len(locations)).
			Msg("Search completed")
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"results": locations,
		"count":   len(locations),
		"query":   query,
	})
}
