package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/common"
)

// ConfigHandler exposes the client-facing subset of configuration
type ConfigHandler struct {
	config *common.Config
	logger arbor.ILogger
}

// NewConfigHandler creates a new config handler with dependencies
func NewConfigHandler(config *common.Config, logger arbor.ILogger) *ConfigHandler {
	return &ConfigHandler{
		config: config,
		logger: logger,
	}
}

// ConfigHandler handles GET /api/config requests. Only renderer-relevant
// settings are exposed; provider credentials never leave the server.
func (h *ConfigHandler) ConfigHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":         h.config.Environment,
		"max_results":         h.config.Search.MaxResults,
		"suggest_debounce_ms": h.config.Search.SuggestDebounce.Milliseconds(),
		"default_center": map[string]float64{
			"lat": h.config.Search.DefaultCenter.Lat,
			"lng": h.config.Search.DefaultCenter.Lng,
		},
		"default_zoom":       h.config.Search.DefaultZoom,
		"provider_available": h.config.Provider.APIKey != "",
	})
}
