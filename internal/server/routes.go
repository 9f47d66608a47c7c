package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route
	mux.HandleFunc("/ws", s.app.WSHandler.WebSocketHandler)

	// API routes - Search and suggestions
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)    // GET - aggregated place search
	mux.HandleFunc("/api/suggest", s.app.SuggestHandler.SuggestHandler) // GET - autocomplete suggestions

	// API routes - Directions
	mux.HandleFunc("/api/directions", s.app.DirectionsHandler.DirectionsHandler) // GET - route between two points

	// API routes - Location selection
	mux.HandleFunc("/api/locations/select", s.app.LocationHandler.SelectHandler) // POST - publish selection event

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/config", s.app.ConfigHandler.ConfigHandler) // GET - renderer-facing configuration

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
