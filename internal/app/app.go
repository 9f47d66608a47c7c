package app

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/common"
	"github.com/ternarybob/atlas/internal/handlers"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/providers/google"
	"github.com/ternarybob/atlas/internal/search"
	"github.com/ternarybob/atlas/internal/services/events"
)

// App holds all application components and dependencies
type App struct {
	Config    *common.Config
	Logger    arbor.ILogger
	ctx       context.Context
	cancelCtx context.CancelFunc

	// Event-driven services
	EventService interfaces.EventService

	// Places provider (search, autocomplete, directions)
	Provider *google.Client

	// Search services
	SearchService     interfaces.SearchService
	SuggestService    interfaces.SuggestService
	DirectionsService interfaces.DirectionsService

	// HTTP handlers
	APIHandler        *handlers.APIHandler
	SearchHandler     *handlers.SearchHandler
	SuggestHandler    *handlers.SuggestHandler
	DirectionsHandler *handlers.DirectionsHandler
	LocationHandler   *handlers.LocationHandler
	ConfigHandler     *handlers.ConfigHandler
	WSHandler         *handlers.WebSocketHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:    cfg,
		Logger:    logger,
		ctx:       ctx,
		cancelCtx: cancel,
	}

	// Event service first: the WebSocket handler subscribes to it and the
	// aggregator publishes through it.
	app.EventService = events.NewService(app.Logger)
	app.WSHandler = handlers.NewWebSocketHandler(app.EventService, app.Logger, &app.Config.WebSocket)

	// Provider client is shared by search, suggestions, and directions.
	app.Provider = google.NewClient(&cfg.Provider, app.Logger)
	if cfg.Provider.APIKey == "" {
		app.Logger.Warn().Msg("No provider API key configured; search and directions will be unavailable")
	}

	app.SearchService = search.NewAggregator(app.Provider, app.EventService, &cfg.Search, app.Logger)
	app.SuggestService = search.NewSuggester(app.Provider, app.Logger)
	app.DirectionsService = app.Provider

	// Initialize handlers
	app.APIHandler = handlers.NewAPIHandler()
	app.SearchHandler = handlers.NewSearchHandler(app.SearchService, app.Logger)
	app.SuggestHandler = handlers.NewSuggestHandler(app.SuggestService, app.Logger)
	app.DirectionsHandler = handlers.NewDirectionsHandler(app.DirectionsService, app.Logger)
	app.LocationHandler = handlers.NewLocationHandler(app.EventService, app.Logger)
	app.ConfigHandler = handlers.NewConfigHandler(cfg, app.Logger)

	logger.Info().
		Bool("provider_configured", cfg.Provider.APIKey != "").
		Int("max_results", cfg.Search.MaxResults).
		Msg("Application initialization complete")

	return app, nil
}

// Shutdown stops background services and releases resources.
func (a *App) Shutdown() {
	a.Logger.Info().Msg("Shutting down application...")

	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event service")
		}
	}

	a.cancelCtx()
	a.Logger.Info().Msg("Application shutdown complete")
}
