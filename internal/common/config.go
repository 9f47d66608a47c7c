package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Provider    ProviderConfig  `toml:"provider"`
	Search      SearchConfig    `toml:"search"`
	WebSocket   WebSocketConfig `toml:"websocket"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=debug info warn error"`
	Format     string   `toml:"format" validate:"oneof=json text"`
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// ProviderConfig contains the external places/directions provider settings.
type ProviderConfig struct {
	APIKey          string        `toml:"api_key"`           // Provider API key; empty means the provider is unavailable
	RateLimit       time.Duration `toml:"rate_limit"`        // Minimum time between provider requests
	RequestTimeout  time.Duration `toml:"request_timeout"`   // HTTP request timeout
	PageDelay       time.Duration `toml:"page_delay"`        // Delay before requesting a continuation page
	MaxPagedResults int           `toml:"max_paged_results" validate:"gt=0"` // Cap on records accumulated across pages per call
	Language        string        `toml:"language"`          // Optional provider response language
}

// SearchConfig contains search and suggestion behavior.
type SearchConfig struct {
	MaxResults      int           `toml:"max_results" validate:"gt=0"` // Maximum ranked results returned per search
	SuggestDebounce time.Duration `toml:"suggest_debounce"`            // Client debounce interval for live suggestions
	DefaultCenter   CenterConfig  `toml:"default_center"`              // Reference coordinate when no search is active
	DefaultZoom     int           `toml:"default_zoom"`
}

// CenterConfig is a bare coordinate pair for config use.
type CenterConfig struct {
	Lat float64 `toml:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `toml:"lng" validate:"gte=-180,lte=180"`
}

// WebSocketConfig contains configuration for the renderer event channel.
type WebSocketConfig struct {
	// Whitelist of event types to broadcast. Empty list allows all events.
	AllowedEvents []string `toml:"allowed_events"`
	// Throttle intervals for high-frequency events, event type -> duration string.
	ThrottleIntervals map[string]string `toml:"throttle_intervals"`
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability;
// only user-facing settings should be exposed in atlas.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Provider: ProviderConfig{
			APIKey:          "", // User must provide API key in config file or env
			RateLimit:       200 * time.Millisecond,
			RequestTimeout:  30 * time.Second,
			PageDelay:       200 * time.Millisecond, // Provider requires a pause before a page token becomes valid
			MaxPagedResults: 60,
			Language:        "",
		},
		Search: SearchConfig{
			MaxResults:      80,
			SuggestDebounce: 300 * time.Millisecond,
			DefaultCenter: CenterConfig{
				Lat: 40.7580, // Times Square
				Lng: -73.9855,
			},
			DefaultZoom: 13,
		},
		WebSocket: WebSocketConfig{
			AllowedEvents: []string{},
			ThrottleIntervals: map[string]string{
				"search_completed": "500ms",
			},
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier
// files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ATLAS_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("ATLAS_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ATLAS_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("ATLAS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("ATLAS_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	// Provider configuration. GOOGLE_MAPS_API_KEY is honored as the
	// conventional name; the ATLAS_ variable takes precedence.
	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		config.Provider.APIKey = apiKey
	}
	if apiKey := os.Getenv("ATLAS_PROVIDER_API_KEY"); apiKey != "" {
		config.Provider.APIKey = apiKey
	}
	if rateLimit := os.Getenv("ATLAS_PROVIDER_RATE_LIMIT"); rateLimit != "" {
		if d, err := time.ParseDuration(rateLimit); err == nil {
			config.Provider.RateLimit = d
		}
	}
	if timeout := os.Getenv("ATLAS_PROVIDER_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Provider.RequestTimeout = d
		}
	}

	// Search configuration
	if maxResults := os.Getenv("ATLAS_SEARCH_MAX_RESULTS"); maxResults != "" {
		if m, err := strconv.Atoi(maxResults); err == nil {
			config.Search.MaxResults = m
		}
	}
	if debounce := os.Getenv("ATLAS_SEARCH_SUGGEST_DEBOUNCE"); debounce != "" {
		if d, err := time.ParseDuration(debounce); err == nil {
			config.Search.SuggestDebounce = d
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
