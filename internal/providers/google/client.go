// Package google implements the places provider adapter against the
// Google Maps web service APIs: text search, nearby search, find place,
// autocomplete, and directions. It owns the provider's page continuation
// protocol and its status vocabulary; callers see plain record lists.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/common"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://maps.googleapis.com"

// ErrProviderUnavailable indicates the provider client cannot issue any
// request at all (no API key configured). This is the only failure that
// propagates to callers as an error; per-call provider statuses degrade
// to empty results instead.
var ErrProviderUnavailable = interfaces.ErrProviderUnavailable

// Client is the process-wide provider client. It is reused across all
// searches and holds no search-specific mutable state; its configuration
// is read-only after construction.
type Client struct {
	config     *common.ProviderConfig
	logger     arbor.ILogger
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// Compile-time assertions: Client implements the provider interfaces
var (
	_ interfaces.PlacesProvider    = (*Client)(nil)
	_ interfaces.DirectionsService = (*Client)(nil)
)

// NewClient creates a provider client from configuration. A client with
// an empty API key is constructible but every call returns
// ErrProviderUnavailable.
func NewClient(config *common.ProviderConfig, logger arbor.ILogger) *Client {
	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = 200 * time.Millisecond
	}

	return &Client{
		config: config,
		logger: logger,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
		baseURL: defaultBaseURL,
	}
}

// TextSearch performs a paged Places text search, optionally biased to a
// center and radius and restricted to a provider type.
func (c *Client) TextSearch(ctx context.Context, query string, center *models.LatLng, radiusMeters float64, placeType string) ([]models.Place, error) {
	params := url.Values{}
	params.Set("query", query)
	if center != nil {
		params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
		if radiusMeters > 0 {
			params.Set("radius", fmt.Sprintf("%d", int(radiusMeters)))
		}
	}
	if placeType != "" {
		params.Set("type", placeType)
	}

	results, err := c.searchPaged(ctx, "/maps/api/place/textsearch/json", params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Str("type", placeType).
		Int("results_count", len(results)).
		Msg("Text search completed")

	return convertPlaces(results), nil
}

// NearbySearch performs a paged Places nearby search around center.
func (c *Client) NearbySearch(ctx context.Context, center models.LatLng, radiusMeters float64, placeType string) ([]models.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}
	params.Set("radius", fmt.Sprintf("%d", int(radiusMeters)))
	if placeType != "" {
		params.Set("type", placeType)
	}

	results, err := c.searchPaged(ctx, "/maps/api/place/nearbysearch/json", params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Float64("lat", center.Lat).
		Float64("lng", center.Lng).
		Str("type", placeType).
		Int("results_count", len(results)).
		Msg("Nearby search completed")

	return convertPlaces(results), nil
}

// FindPlace resolves a free-text query to candidate places via the Find
// Place From Text API. This endpoint is not paged.
func (c *Client) FindPlace(ctx context.Context, query string, center *models.LatLng, radiusMeters float64) ([]models.Place, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name,formatted_address,geometry,types,rating,user_ratings_total,photos")
	if center != nil && radiusMeters > 0 {
		params.Set("locationbias", fmt.Sprintf("circle:%d@%f,%f", int(radiusMeters), center.Lat, center.Lng))
	}

	var resp findPlaceResponse
	if err := c.get(ctx, "/maps/api/place/findplacefromtext/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusOK {
		c.warnStatus("find_place", resp.Status, resp.ErrorMessage)
		return nil, nil
	}

	return convertPlaces(resp.Candidates), nil
}

// Autocomplete returns text predictions for a partial input. All
// keystrokes sharing a session token are billed as one provider session.
func (c *Client) Autocomplete(ctx context.Context, input string, sessionToken string, center *models.LatLng) ([]models.Prediction, error) {
	params := url.Values{}
	params.Set("input", input)
	if sessionToken != "" {
		params.Set("sessiontoken", sessionToken)
	}
	if center != nil {
		params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
		params.Set("radius", "50000")
	}

	var resp autocompleteResponse
	if err := c.get(ctx, "/maps/api/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusOK {
		c.warnStatus("autocomplete", resp.Status, resp.ErrorMessage)
		return nil, nil
	}

	predictions := make([]models.Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predictions = append(predictions, models.Prediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return predictions, nil
}

// searchPaged issues a paged Places search and follows next_page_token
// continuations: while the provider indicates more pages and the
// accumulated count is under the configured cap, it waits the page delay
// and requests the next page.
func (c *Client) searchPaged(ctx context.Context, endpoint string, params url.Values) ([]placeResult, error) {
	maxResults := c.config.MaxPagedResults
	if maxResults <= 0 {
		maxResults = 60
	}

	var accumulated []placeResult
	pageToken := ""

	for {
		pageParams := url.Values{}
		for k, v := range params {
			pageParams[k] = v
		}
		if pageToken != "" {
			pageParams.Set("pagetoken", pageToken)
		}

		var resp searchResponse
		if err := c.get(ctx, endpoint, pageParams, &resp); err != nil {
			// A transport failure mid-pagination returns what was gathered.
			if len(accumulated) > 0 {
				c.logger.Warn().Err(err).
					Int("accumulated", len(accumulated)).
					Msg("Pagination aborted, returning partial results")
				return accumulated, nil
			}
			return nil, err
		}

		if resp.Status != StatusOK {
			if resp.Status != StatusZeroResults {
				c.warnStatus(endpoint, resp.Status, resp.ErrorMessage)
			}
			return accumulated, nil
		}

		accumulated = append(accumulated, resp.Results...)

		if resp.NextPageToken == "" || len(accumulated) >= maxResults {
			break
		}
		pageToken = resp.NextPageToken

		// The provider rejects a page token requested too soon.
		select {
		case <-ctx.Done():
			return accumulated, nil
		case <-time.After(c.config.PageDelay):
		}
	}

	if len(accumulated) > maxResults {
		accumulated = accumulated[:maxResults]
	}
	return accumulated, nil
}

// get performs one rate-limited provider request and decodes the JSON body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if c.config.APIKey == "" {
		return ErrProviderUnavailable
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("key", c.config.APIKey)
	if c.config.Language != "" {
		params.Set("language", c.config.Language)
	}
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// warnStatus logs a non-success provider status. These degrade to empty
// results rather than errors.
func (c *Client) warnStatus(operation, status, message string) {
	c.logger.Warn().
		Str("operation", operation).
		Str("status", status).
		Str("error_message", message).
		Msg("Provider returned non-OK status, treating as no results")
}

// convertPlaces maps wire results to domain records.
func convertPlaces(results []placeResult) []models.Place {
	places := make([]models.Place, 0, len(results))
	for _, r := range results {
		place := models.Place{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			Types:            r.Types,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
		}
		if place.FormattedAddress == "" {
			place.FormattedAddress = r.Vicinity
		}
		if r.Geometry != nil && r.Geometry.Location != nil {
			place.Location = models.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
		}
		for _, p := range r.Photos {
			if p.PhotoReference != "" {
				place.PhotoReferences = append(place.PhotoReferences, p.PhotoReference)
			}
		}
		places = append(places, place)
	}
	return places
}
