// Package search implements the multi-strategy place search pipeline:
// it fans out several provider queries concurrently, merges the results
// through a deterministic dedup/filter pass, ranks by proximity to the
// viewport center, and maps records into display form for the renderer.
package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/category"
	"github.com/ternarybob/atlas/internal/common"
	"github.com/ternarybob/atlas/internal/geo"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
	"golang.org/x/sync/errgroup"
)

// queryQualifiers are the generic variants appended/prepended to the raw
// query to widen provider coverage.
var queryQualifiers = []string{"near me", "best", "top", "popular"}

// Aggregator implements SearchService. One Aggregator is shared across
// requests; each Search call owns its own accumulator and dedup set, so
// concurrent searches never share state.
type Aggregator struct {
	provider   interfaces.PlacesProvider
	events     interfaces.EventService
	logger     arbor.ILogger
	maxResults int
}

// Compile-time assertion: Aggregator implements SearchService
var _ interfaces.SearchService = (*Aggregator)(nil)

// NewAggregator creates the search aggregator.
func NewAggregator(provider interfaces.PlacesProvider, events interfaces.EventService, cfg *common.SearchConfig, logger arbor.ILogger) *Aggregator {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 80
	}
	return &Aggregator{
		provider:   provider,
		events:     events,
		logger:     logger,
		maxResults: maxResults,
	}
}

// strategy is one distinct provider query launched as part of an
// aggregated search.
type strategy struct {
	name string
	run  func(ctx context.Context) ([]models.Place, error)
}

// Search runs the full pipeline for one request. A blank query
// short-circuits to an empty result without touching the provider.
// Individual strategy failures are isolated; only a structurally
// unavailable provider fails the search as a whole.
func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return []models.RankedPlace{}, nil
	}

	cat := req.Category
	if cat == "" {
		cat = category.Classify(query)
	}
	providerType := category.ProviderType(cat)
	radius := geo.BoundsRadiusMeters(req.Bounds)

	searchID := common.NewSearchID()
	a.publishEvent(interfaces.EventSearchStarted, map[string]interface{}{
		"search_id": searchID,
		"query":     query,
		"category":  string(cat),
	})

	a.logger.Info().
		Str("search_id", searchID).
		Str("query", query).
		Str("category", string(cat)).
		Str("provider_type", providerType).
		Float64("radius_meters", radius).
		Msg("Starting aggregated place search")

	strategies := a.buildStrategies(query, cat, providerType, radius, req.Center)

	// Fan out: every strategy runs concurrently and writes into its own
	// slot, so the merge below is deterministic regardless of completion
	// order.
	results := make([][]models.Place, len(strategies))
	failures := make([]error, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			places, err := s.run(gctx)
			if err != nil {
				if errors.Is(err, interfaces.ErrProviderUnavailable) {
					return err
				}
				a.logger.Warn().
					Err(err).
					Str("search_id", searchID).
					Str("strategy", s.name).
					Msg("Search strategy failed, continuing with others")
				failures[i] = err
				return nil
			}
			results[i] = places
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.publishEvent(interfaces.EventSearchFailed, map[string]interface{}{
			"search_id": searchID,
			"query":     query,
			"error":     err.Error(),
		})
		return nil, err
	}

	merged := a.merge(results, cat, req.Bounds)

	ranked := Rank(merged, req.Center)
	if len(ranked) > a.maxResults {
		ranked = ranked[:a.maxResults]
	}

	failedCount := 0
	for _, err := range failures {
		if err != nil {
			failedCount++
		}
	}

	a.publishEvent(interfaces.EventSearchCompleted, map[string]interface{}{
		"search_id":    searchID,
		"query":        query,
		"result_count": len(ranked),
	})

	a.logger.Info().
		Str("search_id", searchID).
		Int("strategies", len(strategies)).
		Int("strategies_failed", failedCount).
		Int("merged", len(merged)).
		Int("returned", len(ranked)).
		Msg("Aggregated place search completed")

	return ranked, nil
}

// buildStrategies assembles the fixed battery of provider calls for one
// search. Strategies requiring a reference point are skipped when center
// is absent.
func (a *Aggregator) buildStrategies(query string, cat models.Category, providerType string, radius float64, center *models.LatLng) []strategy {
	strategies := []strategy{
		{
			name: "text_search",
			run: func(ctx context.Context) ([]models.Place, error) {
				return a.provider.TextSearch(ctx, query, center, radius, "")
			},
		},
	}

	// Nearby search only makes sense with a reference point and a
	// category-specific type; the generic establishment type would match
	// everything around the center.
	if center != nil && cat != models.CategoryGeneric {
		c := *center
		strategies = append(strategies, strategy{
			name: "nearby_search",
			run: func(ctx context.Context) ([]models.Place, error) {
				return a.provider.NearbySearch(ctx, c, radius, providerType)
			},
		})
	}

	strategies = append(strategies, strategy{
		name: "find_place",
		run: func(ctx context.Context) ([]models.Place, error) {
			return a.provider.FindPlace(ctx, query, center, radius)
		},
	})

	for _, variant := range queryVariants(query, cat) {
		strategies = append(strategies, strategy{
			name: "text_search_variant:" + variant,
			run: func(ctx context.Context) ([]models.Place, error) {
				return a.provider.TextSearch(ctx, variant, center, radius, "")
			},
		})
	}

	return strategies
}

// queryVariants produces the widened query set: generic qualifiers plus a
// category-suffix variant when the category adds information.
func queryVariants(query string, cat models.Category) []string {
	variants := []string{
		query + " " + queryQualifiers[0], // "<q> near me"
		queryQualifiers[1] + " " + query, // "best <q>"
		queryQualifiers[2] + " " + query, // "top <q>"
		queryQualifiers[3] + " " + query, // "popular <q>"
	}

	if cat != models.CategoryGeneric {
		suffix := string(cat)
		if !strings.Contains(strings.ToLower(query), suffix) {
			variants = append(variants, query+" "+suffix)
		}
	}

	return variants
}

// merge performs the single deterministic dedup/filter pass over the
// per-strategy result slices, in strategy launch order. First occurrence
// of a place ID wins; later duplicates never update the kept record.
// Records without an ID are treated as always-new. A record is kept only
// if its tag set is acceptable for the category and it lies within the
// viewport bounds.
func (a *Aggregator) merge(results [][]models.Place, cat models.Category, bounds *models.Bounds) []models.Place {
	seen := make(map[string]bool)
	var merged []models.Place

	for _, places := range results {
		for _, p := range places {
			if p.PlaceID != "" && seen[p.PlaceID] {
				continue
			}
			if !category.AcceptsTags(cat, p.Types) {
				continue
			}
			if !geo.WithinBounds(p.Location, bounds) {
				continue
			}
			if p.PlaceID != "" {
				seen[p.PlaceID] = true
			}
			merged = append(merged, p)
		}
	}

	return merged
}

// publishEvent publishes a search lifecycle event, if an event service is
// wired.
func (a *Aggregator) publishEvent(eventType interfaces.EventType, payload map[string]interface{}) {
	if a.events == nil {
		return
	}
	payload["timestamp"] = time.Now().Format(time.RFC3339)
	if err := a.events.Publish(context.Background(), interfaces.Event{Type: eventType, Payload: payload}); err != nil {
		a.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish event")
	}
}
