package search

import (
	"context"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
)

// Suggester implements SuggestService on top of the provider's
// autocomplete endpoint. Each prediction is resolved to a concrete place
// so the renderer can pan to it directly when chosen.
type Suggester struct {
	provider interfaces.PlacesProvider
	logger   arbor.ILogger
}

// Compile-time assertion: Suggester implements SuggestService
var _ interfaces.SuggestService = (*Suggester)(nil)

// NewSuggester creates the suggestion service.
func NewSuggester(provider interfaces.PlacesProvider, logger arbor.ILogger) *Suggester {
	return &Suggester{
		provider: provider,
		logger:   logger,
	}
}

// Suggest returns autocomplete suggestions for a partial input. A blank
// input returns an empty list without calling the provider. Resolution
// failures leave the suggestion text-only rather than dropping it.
func (s *Suggester) Suggest(ctx context.Context, input string, sessionToken string, center *models.LatLng) ([]models.Suggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []models.Suggestion{}, nil
	}

	predictions, err := s.provider.Autocomplete(ctx, input, sessionToken, center)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(predictions))
	for _, p := range predictions {
		suggestion := models.Suggestion{Description: p.Description}

		places, err := s.provider.FindPlace(ctx, p.Description, center, 0)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("description", p.Description).
				Msg("Failed to resolve suggestion to a place")
		} else if len(places) > 0 {
			place := places[0]
			suggestion.Place = &place
		}

		suggestions = append(suggestions, suggestion)
	}

	s.logger.Debug().
		Str("input", input).
		Int("suggestions", len(suggestions)).
		Msg("Autocomplete suggestions resolved")

	return suggestions, nil
}
