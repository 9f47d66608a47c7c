package interfaces

import (
	"context"

	"github.com/ternarybob/atlas/internal/models"
)

// SearchService runs one aggregated multi-strategy place search and
// returns the deduplicated, proximity-ranked result list.
type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error)
}

// SuggestService resolves partial input into full place suggestions.
type SuggestService interface {
	Suggest(ctx context.Context, input string, sessionToken string, center *models.LatLng) ([]models.Suggestion, error)
}
