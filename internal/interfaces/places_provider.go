package interfaces

import (
	"context"

	"github.com/ternarybob/atlas/internal/models"
)

// PlacesProvider wraps the external places service behind the three search
// operations the aggregator fans out over, plus autocomplete. Each
// operation exhausts the provider's page continuation protocol internally
// and returns the accumulated records.
//
// A non-success provider status is not an error: the call resolves to an
// empty (or partial) list and is reported via a warning log. Only a
// structurally unavailable provider (no API key, client not constructed)
// returns an error.
type PlacesProvider interface {
	// TextSearch runs a free-text search, optionally biased to a center
	// and radius and restricted to a provider type.
	TextSearch(ctx context.Context, query string, center *models.LatLng, radiusMeters float64, placeType string) ([]models.Place, error)

	// NearbySearch returns places of the given type around center.
	NearbySearch(ctx context.Context, center models.LatLng, radiusMeters float64, placeType string) ([]models.Place, error)

	// FindPlace resolves a query to candidate places, optionally biased
	// to a center and radius.
	FindPlace(ctx context.Context, query string, center *models.LatLng, radiusMeters float64) ([]models.Place, error)

	// Autocomplete returns text predictions for a partial input. The
	// session token groups keystrokes of one user session for provider
	// billing purposes.
	Autocomplete(ctx context.Context, input string, sessionToken string, center *models.LatLng) ([]models.Prediction, error)
}
