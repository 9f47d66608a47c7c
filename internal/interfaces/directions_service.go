package interfaces

import (
	"context"

	"github.com/ternarybob/atlas/internal/models"
)

// DirectionsService fetches a provider-computed route between two
// endpoints. Atlas never computes routes itself.
type DirectionsService interface {
	Route(ctx context.Context, req models.DirectionsRequest) (*models.Route, error)
}
