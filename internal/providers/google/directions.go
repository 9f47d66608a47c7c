package google

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ternarybob/atlas/internal/models"
)

// Route fetches a provider-computed route between two endpoints. Distance
// and duration are summed across the route's legs; no routing happens
// locally. A routable-but-empty response (no route found) returns nil
// without an error.
func (c *Client) Route(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
	if !models.ValidTravelMode(req.Mode) {
		return nil, fmt.Errorf("unsupported travel mode: %s", req.Mode)
	}

	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("mode", string(req.Mode))

	var resp directionsResponse
	if err := c.get(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusOK || len(resp.Routes) == 0 {
		if resp.Status != StatusZeroResults && resp.Status != "NOT_FOUND" {
			c.warnStatus("directions", resp.Status, resp.ErrorMessage)
		}
		return nil, nil
	}

	// Provider orders alternatives best-first; take the first.
	best := resp.Routes[0]

	result := &models.Route{
		Summary:  best.Summary,
		Polyline: best.OverviewPolyline.Points,
	}
	for _, l := range best.Legs {
		result.DistanceMeters += l.Distance.Value
		result.DurationSeconds += l.Duration.Value
	}
	if len(best.Legs) > 0 {
		first := best.Legs[0]
		last := best.Legs[len(best.Legs)-1]
		result.StartAddress = first.StartAddress
		result.EndAddress = last.EndAddress
		if first.StartLocation != nil {
			result.Start = &models.LatLng{Lat: first.StartLocation.Lat, Lng: first.StartLocation.Lng}
		}
		if last.EndLocation != nil {
			result.End = &models.LatLng{Lat: last.EndLocation.Lat, Lng: last.EndLocation.Lng}
		}
	}

	c.logger.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("mode", string(req.Mode)).
		Int("distance_meters", result.DistanceMeters).
		Int("duration_seconds", result.DurationSeconds).
		Msg("Directions completed")

	return result, nil
}
