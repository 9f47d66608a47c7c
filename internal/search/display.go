package search

// Display type assignment tests provider tags in fixed priority order;
// the fallback literals match what the renderer expects for records the
// provider returned incomplete.

import (
	"github.com/ternarybob/atlas/internal/models"
)

const (
	defaultName    = "Unknown Location"
	defaultAddress = "No address available"
)

// displayTypeRules map provider tags to display types in priority order.
var displayTypeRules = []struct {
	tags        []string
	displayType string
}{
	{[]string{"restaurant", "food"}, "restaurant"},
	{[]string{"lodging", "hotel"}, "hotel"},
	{[]string{"tourist_attraction", "point_of_interest"}, "attraction"},
	{[]string{"establishment", "store"}, "business"},
}

// ToDisplayLocation converts a ranked place into the display-ready record
// consumed by the map renderer. Total: it never fails, substituting
// fallbacks for missing fields.
func ToDisplayLocation(r models.RankedPlace) models.DisplayLocation {
	loc := models.DisplayLocation{
		ID:      r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Type:    displayType(r.Types),
		Lat:     r.Location.Lat,
		Lng:     r.Location.Lng,
		Rating:  r.Rating,
		Score:   r.Score,
	}
	if loc.Name == "" {
		loc.Name = defaultName
	}
	if loc.Address == "" {
		loc.Address = defaultAddress
	}
	return loc
}

// ToDisplayLocations converts a ranked result list, preserving order.
func ToDisplayLocations(ranked []models.RankedPlace) []models.DisplayLocation {
	out := make([]models.DisplayLocation, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, ToDisplayLocation(r))
	}
	return out
}

func displayType(tags []string) string {
	for _, rule := range displayTypeRules {
		for _, want := range rule.tags {
			for _, tag := range tags {
				if tag == want {
					return rule.displayType
				}
			}
		}
	}
	return "other"
}
