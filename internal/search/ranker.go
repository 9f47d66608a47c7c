package search

import (
	"sort"

	"github.com/ternarybob/atlas/internal/geo"
	"github.com/ternarybob/atlas/internal/models"
)

// scoreFalloffKm is the distance at which a result's proximity score
// reaches zero.
const scoreFalloffKm = 50.0

// Score computes the proximity score for a place relative to center:
// a linear falloff from 1 at zero distance to 0 at 50 km and beyond.
// A nil center scores everything zero. Popularity (provider rating) is
// deliberately not weighted.
func Score(place models.Place, center *models.LatLng) float64 {
	if center == nil {
		return 0
	}
	s := 1 - geo.DistanceKm(place.Location, *center)/scoreFalloffKm
	if s < 0 {
		return 0
	}
	return s
}

// Rank scores places against center and orders them score-descending.
// The sort is stable: equally scored records keep their arrival order.
func Rank(places []models.Place, center *models.LatLng) []models.RankedPlace {
	ranked := make([]models.RankedPlace, 0, len(places))
	for _, p := range places {
		ranked = append(ranked, models.RankedPlace{
			Place: p,
			Score: Score(p, center),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
