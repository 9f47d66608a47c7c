// Package category maps free-text search queries onto the closed set of
// application categories and translates categories into the provider's
// type vocabulary.
package category

import (
	"strings"

	"github.com/ternarybob/atlas/internal/models"
)

// classifyOrder fixes the priority in which keyword sets are tested;
// the first matching category wins.
var classifyOrder = []models.Category{
	models.CategoryRestaurant,
	models.CategoryHotel,
	models.CategoryAttraction,
	models.CategoryShopping,
	models.CategoryCafe,
}

var keywords = map[models.Category][]string{
	models.CategoryRestaurant: {
		"restaurant", "food", "eat", "dining", "dinner", "lunch", "breakfast",
		"sushi", "pizza", "burger", "noodle", "bbq", "steak",
	},
	models.CategoryHotel: {
		"hotel", "motel", "hostel", "lodging", "accommodation", "inn",
		"resort", "stay",
	},
	models.CategoryAttraction: {
		"attraction", "museum", "park", "tourist", "landmark", "monument",
		"gallery", "zoo", "sightseeing", "theater", "theatre",
	},
	models.CategoryShopping: {
		"shop", "shopping", "mall", "store", "market", "boutique", "outlet",
	},
	models.CategoryCafe: {
		"cafe", "coffee", "tea", "bakery", "espresso", "brunch",
	},
}

// providerTypes is the total category -> provider type mapping.
// Generic maps to the provider's broadest establishment type.
var providerTypes = map[models.Category]string{
	models.CategoryRestaurant: "restaurant",
	models.CategoryHotel:      "lodging",
	models.CategoryAttraction: "tourist_attraction",
	models.CategoryShopping:   "shopping_mall",
	models.CategoryCafe:       "cafe",
	models.CategoryGeneric:    "establishment",
}

// acceptedTags lists the provider type tags a result record may carry and
// still be kept for a given category. Generic has no entry: it accepts
// every tag set.
var acceptedTags = map[models.Category][]string{
	models.CategoryRestaurant: {"restaurant", "food", "meal_takeaway", "meal_delivery"},
	models.CategoryHotel:      {"lodging", "hotel"},
	models.CategoryAttraction: {"tourist_attraction", "museum", "park", "amusement_park", "zoo", "art_gallery", "point_of_interest"},
	models.CategoryShopping:   {"shopping_mall", "store", "department_store", "clothing_store", "supermarket"},
	models.CategoryCafe:       {"cafe", "bakery", "food"},
}

// Classify lowercases the query and returns the first category whose
// keyword set matches, in fixed priority order. Queries matching no
// keyword set classify as generic. Pure and deterministic.
func Classify(query string) models.Category {
	q := strings.ToLower(query)
	for _, cat := range classifyOrder {
		for _, kw := range keywords[cat] {
			if strings.Contains(q, kw) {
				return cat
			}
		}
	}
	return models.CategoryGeneric
}

// ProviderType returns the provider search type for a category.
// Unknown categories fall back to the generic establishment type.
func ProviderType(cat models.Category) string {
	if t, ok := providerTypes[cat]; ok {
		return t
	}
	return providerTypes[models.CategoryGeneric]
}

// AcceptsTags reports whether a record carrying the given provider type
// tags is acceptable for the category. True if at least one tag is in the
// category's accepted set; generic accepts everything.
func AcceptsTags(cat models.Category, tags []string) bool {
	accepted, ok := acceptedTags[cat]
	if !ok {
		return true
	}
	for _, tag := range tags {
		for _, a := range accepted {
			if tag == a {
				return true
			}
		}
	}
	return false
}
