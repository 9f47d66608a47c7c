package category

import (
	"testing"

	"github.com/ternarybob/atlas/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  models.Category
	}{
		{"sushi restaurant", models.CategoryRestaurant},
		{"best pizza in town", models.CategoryRestaurant},
		{"cheap hotel near airport", models.CategoryHotel},
		{"museum of modern art", models.CategoryAttraction},
		{"shopping mall", models.CategoryShopping},
		{"coffee", models.CategoryCafe},
		{"plumber", models.CategoryGeneric},
		{"", models.CategoryGeneric},
		{"SUSHI", models.CategoryRestaurant}, // case-insensitive
	}

	for _, tt := range tests {
		if got := Classify(tt.query); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "restaurant" is tested before "hotel", so a query matching both
	// classifies as restaurant.
	if got := Classify("hotel restaurant"); got != models.CategoryRestaurant {
		t.Errorf("Expected restaurant to win priority, got %v", got)
	}
}

func TestProviderType(t *testing.T) {
	tests := []struct {
		cat  models.Category
		want string
	}{
		{models.CategoryRestaurant, "restaurant"},
		{models.CategoryHotel, "lodging"},
		{models.CategoryAttraction, "tourist_attraction"},
		{models.CategoryShopping, "shopping_mall"},
		{models.CategoryCafe, "cafe"},
		{models.CategoryGeneric, "establishment"},
		{models.Category("bogus"), "establishment"},
	}

	for _, tt := range tests {
		if got := ProviderType(tt.cat); got != tt.want {
			t.Errorf("ProviderType(%v) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestAcceptsTags(t *testing.T) {
	tests := []struct {
		name string
		cat  models.Category
		tags []string
		want bool
	}{
		{"restaurant accepts restaurant+food", models.CategoryRestaurant, []string{"restaurant", "food"}, true},
		{"restaurant rejects lodging only", models.CategoryRestaurant, []string{"lodging"}, false},
		{"restaurant accepts takeaway", models.CategoryRestaurant, []string{"meal_takeaway", "point_of_interest"}, true},
		{"disjoint tag set rejected", models.CategoryHotel, []string{"cafe", "bakery"}, false},
		{"generic accepts anything", models.CategoryGeneric, []string{"florist"}, true},
		{"generic accepts empty", models.CategoryGeneric, nil, true},
		{"empty tags rejected for specific category", models.CategoryCafe, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AcceptsTags(tt.cat, tt.tags); got != tt.want {
				t.Errorf("AcceptsTags(%v, %v) = %v, want %v", tt.cat, tt.tags, got, tt.want)
			}
		})
	}
}
