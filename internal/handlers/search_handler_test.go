package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ternarybob/atlas/internal/interfaces"
	"github.com/ternarybob/atlas/internal/models"
)

// mockSearchService implements interfaces.SearchService for testing
type mockSearchService struct {
	searchFunc func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error)
}

func (m *mockSearchService) Search(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return nil, nil
}

// Helper function to create test ranked places
func createTestRankedPlace(id, name, address string, score float64, types ...string) models.RankedPlace {
	return models.RankedPlace{
		Place: models.Place{
			PlaceID:          id,
			Name:             name,
			FormattedAddress: address,
			Location:         models.LatLng{Lat: 40.7580, Lng: -73.9855},
			Types:            types,
		},
		Score: score,
	}
}

func TestSearchHandler_Success(t *testing.T) {
	ranked := []models.RankedPlace{
		createTestRankedPlace("1", "Joe's Pizza", "7 Carmine St", 0.98, "restaurant"),
		createTestRankedPlace("2", "Grand Hotel", "1 Main St", 0.95, "lodging"),
	}

	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			return ranked, nil
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=pizza", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response["query"] != "pizza" {
		t.Errorf("Expected query 'pizza', got %v", response["query"])
	}

	if int(response["count"].(float64)) != 2 {
		t.Errorf("Expected count 2, got %v", response["count"])
	}

	results := response["results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Display mapping is applied: tag-derived type and fields present
	result1 := results[0].(map[string]interface{})
	if result1["name"] != "Joe's Pizza" {
		t.Errorf("Expected name 'Joe's Pizza', got %v", result1["name"])
	}
	if result1["type"] != "restaurant" {
		t.Errorf("Expected type 'restaurant', got %v", result1["type"])
	}

	result2 := results[1].(map[string]interface{})
	if result2["type"] != "hotel" {
		t.Errorf("Expected type 'hotel', got %v", result2["type"])
	}
}

func TestSearchHandler_ParsesCenterAndBounds(t *testing.T) {
	var capturedReq models.SearchRequest
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			capturedReq = req
			return nil, nil
		},
	}

	handler := NewSearchHandler(mockService, nil)
	url := "/api/search?q=pizza&lat=40.7580&lng=-73.9855&sw_lat=40.70&sw_lng=-74.02&ne_lat=40.78&ne_lng=-73.95&category=restaurant"
	req := httptest.NewRequest("GET", url, nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if capturedReq.Center == nil {
		t.Fatal("Expected center to be parsed")
	}
	if capturedReq.Center.Lat != 40.7580 || capturedReq.Center.Lng != -73.9855 {
		t.Errorf("Unexpected center: %+v", capturedReq.Center)
	}

	if capturedReq.Bounds == nil {
		t.Fatal("Expected bounds to be parsed")
	}
	if capturedReq.Bounds.Southwest.Lat != 40.70 || capturedReq.Bounds.Northeast.Lng != -73.95 {
		t.Errorf("Unexpected bounds: %+v", capturedReq.Bounds)
	}

	if capturedReq.Category != models.CategoryRestaurant {
		t.Errorf("Expected category 'restaurant', got %q", capturedReq.Category)
	}
}

func TestSearchHandler_PartialBoundsIgnored(t *testing.T) {
	var capturedReq models.SearchRequest
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			capturedReq = req
			return nil, nil
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=pizza&sw_lat=40.70&sw_lng=-74.02", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if capturedReq.Bounds != nil {
		t.Errorf("Expected partial bounds to be ignored, got %+v", capturedReq.Bounds)
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			return []models.RankedPlace{}, nil
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=nonexistent", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&response)

	if int(response["count"].(float64)) != 0 {
		t.Errorf("Expected count 0, got %v", response["count"])
	}
}

func TestSearchHandler_ServiceError(t *testing.T) {
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			return nil, &mockError{msg: "upstream timeout"}
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=pizza", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}

	if response["status"] != "error" {
		t.Errorf("Expected status 'error', got %v", response["status"])
	}
}

func TestSearchHandler_ProviderUnavailable(t *testing.T) {
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			return nil, interfaces.ErrProviderUnavailable
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=pizza", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestSearchHandler_FallbackLiterals(t *testing.T) {
	mockService := &mockSearchService{
		searchFunc: func(ctx context.Context, req models.SearchRequest) ([]models.RankedPlace, error) {
			return []models.RankedPlace{createTestRankedPlace("1", "", "", 0.5)}, nil
		},
	}

	handler := NewSearchHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/search?q=pizza", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	var response map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&response)

	results := response["results"].([]interface{})
	result := results[0].(map[string]interface{})
	if result["name"] != "Unknown Location" {
		t.Errorf("Expected fallback name, got %v", result["name"])
	}
	if result["address"] != "No address available" {
		t.Errorf("Expected fallback address, got %v", result["address"])
	}
	if result["type"] != "other" {
		t.Errorf("Expected fallback type 'other', got %v", result["type"])
	}
}

// mockError implements error interface for testing
type mockError struct {
	msg string
}

func (e *mockError) Error() string {
	return e.msg
}
