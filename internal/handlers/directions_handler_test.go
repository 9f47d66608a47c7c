package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ternarybob/atlas/internal/models"
)

// mockDirectionsService implements interfaces.DirectionsService for testing
type mockDirectionsService struct {
	routeFunc func(ctx context.Context, req models.DirectionsRequest) (*models.Route, error)
}

func (m *mockDirectionsService) Route(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
	if m.routeFunc != nil {
		return m.routeFunc(ctx, req)
	}
	return nil, nil
}

func TestDirectionsHandler_Success(t *testing.T) {
	var capturedReq models.DirectionsRequest
	mockService := &mockDirectionsService{
		routeFunc: func(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
			capturedReq = req
			return &models.Route{
				Summary:         "Broadway",
				DistanceMeters:  1200,
				DurationSeconds: 300,
			}, nil
		},
	}

	handler := NewDirectionsHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/directions?origin=Times+Square&destination=Empire+State+Building&mode=walking", nil)
	rec := httptest.NewRecorder()

	handler.DirectionsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	if capturedReq.Mode != models.TravelModeWalking {
		t.Errorf("Expected mode 'walking', got %q", capturedReq.Mode)
	}

	var response map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&response)

	if response["found"] != true {
		t.Errorf("Expected found=true, got %v", response["found"])
	}

	route := response["route"].(map[string]interface{})
	if int(route["distance_meters"].(float64)) != 1200 {
		t.Errorf("Expected distance 1200, got %v", route["distance_meters"])
	}
}

func TestDirectionsHandler_DefaultsToDriving(t *testing.T) {
	var capturedReq models.DirectionsRequest
	mockService := &mockDirectionsService{
		routeFunc: func(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
			capturedReq = req
			return nil, nil
		},
	}

	handler := NewDirectionsHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/directions?origin=A&destination=B", nil)
	rec := httptest.NewRecorder()

	handler.DirectionsHandler(rec, req)

	if capturedReq.Mode != models.TravelModeDriving {
		t.Errorf("Expected default mode 'driving', got %q", capturedReq.Mode)
	}
}

func TestDirectionsHandler_MissingParams(t *testing.T) {
	handler := NewDirectionsHandler(&mockDirectionsService{}, nil)
	req := httptest.NewRequest("GET", "/api/directions?origin=A", nil)
	rec := httptest.NewRecorder()

	handler.DirectionsHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDirectionsHandler_InvalidMode(t *testing.T) {
	handler := NewDirectionsHandler(&mockDirectionsService{}, nil)
	req := httptest.NewRequest("GET", "/api/directions?origin=A&destination=B&mode=teleport", nil)
	rec := httptest.NewRecorder()

	handler.DirectionsHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDirectionsHandler_NoRouteFound(t *testing.T) {
	mockService := &mockDirectionsService{
		routeFunc: func(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
			return nil, nil
		},
	}

	handler := NewDirectionsHandler(mockService, nil)
	req := httptest.NewRequest("GET", "/api/directions?origin=A&destination=B", nil)
	rec := httptest.NewRecorder()

	handler.DirectionsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&response)

	if response["found"] != false {
		t.Errorf("Expected found=false, got %v", response["found"])
	}
}
