package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/atlas/internal/interfaces"
)

// mockEventService implements interfaces.EventService for testing
type mockEventService struct {
	publishFunc func(ctx context.Context, event interfaces.Event) error
	published   []interfaces.Event
}

func (m *mockEventService) Subscribe(eventType interfaces.EventType, handler interfaces.EventHandler) error {
	return nil
}

func (m *mockEventService) Publish(ctx context.Context, event interfaces.Event) error {
	m.published = append(m.published, event)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, event)
	}
	return nil
}

func (m *mockEventService) PublishSync(ctx context.Context, event interfaces.Event) error {
	return m.Publish(ctx, event)
}

func (m *mockEventService) Close() error {
	return nil
}

func TestSelectHandler_PublishesEvent(t *testing.T) {
	events := &mockEventService{}
	handler := NewLocationHandler(events, nil)

	body := `{"id":"place-1","name":"Joe's Pizza","lat":40.7305,"lng":-74.0021}`
	req := httptest.NewRequest("POST", "/api/locations/select", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SelectHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	if len(events.published) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(events.published))
	}

	event := events.published[0]
	if event.Type != interfaces.EventLocationSelected {
		t.Errorf("Expected event type 'location_selected', got %q", event.Type)
	}
	if event.Payload["name"] != "Joe's Pizza" {
		t.Errorf("Expected name in payload, got %v", event.Payload["name"])
	}
	if event.Payload["lat"] != 40.7305 {
		t.Errorf("Expected lat in payload, got %v", event.Payload["lat"])
	}
}

func TestSelectHandler_InvalidBody(t *testing.T) {
	events := &mockEventService{}
	handler := NewLocationHandler(events, nil)

	req := httptest.NewRequest("POST", "/api/locations/select", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.SelectHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
	if len(events.published) != 0 {
		t.Errorf("Expected no events published, got %d", len(events.published))
	}
}

func TestSelectHandler_MissingIdentity(t *testing.T) {
	events := &mockEventService{}
	handler := NewLocationHandler(events, nil)

	req := httptest.NewRequest("POST", "/api/locations/select", strings.NewReader(`{"lat":1,"lng":2}`))
	rec := httptest.NewRecorder()

	handler.SelectHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSelectHandler_MethodNotAllowed(t *testing.T) {
	events := &mockEventService{}
	handler := NewLocationHandler(events, nil)

	req := httptest.NewRequest("GET", "/api/locations/select", nil)
	rec := httptest.NewRecorder()

	handler.SelectHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}
