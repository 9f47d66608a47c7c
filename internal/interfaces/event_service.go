package interfaces

import "context"

// EventType identifies the kind of event flowing through the event service.
type EventType string

const (
	// EventSearchStarted fires when an aggregated search begins.
	EventSearchStarted EventType = "search_started"
	// EventSearchCompleted fires when an aggregated search returns results.
	EventSearchCompleted EventType = "search_completed"
	// EventSearchFailed fires when an aggregated search fails outright.
	EventSearchFailed EventType = "search_failed"
	// EventLocationSelected fires when a client selects a result marker.
	EventLocationSelected EventType = "location_selected"
)

// Event is a typed message with an arbitrary payload.
type Event struct {
	Type    EventType              `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

// EventHandler processes a published event.
type EventHandler func(ctx context.Context, event Event) error

// EventService is the in-process pub/sub channel between the search side
// and the renderer-facing WebSocket side.
type EventService interface {
	Subscribe(eventType EventType, handler EventHandler) error
	Publish(ctx context.Context, event Event) error
	PublishSync(ctx context.Context, event Event) error
	Close() error
}
