package common

import (
	"github.com/google/uuid"
)

// NewSessionToken generates an autocomplete session token. The provider
// bills all autocomplete keystrokes sharing a token as one session.
func NewSessionToken() string {
	return uuid.New().String()
}

// NewSearchID generates a unique ID for one aggregated search, used to
// correlate lifecycle events. Format: search_<uuid>
func NewSearchID() string {
	return "search_" + uuid.New().String()
}
