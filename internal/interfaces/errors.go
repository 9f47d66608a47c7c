package interfaces

import "errors"

// ErrProviderUnavailable indicates the external places provider cannot be
// reached structurally (no API key, client never constructed). It is the
// only provider failure that propagates out of a search as an error;
// individual failed strategies degrade to zero records instead.
var ErrProviderUnavailable = errors.New("places provider unavailable")
