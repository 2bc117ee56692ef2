package ws

import (
	"encoding/json"

	"xidach/internal/room"
)

// Dispatcher receives the decoded frames of every connection.
type Dispatcher interface {
	Dispatch(connID string, action room.Action, data json.RawMessage) error
	Disconnect(connID string)
}
