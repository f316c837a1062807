package models

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is one connected subscriber and the channels it joined.
type WebSocketClient struct {
	UserID   string
	Role     string
	Channels []string
	Conn     *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON writes one message to the connection. gorilla/websocket
// allows at most one concurrent writer per connection, so all writes
// (broadcasts and read-loop replies) must go through here. A nil
// connection is a no-op.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	if c.Conn == nil {
		return nil
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}
