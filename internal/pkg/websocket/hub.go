package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	jwtpkg "github.com/curbsidelabs/trucktrack/internal/pkg/jwt"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Hub manages WebSocket connections grouped into logical channels.
// Delivery is best-effort at-most-once: a subscriber that is not
// connected at publish time misses the event.
type Hub struct {
	sync.RWMutex
	channels map[string]map[*models.WebSocketClient]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewHub creates a new WebSocket hub
func NewHub(jwtConfig models.JWTConfig) *Hub {
	return &Hub{
		channels: make(map[string]map[*models.WebSocketClient]struct{}),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket
// connection, then delegates to handleClient until it returns.
func (h *Hub) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := h.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (h *Hub) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	} else {
		// Browser WebSocket clients cannot set headers; allow ?token=
		token = c.QueryParam("token")
	}

	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, h.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: fmt.Sprintf("%v", claims["user_id"]),
		Role:   fmt.Sprintf("%v", claims["role"]),
	}, nil
}

// Subscribe adds a client to a channel
func (h *Hub) Subscribe(client *models.WebSocketClient, channel string) {
	h.Lock()
	defer h.Unlock()

	subscribers, exists := h.channels[channel]
	if !exists {
		subscribers = make(map[*models.WebSocketClient]struct{})
		h.channels[channel] = subscribers
	}
	subscribers[client] = struct{}{}
	client.Channels = append(client.Channels, channel)
}

// Unsubscribe removes a client from all its channels
func (h *Hub) Unsubscribe(client *models.WebSocketClient) {
	h.Lock()
	defer h.Unlock()

	for _, channel := range client.Channels {
		if subscribers, exists := h.channels[channel]; exists {
			delete(subscribers, client)
			if len(subscribers) == 0 {
				delete(h.channels, channel)
			}
		}
	}
	client.Channels = nil
}

// SubscriberCount returns the number of clients on a channel
func (h *Hub) SubscriberCount(channel string) int {
	h.RLock()
	defer h.RUnlock()
	return len(h.channels[channel])
}

// Broadcast sends an event to every client subscribed to the channel.
// Send failures are logged and never propagated to the publisher.
func (h *Hub) Broadcast(channel string, event string, data interface{}) {
	h.RLock()
	subscribers := make([]*models.WebSocketClient, 0, len(h.channels[channel]))
	for client := range h.channels[channel] {
		subscribers = append(subscribers, client)
	}
	h.RUnlock()

	for _, client := range subscribers {
		if err := h.SendMessage(client, event, data); err != nil {
			logger.Warn("Error broadcasting to client",
				logger.String("user_id", client.UserID),
				logger.String("channel", channel),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket client. Writes are
// serialized per client so broadcasts cannot race read-loop replies.
func (h *Hub) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	return client.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (h *Hub) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return h.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
