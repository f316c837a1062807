package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	ws "github.com/curbsidelabs/trucktrack/internal/pkg/websocket"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WebSocketHandler exposes the hub's subscription endpoints.
type WebSocketHandler struct {
	hub        *ws.Hub
	trackingUC tracking.TrackingUC
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub, trackingUC tracking.TrackingUC) *WebSocketHandler {
	return &WebSocketHandler{
		hub:        hub,
		trackingUC: trackingUC,
	}
}

// HandleCustomers subscribes a customer client to all trucks' events
func (h *WebSocketHandler) HandleCustomers(c echo.Context) error {
	return h.hub.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		h.hub.Subscribe(client, constants.ChannelCustomers)
		defer h.hub.Unsubscribe(client)

		logger.Debug("Customer client connected",
			logger.String("user_id", client.UserID))

		return h.readLoop(client, conn)
	})
}

// HandleTruckChannel subscribes a truck owner to their owner-directed
// channel. Ownership is verified before the subscription is added.
func (h *WebSocketHandler) HandleTruckChannel(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "truck id is required")
	}

	return h.hub.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		owns, err := h.trackingUC.IsOwner(c.Request().Context(), client.UserID, truckID)
		if err != nil {
			return h.hub.SendErrorMessage(client, constants.ErrorInternalError, "ownership check failed")
		}
		if !owns {
			return h.hub.SendErrorMessage(client, constants.ErrorForbidden, "caller does not own this truck")
		}

		h.hub.Subscribe(client, constants.ChannelTruckPrefix+truckID)
		defer h.hub.Unsubscribe(client)

		return h.readLoop(client, conn)
	})
}

// readLoop drains client messages until the connection closes. The
// only inbound message customers send is a ping.
func (h *WebSocketHandler) readLoop(client *models.WebSocketClient, conn *websocket.Conn) error {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			// Normal disconnect path
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if err := h.hub.SendErrorMessage(client, constants.ErrorInvalidFormat, "invalid message format"); err != nil {
				return nil
			}
			continue
		}

		switch msg.Event {
		case constants.EventPing:
			if err := h.hub.SendMessage(client, constants.EventPong, nil); err != nil {
				return nil
			}
		default:
			if err := h.hub.SendErrorMessage(client, constants.ErrorInvalidFormat, "unsupported event"); err != nil {
				return nil
			}
		}
	}
}
