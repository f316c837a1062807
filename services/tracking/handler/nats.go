package handler

import (
	"encoding/json"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	natspkg "github.com/curbsidelabs/trucktrack/internal/pkg/nats"
	ws "github.com/curbsidelabs/trucktrack/internal/pkg/websocket"
	"github.com/nats-io/nats.go"
)

// NatsHandler bridges published tracking events to the WebSocket hub.
// It is the only component that fans events out to subscribers, so a
// dropped subscription means subscribers silently stop receiving.
type NatsHandler struct {
	client *natspkg.Client
	hub    *ws.Hub
	subs   []*nats.Subscription
}

// NewNatsHandler creates a new NATS event handler
func NewNatsHandler(client *natspkg.Client, hub *ws.Hub) *NatsHandler {
	return &NatsHandler{
		client: client,
		hub:    hub,
	}
}

// InitConsumers subscribes to all tracking subjects
func (h *NatsHandler) InitConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectLocationUpdated: h.handleLocationUpdated,
		constants.SubjectTrackingStarted: h.handleTrackingStarted,
		constants.SubjectTrackingStopped: h.handleTrackingStopped,
		constants.SubjectTruckStatus:     h.handleTruckStatus,
		constants.SubjectTruckSighting:   h.handleTruckSighting,
	}

	for subject, handlerFn := range subjects {
		sub, err := h.client.Subscribe(subject, handlerFn)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}
	return nil
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *NatsHandler) handleLocationUpdated(msg *nats.Msg) {
	var event models.LocationUpdatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal location update",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.hub.Broadcast(constants.ChannelCustomers, constants.EventLocationUpdated, event)
}

func (h *NatsHandler) handleTrackingStarted(msg *nats.Msg) {
	h.broadcastSessionEvent(msg, constants.EventTrackingStarted)
}

func (h *NatsHandler) handleTrackingStopped(msg *nats.Msg) {
	h.broadcastSessionEvent(msg, constants.EventTrackingStopped)
}

func (h *NatsHandler) broadcastSessionEvent(msg *nats.Msg, event string) {
	var session models.TrackingSessionEvent
	if err := json.Unmarshal(msg.Data, &session); err != nil {
		logger.Error("Failed to unmarshal tracking session event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.hub.Broadcast(constants.ChannelCustomers, event, session)
}

func (h *NatsHandler) handleTruckStatus(msg *nats.Msg) {
	var status models.TruckStatusEvent
	if err := json.Unmarshal(msg.Data, &status); err != nil {
		logger.Error("Failed to unmarshal truck status event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.hub.Broadcast(constants.ChannelCustomers, constants.EventStatusUpdated, status)
}

// handleTruckSighting delivers customer sighting notices to the
// owner-directed channel only, never to the public customer feed.
func (h *NatsHandler) handleTruckSighting(msg *nats.Msg) {
	var notice models.SightingNotice
	if err := json.Unmarshal(msg.Data, &notice); err != nil {
		logger.Error("Failed to unmarshal sighting notice",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.hub.Broadcast(constants.ChannelTruckPrefix+notice.TruckID, constants.EventCustomerSighting, notice)
}
