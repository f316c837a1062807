package handler

import (
	"net/http"

	"github.com/curbsidelabs/trucktrack/internal/pkg/middleware"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	natspkg "github.com/curbsidelabs/trucktrack/internal/pkg/nats"
	ws "github.com/curbsidelabs/trucktrack/internal/pkg/websocket"
	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	httphandler "github.com/curbsidelabs/trucktrack/services/tracking/handler/http"
	nsqhandler "github.com/curbsidelabs/trucktrack/services/tracking/handler/nsq"
	wshandler "github.com/curbsidelabs/trucktrack/services/tracking/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler combines all transport handlers of the tracking service.
type Handler struct {
	tracking *httphandler.TrackingHandler
	ws       *wshandler.WebSocketHandler
	nats     *NatsHandler
	social   *nsqhandler.SocialConsumer
	cfg      *models.Config
}

// NewHandler creates the combined tracking handler. The NSQ consumer is
// optional: a nil social consumer disables the feed without affecting
// HTTP and WebSocket surfaces.
func NewHandler(
	trackingUC tracking.TrackingUC,
	hub *ws.Hub,
	natsClient *natspkg.Client,
	social *nsqhandler.SocialConsumer,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tracking: httphandler.NewTrackingHandler(trackingUC),
		ws:       wshandler.NewWebSocketHandler(hub, trackingUC),
		nats:     NewNatsHandler(natsClient, hub),
		social:   social,
		cfg:      cfg,
	}
}

// InitConsumers starts the NATS event bridge
func (h *Handler) InitConsumers() error {
	return h.nats.InitConsumers()
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	trucks := e.Group("/trucks")

	// Public queries
	trucks.GET("/nearby", h.tracking.NearbyTrucks)
	trucks.GET("/:id/location", h.tracking.GetCurrentLocation)
	trucks.GET("/:id/location/history", h.tracking.GetLocationHistory)
	trucks.GET("/:id/location/state", h.tracking.GetLocationState)

	// Authenticated submissions
	authed := trucks.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	authed.POST("/:id/location/checkin", h.tracking.OwnerCheckin)
	authed.POST("/:id/location/gps", h.tracking.LiveGPSPing)
	authed.POST("/:id/location/report", h.tracking.CustomerReport)
	authed.POST("/:id/location/override", h.tracking.AdminOverride,
		middleware.RequireRole(middleware.RoleAdmin))
	authed.POST("/:id/tracking/start", h.tracking.StartTracking)
	authed.POST("/:id/tracking/stop", h.tracking.StopTracking)
	authed.PATCH("/:id/status", h.tracking.SetStatus)

	// WebSocket subscriptions (token via header or query param)
	e.GET("/ws/customers", h.ws.HandleCustomers)
	e.GET("/ws/trucks/:id", h.ws.HandleTruckChannel)

	// Internal job surface
	internal := e.Group("/internal", middleware.ValidateAPIKey("social-scraper"))
	internal.POST("/trucks/:id/location/social", h.tracking.SocialUpdate)
}

// Health reports service liveness
func (h *Handler) Health(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Service is healthy", map[string]string{
		"service": h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}

// Shutdown stops background consumers
func (h *Handler) Shutdown() {
	h.nats.Close()
	if h.social != nil {
		h.social.Stop()
	}
}
