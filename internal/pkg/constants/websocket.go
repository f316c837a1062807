package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Location events
	EventLocationUpdated = "location_updated"

	// Live tracking session events
	EventTrackingStarted = "tracking_started"
	EventTrackingStopped = "tracking_stopped"

	// Truck-level events
	EventStatusUpdated = "status_updated"

	// Owner-directed events
	EventCustomerSighting = "customer_sighting"
)

// WebSocket channels
const (
	// ChannelCustomers receives every truck's public events.
	ChannelCustomers = "customers"

	// ChannelTruckPrefix + truckID is the owner-directed channel.
	ChannelTruckPrefix = "truck_"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorForbidden        = "forbidden"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
)
