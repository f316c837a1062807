package constants

// NATS Subjects
const (
	// Tracking events
	SubjectLocationUpdated = "location.updated"
	SubjectTrackingStarted = "tracking.started"
	SubjectTrackingStopped = "tracking.stopped"
	SubjectTruckStatus     = "truck.status"

	// Owner-directed notices
	SubjectTruckSighting = "truck.sighting"
)
