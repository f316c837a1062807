package models

import "time"

// LocationUpdatedEvent is published when a report is accepted as the
// truck's current location. Exactly one event per accepted submission.
type LocationUpdatedEvent struct {
	TruckID   string         `json:"truck_id"`
	TruckName string         `json:"truck_name"`
	Location  LocationReport `json:"location"`
	Source    ReportSource   `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}

// TrackingSessionEvent is published on live tracking start/stop.
type TrackingSessionEvent struct {
	TruckID   string    `json:"truck_id"`
	TruckName string    `json:"truck_name"`
	SessionID string    `json:"session_id"`
	IsActive  bool      `json:"is_active"`
	Timestamp time.Time `json:"timestamp"`
}

// TruckStatusEvent is published when the truck-level active flag flips.
type TruckStatusEvent struct {
	TruckID   string    `json:"truck_id"`
	TruckName string    `json:"truck_name"`
	IsActive  bool      `json:"is_active"`
	Timestamp time.Time `json:"timestamp"`
}

// SightingNotice is delivered to the owner channel when a customer
// reports the truck's position.
type SightingNotice struct {
	TruckID              string    `json:"truck_id"`
	ReportedBy           string    `json:"reported_by,omitempty"`
	RequiresVerification bool      `json:"requires_verification"`
	Timestamp            time.Time `json:"timestamp"`
}

// SocialLocationMessage is the payload of the simulated social-media
// scraping job, arriving over NSQ or the internal HTTP route.
type SocialLocationMessage struct {
	TruckID    string     `json:"truck_id"`
	Platform   string     `json:"platform"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Address    string     `json:"address,omitempty"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	Confidence Confidence `json:"confidence,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	PostedAt   time.Time  `json:"posted_at"`
}
