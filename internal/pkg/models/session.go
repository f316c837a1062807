package models

import "time"

// LiveTrackingSession marks a truck as actively streaming GPS pings.
// It carries no location data; the stored location is independent.
type LiveTrackingSession struct {
	TruckID   string    `json:"truck_id"`
	SessionID string    `json:"session_id"`
	IsActive  bool      `json:"is_active"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`
}
